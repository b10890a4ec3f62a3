package emulator

import (
	"errors"
	"strconv"

	"github.com/ezrec/xasm/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     int64
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %v pc %v %v", strconv.Itoa(err.LineNo), strconv.FormatInt(err.Pc, 10), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
