package asm

import (
	"errors"
	"strconv"

	"github.com/ezrec/xasm/cpu"
	"github.com/ezrec/xasm/translate"
)

var f = translate.From

var (
	// Lexer errors
	ErrUnterminatedString     = errors.New(f("unterminated string"))
	ErrUnterminatedChar       = errors.New(f("unterminated character"))
	ErrUnterminatedExpression = errors.New(f("unterminated expression"))

	// Assembler errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrLabelInvalid   = errors.New(f("label invalid"))
	ErrOpcodeMissing  = errors.New(f("opcode missing"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a single character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrOperandCount reports an instruction with the wrong number of operands.
type ErrOperandCount struct {
	Op   cpu.Opcode
	Want int
	Got  int
}

func (err ErrOperandCount) Error() string {
	return f("%v takes %d arguments, not %d", err.Op, err.Want, err.Got)
}

func (err ErrOperandCount) Unwrap() error {
	return cpu.ErrOpcodeArgs
}

// ErrSyntax locates an error in the source text.
type ErrSyntax struct {
	LineNo int
	Column int
	Token  string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %v:%v '%v' %v", strconv.Itoa(err.LineNo), strconv.Itoa(err.Column), err.Token, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
