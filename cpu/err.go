package cpu

import (
	"errors"

	"github.com/ezrec/xasm/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrPcEmpty             = errors.New(f("pc empty"))
	ErrTagMismatch         = errors.New(f("tag mismatch"))
	ErrTargetInvalid       = errors.New(f("target not a register"))
	ErrRegisterInvalid     = errors.New(f("register invalid"))
	ErrOpcodeInvalid       = errors.New(f("opcode invalid"))
	ErrOpcodeUnimplemented = errors.New(f("opcode unimplemented"))
	ErrOpcodeArgs          = errors.New(f("wrong argument count"))
	ErrAddressInvalid      = errors.New(f("address invalid"))
	ErrTypeInvalid         = errors.New(f("type invalid"))
	ErrDivideByZero        = errors.New(f("divide by zero"))
)

// ErrInstruction identifies the instruction that failed to execute.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("bad instruction '%v'", Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}
