package cpu

// Register identifies a slot of the register file.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_RAX = Register(0) // RAX
	REG_RBX = Register(1) // RBX
	REG_RCX = Register(2) // RCX
	REG_RDX = Register(3) // RDX
	REG_RSI = Register(4) // RSI
	REG_RDI = Register(5) // RDI
	REG_RSP = Register(6) // RSP
	REG_RBP = Register(7) // RBP
	REG_NIL = Register(8) // NIL
)

// REGISTER_COUNT is the size of the register file. NIL is not a slot.
const REGISTER_COUNT = int(REG_NIL)

// Valid returns true if the register names a slot of the register file.
func (reg Register) Valid() bool {
	return reg >= REG_RAX && reg < REG_NIL
}

// Tag of a register identifier operand.
func (reg Register) Tag() Tag {
	return TAG_REGISTER
}

func (Register) value() {}
