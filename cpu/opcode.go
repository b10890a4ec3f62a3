package cpu

// Opcode is an instruction mnemonic.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_MOV    = Opcode(0)  // mov
	OP_PUSH   = Opcode(1)  // push
	OP_POP    = Opcode(2)  // pop
	OP_ADD    = Opcode(3)  // add
	OP_SUB    = Opcode(4)  // sub
	OP_MUL    = Opcode(5)  // mul
	OP_DIV    = Opcode(6)  // div
	OP_MOD    = Opcode(7)  // mod
	OP_CMP    = Opcode(8)  // cmp
	OP_JNE    = Opcode(9)  // jne
	OP_JMP    = Opcode(10) // jmp
	OP_JE     = Opcode(11) // je
	OP_INC    = Opcode(12) // inc
	OP_OR     = Opcode(13) // or
	OP_AND    = Opcode(14) // and
	OP_XOR    = Opcode(15) // xor
	OP_CALL   = Opcode(16) // call
	OP_RET    = Opcode(17) // ret
	OP_STDOUT = Opcode(18) // stdout
	OP_STDIN  = Opcode(19) // stdin
	OP_PNL    = Opcode(20) // pnl
	OP_MALLOC = Opcode(21) // malloc
	OP_FREE   = Opcode(22) // free
	OP_COUNT  = Opcode(23) // count
)

// opArity is the fixed operand count of each opcode.
var opArity = [...]int{
	OP_MOV:    2,
	OP_PUSH:   1,
	OP_POP:    1,
	OP_ADD:    2,
	OP_SUB:    2,
	OP_MUL:    2,
	OP_DIV:    2,
	OP_MOD:    2,
	OP_CMP:    2,
	OP_JNE:    1,
	OP_JMP:    1,
	OP_JE:     1,
	OP_INC:    1,
	OP_OR:     2,
	OP_AND:    2,
	OP_XOR:    2,
	OP_CALL:   1,
	OP_RET:    0,
	OP_STDOUT: 1,
	OP_STDIN:  1,
	OP_PNL:    1,
	OP_MALLOC: 1,
	OP_FREE:   1,
	OP_COUNT:  0,
}

// Valid returns true for opcodes that may appear in a program.
func (op Opcode) Valid() bool {
	return op >= OP_MOV && op < OP_COUNT
}

// Arity returns the number of operands the opcode takes, or -1 if the
// opcode is out of range. OP_COUNT has arity 0 but is not Valid.
func (op Opcode) Arity() int {
	if op < 0 || int(op) >= len(opArity) {
		return -1
	}
	return opArity[op]
}

// Jump returns true if the opcode's operand is an instruction index.
func (op Opcode) Jump() bool {
	switch op {
	case OP_JMP, OP_JE, OP_JNE:
		return true
	}
	return false
}

// Implemented returns true if the CPU can execute the opcode.
func (op Opcode) Implemented() bool {
	switch op {
	case OP_MOV, OP_ADD, OP_MOD, OP_CMP, OP_JMP, OP_JE, OP_JNE, OP_PNL:
		return true
	}
	return false
}
