package asm

import (
	"strings"

	"github.com/ezrec/xasm/cpu"
)

// TokenKind is the classification of a lexeme.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_INSTRUCTION = TokenKind(0) // instruction
	TOKEN_REGISTER    = TokenKind(1) // register
	TOKEN_CHECKPOINT  = TokenKind(2) // checkpoint
	TOKEN_GOTO        = TokenKind(3) // goto
	TOKEN_DATA        = TokenKind(4) // data
	TOKEN_COMMENT     = TokenKind(5) // comment
)

// Token is a classified lexeme.
type Token struct {
	Kind     TokenKind
	Op       cpu.Opcode   // TOKEN_INSTRUCTION
	Register cpu.Register // TOKEN_REGISTER
	Value    cpu.Value    // TOKEN_DATA
	Text     string       // Lexeme text. Label names keep their ':'.
	Pos
}

// Operand returns the value carried by a register or data token.
func (tok Token) Operand() (value cpu.Value, ok bool) {
	switch tok.Kind {
	case TOKEN_REGISTER:
		value, ok = tok.Register, true
	case TOKEN_DATA:
		value, ok = tok.Value, true
	}
	return
}

// registerMap maps lower-case register spellings to registers.
// The E and R prefixes are accepted for every register.
var registerMap = map[string]cpu.Register{}

// opcodeMap maps lower-case mnemonics to opcodes.
var opcodeMap = map[string]cpu.Opcode{
	"dmp": cpu.OP_PNL,
}

func init() {
	bases := []string{"ax", "bx", "cx", "dx", "si", "di", "sp", "bp"}
	for n, base := range bases {
		for _, prefix := range []string{"", "e", "r"} {
			registerMap[prefix+base] = cpu.Register(n)
		}
	}

	for op := cpu.OP_MOV; op.Valid(); op++ {
		opcodeMap[op.String()] = op
	}
}

// LookupRegister finds a register by name, ignoring case.
func LookupRegister(word string) (reg cpu.Register, ok bool) {
	reg, ok = registerMap[strings.ToLower(word)]
	return
}

// LookupOpcode finds an opcode by mnemonic, ignoring case.
func LookupOpcode(word string) (op cpu.Opcode, ok bool) {
	op, ok = opcodeMap[strings.ToLower(word)]
	return
}
