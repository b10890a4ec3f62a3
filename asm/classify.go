package asm

import (
	"strings"
	"unicode/utf8"

	"github.com/ezrec/xasm/cpu"
)

// Classify tags each lexeme, using the assembler's equates to evaluate
// expressions.
//
// A raw lexeme is, in order of precedence: a register name, a mnemonic, a
// label definition (':name'), a comment, a label reference (the operand of
// jmp, je or jne naming a defined label), an integer literal, or a string.
// A jump operand that is neither a defined label nor an integer is an
// ErrLabelMissing.
func (asm *Assembler) Classify(lexemes []Lexeme) (tokens []Token, err error) {
	// Label references may precede their definition.
	labels := map[string]bool{}
	for _, lexeme := range lexemes {
		if lexeme.Kind == LEX_RAW && strings.HasPrefix(lexeme.Text, ":") {
			labels[lexeme.Text] = true
		}
	}

	last := cpu.OP_COUNT
	for _, lexeme := range lexemes {
		var tok Token
		tok, err = asm.classify(lexeme, last, labels)
		if err != nil {
			err = &ErrSyntax{LineNo: lexeme.LineNo, Column: lexeme.Column, Token: lexeme.Text, Err: err}
			return
		}
		if tok.Kind == TOKEN_INSTRUCTION {
			last = tok.Op
		}
		tokens = append(tokens, tok)
	}

	return
}

// Classify tags lexemes with no predefined equates.
func Classify(lexemes []Lexeme) (tokens []Token, err error) {
	return (&Assembler{}).Classify(lexemes)
}

// classify tags a single lexeme, given the last mnemonic seen.
func (asm *Assembler) classify(lexeme Lexeme, last cpu.Opcode, labels map[string]bool) (tok Token, err error) {
	text := lexeme.Text
	tok = Token{Text: text, Pos: lexeme.Pos}

	switch lexeme.Kind {
	case LEX_STRING:
		tok.Kind = TOKEN_DATA
		tok.Value = cpu.String(text)
		return
	case LEX_CHAR:
		r, size := utf8.DecodeRuneInString(text)
		if size != len(text) || r == utf8.RuneError {
			err = ErrParseCharacter(text)
			return
		}
		tok.Kind = TOKEN_DATA
		tok.Value = cpu.Char(r)
		return
	case LEX_COMMENT:
		tok.Kind = TOKEN_COMMENT
		return
	case LEX_EXPR:
		tok.Kind = TOKEN_DATA
		tok.Value, err = asm.evaluate(text, lexeme.LineNo)
		return
	}

	if reg, ok := LookupRegister(text); ok {
		tok.Kind = TOKEN_REGISTER
		tok.Register = reg
		return
	}

	if op, ok := LookupOpcode(text); ok {
		tok.Kind = TOKEN_INSTRUCTION
		tok.Op = op
		return
	}

	if strings.HasPrefix(text, ":") {
		if len(text) == 1 {
			err = ErrLabelInvalid
			return
		}
		tok.Kind = TOKEN_CHECKPOINT
		return
	}

	if strings.HasPrefix(text, ";") {
		tok.Kind = TOKEN_COMMENT
		return
	}

	if last.Jump() && labels[":"+text] {
		tok.Kind = TOKEN_GOTO
		return
	}

	if value, ok := ParseInteger(text); ok {
		tok.Kind = TOKEN_DATA
		tok.Value = cpu.Int64(value)
		return
	}

	if last.Jump() {
		err = ErrLabelMissing(text)
		return
	}

	tok.Kind = TOKEN_DATA
	tok.Value = cpu.String(text)
	return
}
