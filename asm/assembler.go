// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/xasm/cpu"
)

// Assembler is a two pass assembler for the register machine.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefined expression equates.
	Label     map[string]int    // Map of labels to instruction indexes.
}

// Predefine defines a new equate or redefines an existing equate.
// Equates are visible to $(...) expressions; integer literals become
// integers and anything else a string.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *cpu.Program, err error) {
	source, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return asm.ParseString(string(source))
}

// ParseString lexes, classifies and assembles source text.
func (asm *Assembler) ParseString(source string) (prog *cpu.Program, err error) {
	if asm.Verbose {
		for n, line := range strings.Split(source, "\n") {
			log.Printf("%v: %v\n", n+1, line)
		}
	}

	lexemes, err := Lex(source)
	if err != nil {
		return
	}

	tokens, err := asm.Classify(lexemes)
	if err != nil {
		return
	}

	return asm.Assemble(tokens)
}

// pending is an instruction collecting its operands.
type pending struct {
	mnemonic Token
	args     []cpu.Value
	words    []string
}

// Assemble resolves labels and emits the instruction vector.
//
// Operands are collected behind the preceding mnemonic, and the
// instruction is emitted at the next mnemonic or at the end of input.
func (asm *Assembler) Assemble(tokens []Token) (prog *cpu.Program, err error) {
	var current *pending
	var instructions []cpu.Instruction

	syntaxError := func(tok Token, err error) error {
		return &ErrSyntax{LineNo: tok.LineNo, Column: tok.Column, Token: tok.Text, Err: err}
	}

	flush := func() (err error) {
		if current == nil {
			return
		}
		op := current.mnemonic.Op
		if len(current.args) != op.Arity() {
			err = syntaxError(current.mnemonic, ErrOperandCount{Op: op, Want: op.Arity(), Got: len(current.args)})
			return
		}
		instructions = append(instructions, cpu.Instruction{
			Op:     op,
			Args:   current.args,
			LineNo: current.mnemonic.LineNo,
			Words:  current.words,
		})
		current = nil
		return
	}

	// Pass 1: label resolution.
	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)

	var count int
	for _, tok := range tokens {
		switch tok.Kind {
		case TOKEN_INSTRUCTION:
			count++
		case TOKEN_CHECKPOINT:
			label := strings.TrimPrefix(tok.Text, ":")
			_, ok := asm.Label[label]
			if ok {
				err = syntaxError(tok, ErrLabelDuplicate)
				return
			}
			asm.Label[label] = count
		}
	}

	// Pass 2: emission.
	for _, tok := range tokens {
		switch tok.Kind {
		case TOKEN_CHECKPOINT, TOKEN_COMMENT:
			continue
		case TOKEN_INSTRUCTION:
			err = flush()
			if err != nil {
				return
			}
			current = &pending{mnemonic: tok, words: []string{tok.Text}}
			continue
		}

		if current == nil {
			err = syntaxError(tok, ErrOpcodeMissing)
			return
		}

		var arg cpu.Value
		switch tok.Kind {
		case TOKEN_GOTO:
			index, ok := asm.Label[tok.Text]
			if !ok {
				err = syntaxError(tok, ErrLabelMissing(tok.Text))
				return
			}
			arg = cpu.Int64(index)
		default:
			arg, _ = tok.Operand()
		}

		current.args = append(current.args, arg)
		current.words = append(current.words, tok.Text)
	}

	err = flush()
	if err != nil {
		return
	}

	prog = &cpu.Program{
		Instructions: instructions,
		Label:        maps.Clone(asm.Label),
	}

	return
}
