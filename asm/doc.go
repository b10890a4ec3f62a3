// Package asm translates assembly source into a cpu.Program.
//
// Translation runs in three stages. Lex splits the source into lexemes:
// whitespace- or comma-separated words, "string" and 'c' literals, ;
// comments and $( ... ) compile-time expressions. Classify tags each
// lexeme as an instruction, register, label definition, label reference,
// literal or comment. Assemble resolves labels to instruction indexes and
// groups operands behind their mnemonic.
//
// Example:
//
//	    mov rax, 0
//	:loop
//	    add rax, 1
//	    pnl rax
//	    cmp rax, 3
//	    jne loop
package asm
