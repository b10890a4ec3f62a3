// Package cpu implements the register machine that runs assembled programs.
//
// The machine has eight general-purpose registers (RAX, RBX, RCX, RDX, RSI,
// RDI, RSP, RBP), a zero flag, and a program counter indexing a flat
// instruction vector. Registers hold dynamically typed values: every Value
// carries a Tag, and arithmetic or comparison between operands of
// different tags is an error.
//
// A register operand is always dereferenced to the value held in that
// register, except where it names the destination of MOV, ADD or MOD.
package cpu
