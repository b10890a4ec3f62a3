package cpu

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Instruction is an opcode with its operands, in source order.
type Instruction struct {
	Op     Opcode
	Args   []Value
	LineNo int      // Source line of the mnemonic, if known.
	Words  []string // Source words of the instruction, if known.
}

// String returns the instruction in assembler syntax.
func (ins Instruction) String() string {
	args := make([]string, len(ins.Args))
	for n, arg := range ins.Args {
		args[n] = Literal(arg)
	}

	if len(args) == 0 {
		return ins.Op.String()
	}

	return ins.Op.String() + " " + strings.Join(args, ", ")
}

// Program is an assembled instruction vector.
type Program struct {
	Instructions []Instruction
	Label        map[string]int // Label name to instruction index.
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Instructions)
}

type Debug struct {
	*Instruction
	Labels []string // Labels resolving to this instruction.
}

// Debug returns the instruction at pc, and the labels that name it.
// The Instruction is nil if pc is out of range.
func (prog *Program) Debug(pc int64) (dbg Debug) {
	if pc < 0 || pc >= int64(prog.Len()) {
		return
	}

	dbg.Instruction = &prog.Instructions[pc]
	for label, index := range prog.Label {
		if int64(index) == pc {
			dbg.Labels = append(dbg.Labels, label)
		}
	}
	slices.Sort(dbg.Labels)

	return
}

// All iterates over the instructions with their indexes.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, ins Instruction) bool) {
		for pc, ins := range prog.Instructions {
			if !yield(pc, ins) {
				return
			}
		}
	}
}

// String returns an assembler listing of the program.
func (prog *Program) String() string {
	at := map[int][]string{}
	for _, label := range slices.Sorted(maps.Keys(prog.Label)) {
		index := prog.Label[label]
		at[index] = append(at[index], label)
	}

	var sb strings.Builder
	for pc, ins := range prog.All() {
		for _, label := range at[pc] {
			fmt.Fprintf(&sb, ":%v\n", label)
		}
		fmt.Fprintf(&sb, "%04d: %v\n", pc, ins)
	}
	for _, label := range at[prog.Len()] {
		fmt.Fprintf(&sb, ":%v\n", label)
	}

	return sb.String()
}
