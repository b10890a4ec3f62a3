// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs assembly source on the register machine.
package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/xasm/asm"
	"github.com/ezrec/xasm/cpu"
	"github.com/ezrec/xasm/internal"
)

const (
	DEFAULT_TICK_LIMIT = 0 // No limit on executed instructions.
)

// Emulator state. Assembler + CPU.
type Emulator struct {
	Verbose   bool         // If set, enables verbose logging.
	TickLimit int          // If non-zero, the most instructions Run executes.
	*cpu.Cpu               // Reference to the CPU simulation.
	Program   *cpu.Program // Reference to the currently running program.
}

// NewEmulator creates a new emulator writing pnl output to out.
func NewEmulator(out io.Writer) (emu *Emulator) {
	emu = &Emulator{
		Cpu:       cpu.NewCpu(),
		Program:   &cpu.Program{},
		TickLimit: DEFAULT_TICK_LIMIT,
	}

	if out != nil {
		emu.Cpu.Output = out
	}

	emu.Cpu.Load(emu.Program)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"TICK_LIMIT": fmt.Sprintf("%v", emu.TickLimit),
	}
	return internal.IterSeq2Concat(maps.All(defines),
		emu.Cpu.Defines(),
	)
}

// Assemble source text into the emulator's program, and reset.
func (emu *Emulator) Assemble(source string) (err error) {
	assembler := &asm.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		assembler.Predefine(key, value)
	}

	prog, err := assembler.ParseString(source)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Reset()

	return
}

// Reset the CPU to the start of the program.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Load(emu.Program)
}

// LineNo returns the source line of the instruction at the program counter.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Instruction == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	if emu.TickLimit > 0 && emu.Cpu.Ticks >= emu.TickLimit {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrPcEmpty) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks until the program ends, or fails.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			if emu.Verbose {
				log.Printf("emulator: %v ticks\n%v", emu.Cpu.Ticks, emu.Cpu)
			}
			return
		}
	}
}

// Run assembles source and executes it, writing pnl output to out.
func Run(source string, out io.Writer) (err error) {
	emu := NewEmulator(out)

	err = emu.Assemble(source)
	if err != nil {
		return
	}

	return emu.Run()
}
