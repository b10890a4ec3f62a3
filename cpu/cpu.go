package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"
)

var _cpu_defines = map[string]string{
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
}

// Cpu is the execution context of an assembled program.
type Cpu struct {
	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination of pnl output.

	Program *Program // Program being executed.

	Pc       int64                 // Index of the next instruction.
	Register [REGISTER_COUNT]Value // Register file.
	Zf       bool                  // Zero flag.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a CPU writing to standard output.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Output:  os.Stdout,
		Program: &Program{},
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Every register holds int32 zero.
// - Clears the zero flag.
// - Sets the program counter to the first instruction.
// - Zeros the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	for n := range cpu.Register {
		cpu.Register[n] = Int32(0)
	}
	cpu.Zf = false
	cpu.Pc = 0
	cpu.Ticks = 0
}

// Load a program and reset the CPU.
func (cpu *Cpu) Load(prog *Program) {
	cpu.Program = prog
	cpu.Reset()
}

// Done returns true once the program counter has left the program.
func (cpu *Cpu) Done() bool {
	return cpu.Pc >= int64(cpu.Program.Len())
}

// dumpValue formats a register for the state dump. The tag is printed
// alongside, so only text values are quoted.
func dumpValue(value Value) string {
	switch value.Tag() {
	case TAG_STRING, TAG_CHAR:
		return Literal(value)
	}
	return value.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %04d\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "zf", cpu.Zf)
	for n, value := range cpu.Register {
		reg := Register(n)
		if value == nil {
			text += fmt.Sprintf("% 5s: -\n", reg)
			continue
		}
		text += fmt.Sprintf("% 5s: %v %v\n", reg, value.Tag(), dumpValue(value))
	}

	return
}

// Fetch returns the instruction at the program counter.
func (cpu *Cpu) Fetch() (ins Instruction, err error) {
	if cpu.Pc < 0 || cpu.Done() {
		err = ErrPcEmpty
		return
	}

	ins = cpu.Program.Instructions[cpu.Pc]
	return
}

// Tick executes a single instruction.
// Returns ErrPcEmpty when the program has finished.
func (cpu *Cpu) Tick() (err error) {
	ins, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(ins)
	return
}

// Run executes instructions until the program counter leaves the program.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrPcEmpty) {
			return nil
		}
		if err != nil {
			return
		}
	}
}

// Execute executes a single instruction at the current program counter.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(ins), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%04d: %v", cpu.Pc, ins)
	}

	if !ins.Op.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	if len(ins.Args) != ins.Op.Arity() {
		err = ErrOpcodeArgs
		return
	}

	if !ins.Op.Implemented() {
		err = ErrOpcodeUnimplemented
		return
	}

	next_pc := cpu.Pc + 1

	args := ins.Args

	switch ins.Op {
	case OP_MOV:
		var dst Register
		var val Value
		dst, err = cpu.getTarget(args[0])
		if err != nil {
			return
		}
		val, err = cpu.getValue(args[1])
		if err != nil {
			return
		}
		cpu.Register[dst] = val
	case OP_ADD, OP_MOD:
		var dst Register
		var val, result Value
		dst, err = cpu.getTarget(args[0])
		if err != nil {
			return
		}
		val, err = cpu.getValue(args[1])
		if err != nil {
			return
		}
		if ins.Op == OP_ADD {
			result, err = Add(cpu.register(dst), val)
		} else {
			result, err = Mod(cpu.register(dst), val)
		}
		if err != nil {
			return
		}
		cpu.Register[dst] = result
		if ins.Op == OP_MOD {
			cpu.Zf = IsZero(result)
		}
	case OP_CMP:
		var left, right Value
		left, err = cpu.getValue(args[0])
		if err != nil {
			return
		}
		right, err = cpu.getValue(args[1])
		if err != nil {
			return
		}
		var equal bool
		equal, err = Equal(left, right)
		if err != nil {
			return
		}
		cpu.Zf = equal
	case OP_JMP, OP_JE, OP_JNE:
		var target int64
		target, err = cpu.getAddress(args[0])
		if err != nil {
			return
		}
		switch {
		case ins.Op == OP_JMP,
			ins.Op == OP_JE && cpu.Zf,
			ins.Op == OP_JNE && !cpu.Zf:
			next_pc = target
		}
	case OP_PNL:
		var val Value
		val, err = cpu.getValue(args[0])
		if err != nil {
			return
		}
		out := cpu.Output
		if out == nil {
			out = os.Stdout
		}
		_, err = fmt.Fprintln(out, val.String())
		if err != nil {
			return
		}
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}

// getValue returns the effective operand: the content of a register
// operand, or the operand itself.
func (cpu *Cpu) getValue(arg Value) (value Value, err error) {
	reg, ok := arg.(Register)
	if !ok {
		value = arg
		return
	}

	if !reg.Valid() {
		err = ErrRegisterInvalid
		return
	}

	value = cpu.register(reg)
	return
}

// register reads a register slot; unset slots read as int32 zero.
func (cpu *Cpu) register(reg Register) Value {
	value := cpu.Register[reg]
	if value == nil {
		value = Int32(0)
	}
	return value
}

// getTarget returns the register slot a destination operand writes.
func (cpu *Cpu) getTarget(arg Value) (reg Register, err error) {
	reg, ok := arg.(Register)
	if !ok {
		err = ErrTargetInvalid
		return
	}

	if !reg.Valid() {
		err = ErrRegisterInvalid
		return
	}

	return
}

// getAddress returns the instruction index named by a jump operand.
// The index may equal the program length, which ends execution.
func (cpu *Cpu) getAddress(arg Value) (target int64, err error) {
	value, err := cpu.getValue(arg)
	if err != nil {
		return
	}

	addr, ok := value.(Int64)
	if !ok {
		err = errors.Join(ErrAddressInvalid, ErrTagMismatch)
		return
	}

	target = int64(addr)
	if target < 0 || target > int64(cpu.Program.Len()) {
		err = ErrAddressInvalid
		return
	}

	return
}
