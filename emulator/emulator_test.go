package emulator

import (
	"bytes"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/xasm/asm"
	"github.com/ezrec/xasm/cpu"
	"github.com/ezrec/xasm/translate"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	assert.False(emu.Verbose)
	assert.Equal(DEFAULT_TICK_LIMIT, emu.TickLimit)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Cpu.Output)
	assert.Equal(0, emu.Program.Len())
	assert.Equal(0, emu.LineNo())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		output string
	}){
		{"E1", "MOV RAX, 5\nPNL RAX", "5\n"},
		{"E2", "MOV RAX, 0x10\nMOV RBX, 0b10\nADD RAX, RBX\nPNL RAX", "18\n"},
		{"E3", "MOV RAX,5\nMOV RBX,5\nCMP RAX,RBX\nJE skip\nPNL RAX\n:skip\nPNL RBX", "5\n"},
		{"E4", "MOV RAX, 10\nMOV RBX, 3\nMOD RAX, RBX\nPNL RAX", "1\n"},
		{"E5", "MOV RAX, 9\nMOV RBX, 3\nMOD RAX, RBX\nPNL RAX", "0\n"},
		{"E6", ":start\nPNL 42", "42\n"},
		{"empty", "", ""},
		{"comments", "; nothing\n;at all", ""},
		{"initial", "pnl rsp", "0\n"},
		{"literals", `pnl "hello, world"
dmp 'x'
pnl -0x1F
pnl $(1 / 4)
pnl $(u32(7))`, "hello, world\nx\n-31\n0.25\n7\n"},
		{"countdown", `
    mov rax, 0
:loop
    add rax, 1
    pnl rax
    cmp rax, 3
    jne loop
    pnl "done"`, "1\n2\n3\ndone\n"},
		{"jump-end", "jmp end\npnl 1\n:end", ""},
		{"jump-register", "mov rcx, 3\njmp rcx\npnl 1\npnl 2", "2\n"},
		{"chars", "mov rax, 'A'\nadd rax, $(char(1))\npnl rax", "B\n"},
		{"register-count", "pnl $(REGISTER_COUNT)", "8\n"},
	}

	for _, entry := range table {
		out := &bytes.Buffer{}
		err := Run(entry.source, out)
		assert.NoError(err, entry.name)
		assert.Equal(entry.output, out.String(), entry.name)
	}
}

func TestZeroFlag(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		zf     bool
	}){
		{"MOV RAX, 10\nMOV RBX, 3\nMOD RAX, RBX", false},
		{"MOV RAX, 9\nMOV RBX, 3\nMOD RAX, RBX", true},
		{"CMP 3, 3", true},
		{"MOV RAX, 3\nCMP RAX, 4", false},
		{`CMP "a", "a"`, true},
	}

	for _, entry := range table {
		emu := NewEmulator(&bytes.Buffer{})
		err := emu.Assemble(entry.source)
		assert.NoError(err, entry.source)
		err = emu.Run()
		assert.NoError(err, entry.source)
		assert.Equal(entry.zf, emu.Cpu.Zf, entry.source)
	}
}

func TestImmediateRegisterEquivalence(t *testing.T) {
	assert := assert.New(t)

	immediate := NewEmulator(&bytes.Buffer{})
	assert.NoError(immediate.Assemble("MOV RAX, 5\nADD RAX, 3"))
	assert.NoError(immediate.Run())

	register := NewEmulator(&bytes.Buffer{})
	assert.NoError(register.Assemble("MOV RAX, 5\nMOV RBX, 3\nADD RAX, RBX"))
	assert.NoError(register.Run())

	assert.Equal(cpu.Int64(8), immediate.Cpu.Register[cpu.REG_RAX])
	assert.Equal(immediate.Cpu.Register[cpu.REG_RAX], register.Cpu.Register[cpu.REG_RAX])
}

func TestLabelRoundTrip(t *testing.T) {
	assert := assert.New(t)

	source := `
    jmp second
:first
    pnl 1
    je done
:second
    cmp 0, 0
    jmp first
:done`

	emu := NewEmulator(&bytes.Buffer{})
	assert.NoError(emu.Assemble(source))

	label := maps.Clone(emu.Program.Label)
	assert.Equal(map[string]int{"first": 1, "second": 3, "done": 5}, label)

	for {
		ins, err := emu.Cpu.Fetch()
		if errors.Is(err, cpu.ErrPcEmpty) {
			break
		}
		assert.NoError(err)

		var taken bool
		switch ins.Op {
		case cpu.OP_JMP:
			taken = true
		case cpu.OP_JE:
			taken = emu.Cpu.Zf
		case cpu.OP_JNE:
			taken = !emu.Cpu.Zf
		}

		pc := emu.Cpu.Pc
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)

		if taken {
			target := label[ins.Words[1]]
			assert.Equal(int64(target), emu.Cpu.Pc, ins.String())
			if target < emu.Program.Len() {
				dbg := emu.Program.Debug(emu.Cpu.Pc)
				assert.Contains(dbg.Labels, ins.Words[1])
			}
		} else {
			assert.Equal(pc+1, emu.Cpu.Pc, ins.String())
		}
	}

	assert.Equal(int64(5), emu.Cpu.Pc)
	assert.Equal(5, emu.Cpu.Ticks)
}

func TestAssembleErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		lineno int
		err    error
	}){
		{"mov rax, 1\njmp nowhere", 2, asm.ErrLabelMissing("nowhere")},
		{"pnl \"open", 1, asm.ErrUnterminatedString},
		{"\nmov rax", 2, cpu.ErrOpcodeArgs},
		{":a\n:a", 2, asm.ErrLabelDuplicate},
	}

	for _, entry := range table {
		out := &bytes.Buffer{}
		err := Run(entry.source, out)
		assert.ErrorIs(err, entry.err, entry.source)

		var se *asm.ErrSyntax
		if assert.True(errors.As(err, &se), entry.source) {
			assert.Equal(entry.lineno, se.LineNo, entry.source)
		}
		assert.Empty(out.String(), entry.source)
	}
}

func TestRuntimeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		lineno int
		pc     int64
		output string
		err    error
	}){
		{"mov rax, 1\npnl rax\nmov rbx, 'c'\nadd rax, rbx", 4, 3, "1\n", cpu.ErrTagMismatch},
		{"mov rax, 9\nmod rax, 0", 2, 1, "", cpu.ErrDivideByZero},
		{"add 1, 2", 1, 0, "", cpu.ErrTargetInvalid},
		{"mov 1, 2", 1, 0, "", cpu.ErrTargetInvalid},
		{"jmp 7", 1, 0, "", cpu.ErrAddressInvalid},
		{"jmp -1", 1, 0, "", cpu.ErrAddressInvalid},
		{"mov rax, 'x'\njmp rax", 2, 1, "", cpu.ErrTagMismatch},
		{"pnl 1\npush rax", 2, 1, "1\n", cpu.ErrOpcodeUnimplemented},
		{"ret", 1, 0, "", cpu.ErrOpcodeUnimplemented},
		{`mod "a", "b"`, 1, 0, "", cpu.ErrTargetInvalid},
		{`mov rax, "a"` + "\nmod rax, \"b\"", 2, 1, "", cpu.ErrTypeInvalid},
	}

	for _, entry := range table {
		out := &bytes.Buffer{}
		err := Run(entry.source, out)
		assert.ErrorIs(err, entry.err, entry.source)
		assert.ErrorIs(err, cpu.ErrInstruction{}, entry.source)

		var re *ErrRuntime
		if assert.True(errors.As(err, &re), entry.source) {
			assert.Equal(entry.lineno, re.LineNo, entry.source)
			assert.Equal(entry.pc, re.Pc, entry.source)
		}
		assert.Equal(entry.output, out.String(), entry.source)
	}
}

func TestTickLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(&bytes.Buffer{})
	emu.TickLimit = 100

	err := emu.Assemble(":l jmp l")
	assert.NoError(err)

	err = emu.Run()
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(100, emu.Cpu.Ticks)

	var re *ErrRuntime
	if assert.True(errors.As(err, &re)) {
		assert.Equal(1, re.LineNo)
	}

	// The limit is not reached by a program that ends first.
	assert.NoError(emu.Assemble("pnl 1"))
	assert.NoError(emu.Run())
	assert.Equal(1, emu.Cpu.Ticks)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)
	emu.TickLimit = 20

	defines := maps.Collect(emu.Defines())
	assert.Equal("8", defines["REGISTER_COUNT"])
	assert.Equal("20", defines["TICK_LIMIT"])

	out := &bytes.Buffer{}
	emu.Cpu.Output = out
	assert.NoError(emu.Assemble("pnl $(TICK_LIMIT + REGISTER_COUNT)"))
	assert.NoError(emu.Run())
	assert.Equal("28\n", out.String())
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	emu := NewEmulator(out)
	assert.NoError(emu.Assemble("mov rax, 5\npnl rax"))
	assert.NoError(emu.Run())
	assert.True(emu.Cpu.Done())

	emu.Reset()
	assert.Equal(int64(0), emu.Cpu.Pc)
	assert.Equal(cpu.Int32(0), emu.Cpu.Register[cpu.REG_RAX])
	assert.Equal(1, emu.LineNo())

	assert.NoError(emu.Run())
	assert.Equal("5\n5\n", out.String())
}

func TestErrRuntimeMessage(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(translate.SetLanguage("en-US"))

	err := &ErrRuntime{LineNo: 1234, Pc: 1501, Err: ErrTickLimit}
	assert.Equal("line 1234 pc 1501 tick limit exceeded", err.Error())

	source := strings.Repeat("pnl 1\n", 1500) + "ret"
	err2 := Run(source, &bytes.Buffer{})
	assert.ErrorContains(err2, "line 1501 pc 1500 ")
}
