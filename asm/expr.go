package asm

import (
	"errors"
	"maps"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/xasm/cpu"
)

// typed carries a cpu.Value through a Starlark expression.
type typed struct {
	value cpu.Value
}

var _ starlark.Value = typed{}

func (tv typed) String() string        { return cpu.Literal(tv.value) }
func (tv typed) Type() string          { return tv.value.Tag().String() }
func (tv typed) Freeze()               {}
func (tv typed) Truth() starlark.Bool  { return !starlark.Bool(cpu.IsZero(tv.value)) }
func (tv typed) Hash() (uint32, error) { return 0, ErrParseExpression(tv.String()) }

// converter makes a builtin that converts its single argument to a Value.
func converter(name string, convert func(x starlark.Value) (cpu.Value, error)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x starlark.Value
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &x)
		if err != nil {
			return nil, err
		}
		value, err := convert(x)
		if err != nil {
			return nil, err
		}
		return typed{value: value}, nil
	})
}

func asFloat(name string, x starlark.Value) (value float64, err error) {
	value, ok := starlark.AsFloat(x)
	if !ok {
		err = ErrParseExpression(name + "(" + x.String() + ")")
	}
	return
}

// exprBuiltins construct typed values from expressions.
var exprBuiltins = starlark.StringDict{
	"u32": converter("u32", func(x starlark.Value) (value cpu.Value, err error) {
		var v uint32
		err = starlark.AsInt(x, &v)
		return cpu.Uint32(v), err
	}),
	"u64": converter("u64", func(x starlark.Value) (value cpu.Value, err error) {
		var v uint64
		err = starlark.AsInt(x, &v)
		return cpu.Uint64(v), err
	}),
	"i32": converter("i32", func(x starlark.Value) (value cpu.Value, err error) {
		var v int32
		err = starlark.AsInt(x, &v)
		return cpu.Int32(v), err
	}),
	"i64": converter("i64", func(x starlark.Value) (value cpu.Value, err error) {
		var v int64
		err = starlark.AsInt(x, &v)
		return cpu.Int64(v), err
	}),
	"f32": converter("f32", func(x starlark.Value) (value cpu.Value, err error) {
		v, err := asFloat("f32", x)
		return cpu.Float(v), err
	}),
	"f64": converter("f64", func(x starlark.Value) (value cpu.Value, err error) {
		v, err := asFloat("f64", x)
		return cpu.Double(v), err
	}),
	"char": converter("char", func(x starlark.Value) (value cpu.Value, err error) {
		if str, ok := x.(starlark.String); ok {
			r, size := utf8.DecodeRuneInString(string(str))
			if size == 0 || size != len(str) || r == utf8.RuneError {
				err = ErrParseCharacter(string(str))
				return
			}
			return cpu.Char(r), nil
		}
		var v int32
		err = starlark.AsInt(x, &v)
		if err == nil && !utf8.ValidRune(rune(v)) {
			err = ErrParseCharacter(x.String())
		}
		return cpu.Char(v), err
	}),
}

// fromStarlark converts the result of an expression to a Value.
func fromStarlark(expr string, result starlark.Value) (value cpu.Value, err error) {
	switch result := result.(type) {
	case typed:
		value = result.value
	case starlark.Int:
		var v int64
		err = starlark.AsInt(result, &v)
		value = cpu.Int64(v)
	case starlark.Float:
		value = cpu.Double(result)
	case starlark.String:
		value = cpu.String(result)
	default:
		err = ErrParseExpression(expr)
	}

	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
	}

	return
}

// toStarlark converts an equate to an integer if it is an integer literal,
// and to a string otherwise.
func toStarlark(text string) starlark.Value {
	value, ok := ParseInteger(text)
	if ok {
		return starlark.MakeInt64(value)
	}
	return starlark.String(text)
}

// evaluate does compile-time $(...) evaluations.
func (asm *Assembler) evaluate(expr string, lineno int) (value cpu.Value, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}

	pred := maps.Clone(exprBuiltins)
	for key, str := range asm.predefine {
		pred[key] = toStarlark(str)
	}
	pred["LINENO"] = starlark.MakeInt(lineno)

	prog := "rc=(" + expr + ")\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value, err = fromStarlark(expr, rc)
	return
}
