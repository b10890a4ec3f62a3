package cpu

import (
	"math"
	"strconv"
)

// Tag is the discriminator of a Value.
type Tag int

//go:generate go tool stringer -linecomment -type=Tag
const (
	TAG_UINT32   = Tag(0) // uint32
	TAG_UINT64   = Tag(1) // uint64
	TAG_INT32    = Tag(2) // int32
	TAG_INT64    = Tag(3) // int64
	TAG_FLOAT    = Tag(4) // float
	TAG_DOUBLE   = Tag(5) // double
	TAG_STRING   = Tag(6) // string
	TAG_CHAR     = Tag(7) // char
	TAG_REGISTER = Tag(8) // register
)

// Value is a tagged operand or register content. The implementations are
// Uint32, Uint64, Int32, Int64, Float, Double, String, Char and Register.
//
// String returns the text printed by the pnl instruction.
type Value interface {
	Tag() Tag
	String() string
	value()
}

type (
	Uint32 uint32
	Uint64 uint64
	Int32  int32
	Int64  int64
	Float  float32
	Double float64
	String string
	Char   rune
)

func (Uint32) Tag() Tag { return TAG_UINT32 }
func (Uint64) Tag() Tag { return TAG_UINT64 }
func (Int32) Tag() Tag  { return TAG_INT32 }
func (Int64) Tag() Tag  { return TAG_INT64 }
func (Float) Tag() Tag  { return TAG_FLOAT }
func (Double) Tag() Tag { return TAG_DOUBLE }
func (String) Tag() Tag { return TAG_STRING }
func (Char) Tag() Tag   { return TAG_CHAR }

func (v Uint32) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Uint64) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Int32) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Int64) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string  { return formatFloat(float64(v), 32) }
func (v Double) String() string { return formatFloat(float64(v), 64) }
func (v String) String() string { return string(v) }
func (v Char) String() string   { return string(rune(v)) }

func (Uint32) value() {}
func (Uint64) value() {}
func (Int32) value()  {}
func (Int64) value()  {}
func (Float) value()  {}
func (Double) value() {}
func (String) value() {}
func (Char) value()   {}

// formatFloat prints the shortest decimal that round-trips, never using
// an exponent.
func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}

// literalFunc is the expression builtin that produces a numeric tag.
var literalFunc = map[Tag]string{
	TAG_UINT32: "u32",
	TAG_UINT64: "u64",
	TAG_INT32:  "i32",
	TAG_FLOAT:  "f32",
	TAG_DOUBLE: "f64",
}

// Literal formats a value in assembler operand syntax.
func Literal(v Value) string {
	switch v := v.(type) {
	case String:
		return strconv.Quote(string(v))
	case Char:
		return "'" + string(rune(v)) + "'"
	}

	fn, ok := literalFunc[v.Tag()]
	if ok {
		return "$(" + fn + "(" + v.String() + "))"
	}

	return v.String()
}

// Add returns a + b in the arithmetic of their common tag. Integers wrap,
// and chars add their low bytes modulo 256.
func Add(a, b Value) (sum Value, err error) {
	if a.Tag() != b.Tag() {
		err = ErrTagMismatch
		return
	}

	switch a := a.(type) {
	case Uint32:
		sum = a + b.(Uint32)
	case Uint64:
		sum = a + b.(Uint64)
	case Int32:
		sum = a + b.(Int32)
	case Int64:
		sum = a + b.(Int64)
	case Float:
		sum = a + b.(Float)
	case Double:
		sum = a + b.(Double)
	case Char:
		sum = Char(uint8(a) + uint8(b.(Char)))
	default:
		err = ErrTypeInvalid
	}

	return
}

// Mod returns the remainder of a / b in the arithmetic of their common tag.
// Signed remainders truncate toward zero; floats use math.Mod.
func Mod(a, b Value) (rem Value, err error) {
	if a.Tag() != b.Tag() {
		err = ErrTagMismatch
		return
	}

	switch a := a.(type) {
	case Uint32:
		rem, err = intMod(a, b.(Uint32))
	case Uint64:
		rem, err = intMod(a, b.(Uint64))
	case Int32:
		rem, err = intMod(a, b.(Int32))
	case Int64:
		rem, err = intMod(a, b.(Int64))
	case Float:
		rem = Float(math.Mod(float64(a), float64(b.(Float))))
	case Double:
		rem = Double(math.Mod(float64(a), float64(b.(Double))))
	default:
		err = ErrTypeInvalid
	}

	return
}

type integer interface {
	Uint32 | Uint64 | Int32 | Int64
	Value
}

func intMod[T integer](a, b T) (rem Value, err error) {
	if b == 0 {
		err = ErrDivideByZero
		return
	}
	rem = a % b
	return
}

// IsZero returns true for a numeric zero (including negative zero).
func IsZero(v Value) bool {
	switch v := v.(type) {
	case Uint32:
		return v == 0
	case Uint64:
		return v == 0
	case Int32:
		return v == 0
	case Int64:
		return v == 0
	case Float:
		return v == 0
	case Double:
		return v == 0
	}
	return false
}

// Equal compares two values of the same tag. Floats compare exactly, so
// NaN is never equal, and register identifiers are never equal.
func Equal(a, b Value) (equal bool, err error) {
	if a.Tag() != b.Tag() {
		err = ErrTagMismatch
		return
	}

	if a.Tag() == TAG_REGISTER {
		return
	}

	equal = a == b
	return
}
