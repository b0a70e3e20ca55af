package esprintf

import (
	"fmt"
	"math"
)

// Kind identifies the payload carried by an [Arg].
type Kind uint8

const (
	KindNone Kind = iota
	KindChar
	KindInt
	KindUint
	KindStr
	KindFloat
)

var kindNames = [...]string{"none", "char", "int", "uint", "str", "float"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arg is one formatting argument. The zero Arg has KindNone and reads as
// zero or the empty string for every conversion.
type Arg struct {
	kind Kind
	n    uint64
	s    string
}

// Char returns a character argument.
func Char(c byte) Arg { return Arg{kind: KindChar, n: uint64(c)} }

// Int returns a signed integer argument.
func Int(v int) Arg { return Arg{kind: KindInt, n: uint64(v)} }

// Uint returns an unsigned integer argument.
func Uint(v uint) Arg { return Arg{kind: KindUint, n: uint64(v)} }

// Str returns a string argument.
func Str(s string) Arg { return Arg{kind: KindStr, s: s} }

// Float returns a floating point argument.
func Float(f float64) Arg { return Arg{kind: KindFloat, n: math.Float64bits(f)} }

// Kind reports the kind of a.
func (a Arg) Kind() Kind { return a.kind }

// From converts a Go value into an Arg. Integer types of every width map to
// Int or Uint, float32 and float64 to Float, string to Str, and byte to Char.
func From(v any) (Arg, error) {
	switch x := v.(type) {
	case byte:
		return Char(x), nil
	case rune:
		return Int(int(x)), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(int(x)), nil
	case int16:
		return Int(int(x)), nil
	case int64:
		return Int(int(x)), nil
	case uint:
		return Uint(x), nil
	case uint16:
		return Uint(uint(x)), nil
	case uint32:
		return Uint(uint(x)), nil
	case uint64:
		return Uint(uint(x)), nil
	case uintptr:
		return Uint(uint(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return Str(x), nil
	case bool:
		if x {
			return Int(1), nil
		}
		return Int(0), nil
	default:
		return Arg{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// Args converts each value with [From]. It stops at the first error.
func Args(vals ...any) ([]Arg, error) {
	out := make([]Arg, len(vals))
	for i, v := range vals {
		a, err := From(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = a
	}
	return out, nil
}

func (a Arg) int() int {
	if a.kind == KindFloat {
		return int(math.Float64frombits(a.n))
	}
	return int(a.n)
}

func (a Arg) uint() uint {
	if a.kind == KindFloat {
		return uint(math.Float64frombits(a.n))
	}
	return uint(a.n)
}

func (a Arg) float() float64 {
	switch a.kind {
	case KindFloat:
		return math.Float64frombits(a.n)
	case KindInt:
		return float64(int(a.n))
	case KindChar, KindUint:
		return float64(uint(a.n))
	default:
		return 0
	}
}

func (a Arg) str() string {
	if a.kind == KindStr {
		return a.s
	}
	return ""
}

// argList hands out arguments in order. Reads past the end yield the zero Arg.
type argList struct {
	args []Arg
	next int
}

func (l *argList) pop() Arg {
	if l.next >= len(l.args) {
		return Arg{}
	}
	a := l.args[l.next]
	l.next++
	return a
}
