// Package variant implements the small typed union used for both object
// parameters (internal/object) and request payloads (internal/request): a
// parameter file stores everything as text, but consumers need float64,
// int, bool, string, and string-list typed access without every caller
// writing its own strconv dance.
package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which field of Value is populated.
type Kind int

const (
	KindDouble Kind = iota
	KindInt
	KindBool
	KindString
	KindStringList
)

// Value is a tagged union over the parameter value types the docking
// configuration surface needs. The zero Value is the double 0.0.
type Value struct {
	kind    Kind
	f       float64
	i       int
	b       bool
	s       string
	strList []string
}

func Double(f float64) Value { return Value{kind: KindDouble, f: f} }
func Int(i int) Value        { return Value{kind: KindInt, i: i} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }
func String(s string) Value  { return Value{kind: KindString, s: s} }
func StringList(ss []string) Value {
	return Value{kind: KindStringList, strList: append([]string(nil), ss...)}
}

func (v Value) Kind() Kind { return v.kind }

// AsDouble coerces the value to float64. Int and Bool coerce naturally;
// String is parsed; StringList is invalid and returns 0.
func (v Value) AsDouble() float64 {
	switch v.kind {
	case KindDouble:
		return v.f
	case KindInt:
		return float64(v.i)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		return f
	default:
		return 0
	}
}

func (v Value) AsInt() int {
	switch v.kind {
	case KindInt:
		return v.i
	case KindDouble:
		return int(v.f)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		i, _ := strconv.Atoi(strings.TrimSpace(v.s))
		return i
	default:
		return 0
	}
}

func (v Value) AsBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindDouble:
		return v.f != 0
	case KindString:
		b, _ := strconv.ParseBool(strings.TrimSpace(v.s))
		return b
	default:
		return false
	}
}

func (v Value) AsString() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindStringList:
		return strings.Join(v.strList, ",")
	default:
		return ""
	}
}

func (v Value) AsStringList() []string {
	if v.kind == KindStringList {
		return append([]string(nil), v.strList...)
	}
	if v.kind == KindString {
		return strings.Split(v.s, ",")
	}
	return nil
}

func (v Value) String() string {
	return fmt.Sprintf("%v", v.AsString())
}

// ParseAs parses raw text into a Value matching the kind of hint, the way a
// parameter-file reader coerces text against an already-registered default.
func ParseAs(raw string, hint Value) (Value, error) {
	switch hint.Kind() {
	case KindDouble:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Value{}, fmt.Errorf("cannot parse %q as double: %w", raw, err)
		}
		return Double(f), nil
	case KindInt:
		i, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, fmt.Errorf("cannot parse %q as int: %w", raw, err)
		}
		return Int(i), nil
	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, fmt.Errorf("cannot parse %q as bool: %w", raw, err)
		}
		return Bool(b), nil
	case KindStringList:
		return StringList(strings.Split(raw, ",")), nil
	default:
		return String(raw), nil
	}
}
