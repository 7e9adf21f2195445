package paging

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which scalar a Value holds.
type Kind int

const (
	KindString Kind = iota + 1
	KindNumber
	KindDate
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindInt:
		return "int"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a sort key scalar. It is a closed variant over string, number and
// date so cursors round-trip the kind of every field they carry. Integers
// hold integer identifiers exactly; a float64 cannot past 2^53.
//
// The zero Value is invalid; build one with StringValue, NumberValue,
// DateValue or IntValue.
type Value struct {
	kind Kind
	str  string
	num  float64
	i    int64
	date time.Time
}

// StringValue returns a string-kinded Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue returns a number-kinded Value.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// DateValue returns a date-kinded Value. The time is normalized to UTC.
func DateValue(t time.Time) Value {
	return Value{kind: KindDate, date: t.UTC()}
}

// IntValue returns an int-kinded Value.
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Kind returns the kind of the value, or 0 for the zero Value.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool { return v.kind != 0 }

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return fmt.Sprintf("%v", v.num)
	case KindDate:
		return v.date.Format(time.RFC3339Nano)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	default:
		return "<invalid>"
	}
}

// Str returns the string payload. It is empty for other kinds.
func (v Value) Str() string { return v.str }

// Number returns the number payload. It is zero for other kinds.
func (v Value) Number() float64 { return v.num }

// Date returns the date payload. It is the zero time for other kinds.
func (v Value) Date() time.Time { return v.date }

// Int returns the integer payload. It is zero for other kinds.
func (v Value) Int() int64 { return v.i }

// Any returns the payload as a driver-friendly Go value:
// string, float64, time.Time or int64.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindDate:
		return v.date
	case KindInt:
		return v.i
	default:
		return nil
	}
}

// Equal reports whether both values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	c, err := v.Compare(o)
	return err == nil && c == 0
}

// Compare orders v against o. Both values must share a kind.
func (v Value) Compare(o Value) (int, error) {
	if v.kind != o.kind || !v.IsValid() {
		return 0, fmt.Errorf("cannot compare %s value with %s value", v.kind, o.kind)
	}

	switch v.kind {
	case KindString:
		return strings.Compare(v.str, o.str), nil
	case KindNumber:
		switch {
		case v.num < o.num:
			return -1, nil
		case v.num > o.num:
			return 1, nil
		}
		return 0, nil
	case KindInt:
		return cmp.Compare(v.i, o.i), nil
	default:
		return v.date.Compare(o.date), nil
	}
}
