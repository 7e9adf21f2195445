package paging

import "fmt"

// Op is a comparison operator used by Compare conditions.
type Op string

const (
	OpEq Op = "="
	OpGt Op = ">"
	OpLt Op = "<"
)

// Condition is a store-agnostic predicate. Fetcher implementations translate
// it into their own query language; see Evaluate for the reference semantics.
//
// The set of implementations is closed: Compare, And and Or.
type Condition interface {
	isCondition()
}

// Compare restricts Column with Op against Value.
type Compare struct {
	Column string
	Op     Op
	Value  Value
}

// And holds when every child holds. An empty And always holds.
type And []Condition

// Or holds when any child holds. An empty Or never holds.
type Or []Condition

func (Compare) isCondition() {}
func (And) isCondition()     {}
func (Or) isCondition()      {}

// Eq is shorthand for Compare{column, OpEq, v}.
func Eq(column string, v Value) Compare { return Compare{Column: column, Op: OpEq, Value: v} }

// Gt is shorthand for Compare{column, OpGt, v}.
func Gt(column string, v Value) Compare { return Compare{Column: column, Op: OpGt, Value: v} }

// Lt is shorthand for Compare{column, OpLt, v}.
func Lt(column string, v Value) Compare { return Compare{Column: column, Op: OpLt, Value: v} }

// Evaluate reports whether a record satisfies cond. The lookup returns the
// record's value for a column and false when the record has no such column.
func Evaluate(cond Condition, lookup func(column string) (Value, bool)) (bool, error) {
	switch c := cond.(type) {
	case nil:
		return true, nil

	case Compare:
		actual, ok := lookup(c.Column)
		if !ok {
			return false, fmt.Errorf("unknown column %q", c.Column)
		}

		cmp, err := actual.Compare(c.Value)
		if err != nil {
			return false, fmt.Errorf("column %q: %w", c.Column, err)
		}

		switch c.Op {
		case OpEq:
			return cmp == 0, nil
		case OpGt:
			return cmp > 0, nil
		case OpLt:
			return cmp < 0, nil
		}
		return false, fmt.Errorf("unsupported operator %q", c.Op)

	case And:
		for _, child := range c {
			ok, err := Evaluate(child, lookup)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil

	case Or:
		for _, child := range c {
			ok, err := Evaluate(child, lookup)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}

	return false, fmt.Errorf("unsupported condition %T", cond)
}
