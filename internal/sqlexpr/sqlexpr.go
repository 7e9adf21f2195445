// Package sqlexpr renders paging predicates and orderings as parameterized
// SQL. Values are always bound as arguments, so cursor contents never reach
// the SQL text. Column names come from sort keys and are quoted.
//
// Placeholders are "?"; SQLBoiler and GORM rewrite them for their dialect.
package sqlexpr

import (
	"fmt"
	"strings"

	"github.com/aarondl/strmangle"

	"github.com/nrfta/relay-paging"
)

// Quote quotes a possibly table-qualified identifier with double quotes:
// posts.created_at -> "posts"."created_at".
func Quote(column string) string {
	return strmangle.IdentQuote('"', '"', column)
}

// Where renders cond. It returns an empty clause for a nil condition.
//
// Example:
//
//	Or{Gt("a", 1), And{Eq("a", 1), Gt("id", 2)}}
//	→ ("a" > ? OR ("a" = ? AND "id" > ?)), [1 1 2]
func Where(cond paging.Condition) (string, []any, error) {
	if cond == nil {
		return "", nil, nil
	}

	var sb strings.Builder
	var args []any
	if err := render(&sb, &args, cond); err != nil {
		return "", nil, err
	}
	return sb.String(), args, nil
}

func render(sb *strings.Builder, args *[]any, cond paging.Condition) error {
	switch c := cond.(type) {
	case paging.Compare:
		switch c.Op {
		case paging.OpEq, paging.OpGt, paging.OpLt:
		default:
			return fmt.Errorf("sqlexpr: unsupported operator %q", c.Op)
		}
		if !c.Value.IsValid() {
			return fmt.Errorf("sqlexpr: column %q: invalid value", c.Column)
		}
		fmt.Fprintf(sb, "%s %s ?", Quote(c.Column), c.Op)
		*args = append(*args, c.Value.Any())
		return nil

	case paging.And:
		return group(sb, args, []paging.Condition(c), " AND ", "TRUE")

	case paging.Or:
		return group(sb, args, []paging.Condition(c), " OR ", "FALSE")
	}

	return fmt.Errorf("sqlexpr: unsupported condition %T", cond)
}

func group(sb *strings.Builder, args *[]any, children []paging.Condition, sep, empty string) error {
	children = compact(children)
	if len(children) == 0 {
		sb.WriteString(empty)
		return nil
	}

	sb.WriteString("(")
	for i, child := range children {
		if i > 0 {
			sb.WriteString(sep)
		}
		if err := render(sb, args, child); err != nil {
			return err
		}
	}
	sb.WriteString(")")
	return nil
}

func compact(conds []paging.Condition) []paging.Condition {
	out := make([]paging.Condition, 0, len(conds))
	for _, c := range conds {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// OrderBy constructs an ORDER BY clause (without the keywords).
// Assumes len(orderBy) > 0 (caller must verify).
//
// Example:
//
//	[]paging.OrderBy{
//	    {Column: "created_at", Desc: true},
//	    {Column: "id", Desc: false},
//	}
//	→ "created_at" DESC, "id" ASC
func OrderBy(orderBy []paging.OrderBy) string {
	parts := make([]string, len(orderBy))
	for i, o := range orderBy {
		if o.Desc {
			parts[i] = Quote(o.Column) + " DESC"
		} else {
			parts[i] = Quote(o.Column) + " ASC"
		}
	}
	return strings.Join(parts, ", ")
}
