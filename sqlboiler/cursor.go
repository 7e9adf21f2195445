package sqlboiler

import (
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"github.com/nrfta/relay-paging"
	"github.com/nrfta/relay-paging/internal/sqlexpr"
)

// CursorToQueryMods converts FetchParams into SQLBoiler query mods for
// cursor-based pagination.
//
// The conversion follows these rules:
//   - Conditions → one WHERE mod with the expanded keyset comparison:
//     ("created_at" < ? OR ("created_at" = ? AND "id" < ?))
//   - Limit → qm.Limit(n)
//   - OrderBy → qm.OrderBy(`"created_at" DESC, "id" DESC`)
//
// Values are bound as query arguments, never interpolated.
//
// Requirements:
//   - Composite index on sort columns: CREATE INDEX idx ON table(col1 DESC, id DESC)
func CursorToQueryMods(params paging.FetchParams) ([]qm.QueryMod, error) {
	mods := []qm.QueryMod{}

	where, args, err := sqlexpr.Where(params.Where())
	if err != nil {
		return nil, err
	}
	if where != "" {
		mods = append(mods, rawWhereClause(where, args))
	}

	if params.Limit > 0 {
		mods = append(mods, qm.Limit(params.Limit))
	}

	if len(params.OrderBy) > 0 {
		mods = append(mods, qm.OrderBy(sqlexpr.OrderBy(params.OrderBy)))
	}

	return mods, nil
}

// CountToQueryMods converts FetchParams into the mods of a count query:
// only the WHERE clause is kept.
func CountToQueryMods(params paging.FetchParams) ([]qm.QueryMod, error) {
	where, args, err := sqlexpr.Where(params.Where())
	if err != nil {
		return nil, err
	}
	if where == "" {
		return []qm.QueryMod{}, nil
	}
	return []qm.QueryMod{rawWhereClause(where, args)}, nil
}

// rawWhereClause creates a custom query mod that injects a WHERE clause directly.
// This is necessary because qm.Where doesn't properly handle nested
// OR/AND groups built outside of SQLBoiler.
//
// The function creates a query mod that:
//  1. Adds the WHERE clause to the query's WHERE buffer
//  2. Appends the arguments to the query's argument list
func rawWhereClause(clause string, args []any) qm.QueryMod {
	return qm.QueryModFunc(func(q *queries.Query) {
		queries.AppendWhere(q, clause, args...)
	})
}
