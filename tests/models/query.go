package models

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// dialect matches what sqlboiler's psql driver generates.
var dialect = drivers.Dialect{
	LQ:                   '"',
	RQ:                   '"',
	UseIndexPlaceholders: true,
	UseAutoColumns:       true,
	UseDefaultKeyword:    true,
}

func newQuery(table string, mods []qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	queries.SetFrom(q, table)
	qm.Apply(q, mods...)
	return q
}

func count(ctx context.Context, exec boil.ContextExecutor, q *queries.Query) (int64, error) {
	queries.SetSelect(q, nil)
	queries.SetCount(q)

	var n int64
	err := q.QueryRowContext(ctx, exec).Scan(&n)
	return n, err
}
