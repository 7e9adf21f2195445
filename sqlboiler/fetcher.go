// Package sqlboiler provides adapters for integrating SQLBoiler with relay-paging.
//
// This package provides a generic Fetcher[T] implementation that works with
// SQLBoiler-generated models, plus the query builders that turn paging
// predicates and orderings into query mods.
//
// The design separates ORM integration (generic) from pagination strategy
// (specific), making it easy to:
//  1. Swap the query builder without changing the fetcher
//  2. Port to other ORMs (see the gormstore package) by implementing Fetcher[T]
//
// Example usage:
//
//	fetcher := sqlboiler.NewFetcher(
//	    func(ctx context.Context, mods ...qm.QueryMod) ([]*models.User, error) {
//	        return models.Users(mods...).All(ctx, db)
//	    },
//	    func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
//	        return models.Users(mods...).Count(ctx, db)
//	    },
//	    sqlboiler.CursorToQueryMods,
//	)
//
//	paginator := cursor.New(fetcher, userKey)
package sqlboiler

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/friendsofgo/errors"

	"github.com/nrfta/relay-paging"
)

// QueryFunc executes a SQLBoiler query and returns results.
// This is ORM-specific but strategy-agnostic.
//
// Type parameter T is the SQLBoiler model type (e.g., *models.User).
type QueryFunc[T any] func(ctx context.Context, mods ...qm.QueryMod) ([]T, error)

// CountFunc executes a SQLBoiler count query.
// This is ORM-specific but strategy-agnostic.
type CountFunc func(ctx context.Context, mods ...qm.QueryMod) (int64, error)

// QueryModsFunc converts FetchParams into query mods.
type QueryModsFunc func(paging.FetchParams) ([]qm.QueryMod, error)

// Fetcher implements paging.Fetcher[T] for SQLBoiler queries.
//
// Fetch uses the configured QueryModsFunc; Count always uses
// CountToQueryMods so ORDER BY and LIMIT never reach the count query.
type Fetcher[T any] struct {
	queryFunc   QueryFunc[T]
	countFunc   CountFunc
	queryModsFn QueryModsFunc
}

// NewFetcher creates a new SQLBoiler fetcher.
//
// Parameters:
//   - queryFunc: Function that executes SQLBoiler queries with query mods
//   - countFunc: Function that counts records with query mods
//   - queryModsFn: Function to convert FetchParams to QueryMods (usually CursorToQueryMods)
func NewFetcher[T any](
	queryFunc QueryFunc[T],
	countFunc CountFunc,
	queryModsFn QueryModsFunc,
) paging.Fetcher[T] {
	if queryModsFn == nil {
		queryModsFn = CursorToQueryMods
	}
	return &Fetcher[T]{
		queryFunc:   queryFunc,
		countFunc:   countFunc,
		queryModsFn: queryModsFn,
	}
}

// Fetch retrieves items from the database using SQLBoiler query mods.
func (f *Fetcher[T]) Fetch(ctx context.Context, params paging.FetchParams) ([]T, error) {
	mods, err := f.queryModsFn(params)
	if err != nil {
		return nil, errors.Wrap(err, "sqlboiler: build query mods")
	}

	items, err := f.queryFunc(ctx, mods...)
	if err != nil {
		return nil, errors.Wrap(err, "sqlboiler: fetch")
	}
	return items, nil
}

// Count returns the number of items matching the conditions.
func (f *Fetcher[T]) Count(ctx context.Context, params paging.FetchParams) (int64, error) {
	if f.countFunc == nil {
		return 0, errors.New("sqlboiler: count is not configured")
	}

	mods, err := CountToQueryMods(params)
	if err != nil {
		return 0, errors.Wrap(err, "sqlboiler: build count mods")
	}

	n, err := f.countFunc(ctx, mods...)
	if err != nil {
		return 0, errors.Wrap(err, "sqlboiler: count")
	}
	return n, nil
}
