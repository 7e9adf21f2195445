// Package memory provides an in-memory paging.Fetcher over a slice.
//
// It evaluates paging.Condition predicates and ORDER BY directives against
// records through a column lookup, usually the extractors of a
// cursor.SortKey. It is meant for small collections, tests and caches that
// need the same pagination semantics as the SQL adapters.
//
// Example usage:
//
//	key := cursor.NewSortKey[*Post]().
//	    Number("score", cursor.DESC, func(p *Post) float64 { return p.Score }).
//	    ID("id", func(p *Post) string { return p.ID })
//
//	fetcher := memory.NewFetcher(posts, key.Value)
//	paginator := cursor.New(fetcher, key)
package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/nrfta/relay-paging"
)

// Lookup returns the value of column for item, and false when the item has
// no such column.
type Lookup[T any] func(item T, column string) (paging.Value, bool)

// Fetcher implements paging.Fetcher[T] over a fixed slice.
// The slice is never modified.
type Fetcher[T any] struct {
	items  []T
	lookup Lookup[T]
}

// NewFetcher creates a fetcher over items. The slice is copied.
func NewFetcher[T any](items []T, lookup Lookup[T]) *Fetcher[T] {
	return &Fetcher[T]{
		items:  append([]T(nil), items...),
		lookup: lookup,
	}
}

// Fetch filters, sorts and limits the items.
func (f *Fetcher[T]) Fetch(ctx context.Context, params paging.FetchParams) ([]T, error) {
	matched, err := f.filter(ctx, params.Where())
	if err != nil {
		return nil, err
	}

	if len(params.OrderBy) > 0 {
		if err := f.sort(matched, params.OrderBy); err != nil {
			return nil, err
		}
	}

	if params.Limit > 0 && len(matched) > params.Limit {
		matched = matched[:params.Limit]
	}

	return matched, nil
}

// Count returns the number of items matching the conditions.
func (f *Fetcher[T]) Count(ctx context.Context, params paging.FetchParams) (int64, error) {
	matched, err := f.filter(ctx, params.Where())
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (f *Fetcher[T]) filter(ctx context.Context, where paging.Condition) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var evalErr error
	matched := lo.Filter(f.items, func(item T, _ int) bool {
		if evalErr != nil {
			return false
		}
		ok, err := paging.Evaluate(where, func(column string) (paging.Value, bool) {
			return f.lookup(item, column)
		})
		if err != nil {
			evalErr = err
		}
		return ok
	})
	if evalErr != nil {
		return nil, fmt.Errorf("memory: %w", evalErr)
	}

	return matched, nil
}

func (f *Fetcher[T]) sort(items []T, orderBy []paging.OrderBy) error {
	var sortErr error

	sort.SliceStable(items, func(i, j int) bool {
		for _, o := range orderBy {
			a, okA := f.lookup(items[i], o.Column)
			b, okB := f.lookup(items[j], o.Column)
			if !okA || !okB {
				sortErr = fmt.Errorf("memory: unknown order column %q", o.Column)
				return false
			}

			c, err := a.Compare(b)
			if err != nil {
				sortErr = fmt.Errorf("memory: order column %q: %w", o.Column, err)
				return false
			}
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	return sortErr
}
