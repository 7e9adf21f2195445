// Package gormstore provides a paging.Fetcher backed by a GORM session.
//
// Predicates and orderings are rendered to parameterized SQL and applied with
// Where/Order/Limit, so the same cursor paginator runs on any database GORM
// supports.
//
// Example usage:
//
//	fetcher := gormstore.NewFetcher[*User](db.Model(&User{}))
//	paginator := cursor.New(fetcher, userKey)
package gormstore

import (
	"context"

	"github.com/friendsofgo/errors"
	"gorm.io/gorm"

	"github.com/nrfta/relay-paging"
	"github.com/nrfta/relay-paging/internal/sqlexpr"
)

// Fetcher implements paging.Fetcher[T] with GORM.
type Fetcher[T any] struct {
	db *gorm.DB
}

// NewFetcher creates a fetcher running its queries on db. Scope db to the
// table (db.Model(&User{}) or db.Table("users")) and to any fixed filters;
// every call starts a fresh session from it.
func NewFetcher[T any](db *gorm.DB) *Fetcher[T] {
	return &Fetcher[T]{db: db}
}

// Fetch runs SELECT ... WHERE ... ORDER BY ... LIMIT ... into []T.
func (f *Fetcher[T]) Fetch(ctx context.Context, params paging.FetchParams) ([]T, error) {
	tx, err := f.scoped(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(params.OrderBy) > 0 {
		tx = tx.Order(sqlexpr.OrderBy(params.OrderBy))
	}
	if params.Limit > 0 {
		tx = tx.Limit(params.Limit)
	}

	var items []T
	if err := tx.Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "gormstore: fetch")
	}
	return items, nil
}

// Count runs SELECT count(*) ... WHERE ....
func (f *Fetcher[T]) Count(ctx context.Context, params paging.FetchParams) (int64, error) {
	tx, err := f.scoped(ctx, params)
	if err != nil {
		return 0, err
	}

	if tx.Statement.Model == nil && tx.Statement.Table == "" {
		tx = tx.Model(new(T))
	}

	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "gormstore: count")
	}
	return n, nil
}

func (f *Fetcher[T]) scoped(ctx context.Context, params paging.FetchParams) (*gorm.DB, error) {
	tx := f.db.WithContext(ctx)

	where, args, err := sqlexpr.Where(params.Where())
	if err != nil {
		return nil, errors.Wrap(err, "gormstore: build where")
	}
	if where != "" {
		tx = tx.Where(where, args...)
	}

	return tx, nil
}
