package models

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// Post is an object representing the database table.
type Post struct {
	ID          string      `boil:"id" json:"id"`
	UserID      string      `boil:"user_id" json:"user_id"`
	Title       string      `boil:"title" json:"title"`
	Content     null.String `boil:"content" json:"content,omitempty"`
	ViewCount   int         `boil:"view_count" json:"view_count"`
	PublishedAt null.Time   `boil:"published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time   `boil:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `boil:"updated_at" json:"updated_at"`
}

type postQuery struct {
	mods []qm.QueryMod
}

// Posts returns a new query against the posts table.
func Posts(mods ...qm.QueryMod) postQuery {
	return postQuery{mods: mods}
}

// All returns all Post records from the query.
func (q postQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Post, error) {
	var posts []*Post
	if err := newQuery(`"posts"`, q.mods).Bind(ctx, exec, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the count of all Post records in the query.
func (q postQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return count(ctx, exec, newQuery(`"posts"`, q.mods))
}
