package models

import (
	"context"
	"time"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// User is an object representing the database table.
type User struct {
	ID        string    `boil:"id" json:"id"`
	Email     string    `boil:"email" json:"email"`
	Name      string    `boil:"name" json:"name"`
	Age       int       `boil:"age" json:"age"`
	IsActive  bool      `boil:"is_active" json:"is_active"`
	CreatedAt time.Time `boil:"created_at" json:"created_at"`
	UpdatedAt time.Time `boil:"updated_at" json:"updated_at"`
}

type userQuery struct {
	mods []qm.QueryMod
}

// Users returns a new query against the users table.
func Users(mods ...qm.QueryMod) userQuery {
	return userQuery{mods: mods}
}

// All returns all User records from the query.
func (q userQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*User, error) {
	var users []*User
	if err := newQuery(`"users"`, q.mods).Bind(ctx, exec, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the count of all User records in the query.
func (q userQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return count(ctx, exec, newQuery(`"users"`, q.mods))
}
