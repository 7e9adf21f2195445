package paging

import "context"

// Paginator is the core interface for Relay cursor pagination.
//
// Type parameter T is the item type being paginated (e.g., User, Post, Organization).
type Paginator[T any] interface {
	// Paginate executes pagination and returns a connection.
	// Base conditions are ANDed with the cursor condition and are the only
	// conditions used for the total count.
	Paginate(ctx context.Context, args *PageArgs, base ...Condition) (*Connection[T], error)
}

// Fetcher abstracts the ordered query store for any ORM or database layer.
// This interface allows paginators to work with SQLBoiler, GORM, an
// in-memory slice or raw SQL without being tightly coupled to any of them.
//
// Implementations must support equality and strict inequality on every sort
// key column and honor the requested order exactly.
//
// Type parameter T is the record type (e.g., *models.User from SQLBoiler).
type Fetcher[T any] interface {
	// Fetch retrieves at most params.Limit items matching params.Conditions,
	// ordered by params.OrderBy.
	Fetch(ctx context.Context, params FetchParams) ([]T, error)

	// Count returns the number of items matching params.Conditions.
	// Limit and OrderBy are unset when paginators call it.
	Count(ctx context.Context, params FetchParams) (int64, error)
}

// FetchParams contains all parameters needed to fetch a page of data.
type FetchParams struct {
	// Limit is the maximum number of items to fetch. Zero means no limit.
	Limit int

	// Conditions are ANDed together. Nil entries are ignored.
	Conditions []Condition

	// OrderBy specifies the sort order for results.
	OrderBy []OrderBy
}

// Where returns the conjunction of all non-nil conditions, or nil when there
// are none.
func (p FetchParams) Where() Condition {
	conds := make(And, 0, len(p.Conditions))
	for _, c := range p.Conditions {
		if c != nil {
			conds = append(conds, c)
		}
	}

	switch len(conds) {
	case 0:
		return nil
	case 1:
		return conds[0]
	}
	return conds
}

// OrderBy represents a sort directive for query results.
type OrderBy struct {
	// Column is the name of the column to sort by.
	Column string

	// Desc indicates descending order. False means ascending.
	Desc bool
}
