// Package cursor provides Relay cursor-based (keyset) pagination.
//
// Cursor pagination uses the values of sort columns to efficiently navigate
// large datasets without the performance degradation of offset pagination.
// It's ideal for infinite scroll, real-time feeds, and APIs with millions of records.
//
// Key Features:
//   - Forward (first/after) and backward (last/before) traversal
//   - Multi-field sort keys with per-field direction and an id tie-break
//   - Opaque cursor encoding (Base64 JSON) with typed values
//   - Store-agnostic predicates (see paging.Condition)
//
// Example usage:
//
//	key := cursor.NewSortKey[*models.User]().
//	    Date("created_at", cursor.DESC, func(u *models.User) time.Time { return u.CreatedAt }).
//	    ID("id", func(u *models.User) string { return u.ID })
//
//	fetcher := sqlboiler.NewFetcher(queryFunc, countFunc, sqlboiler.CursorToQueryMods)
//	paginator := cursor.New(fetcher, key, paging.WithMaxSize(50))
//
//	conn, err := paginator.Paginate(ctx, args)
//
// Cursor Format:
//
//	Cursors are base64-encoded JSON objects:
//	{"fields":[{"field":"created_at","value":"2024-01-01T00:00:00Z","isDate":true}],"id":"abc-123"}
//
// Performance:
//
//	Requires a composite index on the sort columns and id:
//	CREATE INDEX idx ON table(col1 DESC, id DESC);
package cursor

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/nrfta/relay-paging"
)

// Paginator is the paginator for cursor-based pagination. It holds only
// immutable configuration and is safe for concurrent use.
type Paginator[T any] struct {
	fetcher paging.Fetcher[T]
	key     *SortKey[T]
	config  paging.PageConfig
	logger  logrus.FieldLogger
}

var _ paging.Paginator[struct{}] = (*Paginator[struct{}])(nil)

// New creates a cursor paginator over fetcher ordered by key.
//
// Options set the default and maximum page size and whether a total count is
// included. The key is validated on the first Paginate call.
func New[T any](fetcher paging.Fetcher[T], key *SortKey[T], opts ...paging.PaginateOption) *Paginator[T] {
	return &Paginator[T]{
		fetcher: fetcher,
		key:     key,
		config:  *paging.ApplyPaginateOptions(opts...),
		logger:  logrus.StandardLogger(),
	}
}

// WithLogger returns a copy of the paginator logging to l.
func (p *Paginator[T]) WithLogger(l logrus.FieldLogger) *Paginator[T] {
	cp := *p
	if l != nil {
		cp.logger = l
	}
	return &cp
}

// Config returns a copy of the paginator configuration.
func (p *Paginator[T]) Config() paging.PageConfig {
	return p.config
}

// SortKey returns the sort key the paginator orders by.
func (p *Paginator[T]) SortKey() *SortKey[T] {
	return p.key
}

// Paginate fetches one page.
//
// It validates args, decodes the boundary cursor, fetches limit+1 rows in the
// traversal order, trims the extra row, restores natural order for backward
// traversal and optionally counts the rows matching base.
//
// Argument and cursor failures match paging.ErrInvalidArguments and
// paging.ErrInvalidCursor and happen before any store access. Fetcher errors
// are returned unchanged.
func (p *Paginator[T]) Paginate(ctx context.Context, args *paging.PageArgs, base ...paging.Condition) (*paging.Connection[T], error) {
	if err := p.key.Validate(); err != nil {
		return nil, err
	}

	if err := args.Validate(); err != nil {
		return nil, err
	}

	isForward := args.IsForward()
	limit := p.config.EffectiveLimit(args)
	override := args.GetOrderBy()

	cursorCond, err := p.cursorCondition(args, override)
	if err != nil {
		return nil, err
	}

	conditions := append(append([]paging.Condition{}, base...), cursorCond)

	log := p.logger.WithFields(logrus.Fields{
		"strategy":  "cursor",
		"direction": directionLabel(isForward),
		"limit":     limit,
	})

	start := time.Now()
	items, err := p.fetcher.Fetch(ctx, paging.FetchParams{
		Limit:      limit + 1,
		Conditions: conditions,
		OrderBy:    p.key.OrderBy(override, !isForward),
	})
	if err != nil {
		log.WithError(err).Warn("paginate: fetch failed")
		return nil, err
	}

	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	if !isForward {
		items = lo.Reverse(items)
	}

	var totalCount *int
	if p.config.IncludeTotalCount {
		count, err := p.fetcher.Count(ctx, paging.FetchParams{Conditions: base})
		if err != nil {
			log.WithError(err).Warn("paginate: count failed")
			return nil, err
		}
		n := int(count)
		totalCount = &n
	}

	conn, err := BuildConnection(p.key, items, hasMore, args)
	if err != nil {
		return nil, err
	}
	conn.TotalCount = totalCount

	log.WithFields(logrus.Fields{
		"returned":    len(conn.Edges),
		"has_more":    hasMore,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("paginate")

	return conn, nil
}

func (p *Paginator[T]) cursorCondition(args *paging.PageArgs, override *Direction) (paging.Condition, error) {
	token, isAfter := args.Cursor()
	if token == nil {
		return nil, nil
	}

	c, err := Decode(*token)
	if err != nil {
		return nil, err
	}

	if err := p.key.Match(c, override); err != nil {
		return nil, err
	}

	return BuildCondition(p.key, c, isAfter, override)
}

// BuildConnection creates a Relay connection from items already trimmed to
// the page and in natural order. Each edge's cursor encodes the item's sort
// key values and the args' orderBy override; page info follows
// paging.NewPageInfo.
func BuildConnection[T any](key *SortKey[T], items []T, hasMore bool, args *paging.PageArgs) (*paging.Connection[T], error) {
	conn, err := paging.BuildConnection(
		items,
		func(_ int, item T) (string, error) {
			return key.EncodeCursorFor(item, args.GetOrderBy())
		},
		func(item T) (T, error) { return item, nil },
	)
	if err != nil {
		return nil, err
	}

	conn.PageInfo = paging.NewPageInfo(conn.Edges, hasMore, args)
	return conn, nil
}

func directionLabel(isForward bool) string {
	if isForward {
		return "forward"
	}
	return "backward"
}
