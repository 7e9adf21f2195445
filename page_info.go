package paging

// PageInfo contains metadata about a paginated result set.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

// NewEmptyPageInfo returns an empty PageInfo. Useful for short-circuiting a
// resolver that knows there is nothing to return.
func NewEmptyPageInfo() PageInfo {
	return PageInfo{}
}

// NewPageInfo builds the page info of a cursor page.
//
// hasMore is the result of the N+1 check of the query that produced edges.
// Forward pages report it as HasNextPage and derive HasPreviousPage from the
// presence of an after cursor. Backward pages report it as HasPreviousPage
// and derive HasNextPage from the presence of a before cursor; the tail past
// the before cursor is not re-checked.
func NewPageInfo[T any](edges []Edge[T], hasMore bool, args *PageArgs) PageInfo {
	info := PageInfo{}

	if args.IsForward() {
		info.HasNextPage = hasMore
		info.HasPreviousPage = args.GetAfter() != nil
	} else {
		info.HasNextPage = args.GetBefore() != nil
		info.HasPreviousPage = hasMore
	}

	if len(edges) > 0 {
		start := edges[0].Cursor
		end := edges[len(edges)-1].Cursor
		info.StartCursor = &start
		info.EndCursor = &end
	}

	return info
}
