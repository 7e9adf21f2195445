package paging

import "fmt"

// Connection represents a Relay-compliant GraphQL connection.
//
// Type parameter T is the node type (e.g., User, Post, Organization).
//
// Example GraphQL schema:
//
//	type UserConnection {
//	  edges: [UserEdge!]!
//	  pageInfo: PageInfo!
//	  totalCount: Int
//	}
type Connection[T any] struct {
	// Edges contains the list of edges, each with a cursor and node,
	// always in the sort key's natural order.
	Edges []Edge[T] `json:"edges"`

	// PageInfo contains pagination metadata (hasNextPage, cursors, etc.)
	PageInfo PageInfo `json:"pageInfo"`

	// TotalCount is set only when the paginator is configured to count.
	TotalCount *int `json:"totalCount,omitempty"`
}

// Edge represents a Relay-compliant edge in a connection.
//
// Example GraphQL schema:
//
//	type UserEdge {
//	  cursor: String!
//	  node: User!
//	}
type Edge[T any] struct {
	// Node is the actual data item.
	Node T `json:"node"`

	// Cursor is an opaque string that marks this item's position in the list.
	// Clients can use this cursor to resume pagination from this point.
	Cursor string `json:"cursor"`
}

// Nodes returns the nodes of all edges, in order.
func (c *Connection[T]) Nodes() []T {
	nodes := make([]T, len(c.Edges))
	for i, e := range c.Edges {
		nodes[i] = e.Node
	}
	return nodes
}

// BuildConnection creates a Connection from a slice of source items.
// It transforms each item and generates its cursor. PageInfo is left for the
// caller to fill (see NewPageInfo).
//
// Type parameters:
//   - From: Source type (e.g., SQLBoiler model, database row)
//   - To: Target type (e.g., domain model, GraphQL type)
//
// Example usage:
//
//	conn, err := paging.BuildConnection(
//	    dbRecords,
//	    func(i int, item *models.User) (string, error) {
//	        return key.EncodeCursor(item)
//	    },
//	    func(item *models.User) (*domain.User, error) {
//	        return toDomainUser(item)
//	    },
//	)
func BuildConnection[From any, To any](
	items []From,
	cursorEncoder func(index int, item From) (string, error),
	transform func(From) (To, error),
) (*Connection[To], error) {
	conn := &Connection[To]{
		Edges: make([]Edge[To], 0, len(items)),
	}

	for i, item := range items {
		transformed, err := transform(item)
		if err != nil {
			return nil, fmt.Errorf("transform item at index %d: %w", i, err)
		}

		cursor, err := cursorEncoder(i, item)
		if err != nil {
			return nil, fmt.Errorf("encode cursor at index %d: %w", i, err)
		}

		conn.Edges = append(conn.Edges, Edge[To]{
			Node:   transformed,
			Cursor: cursor,
		})
	}

	return conn, nil
}

// MapConnection converts the nodes of conn, keeping cursors, page info and
// total count. Use it to turn database models into domain models after
// pagination.
func MapConnection[From any, To any](conn *Connection[From], transform func(From) (To, error)) (*Connection[To], error) {
	if conn == nil {
		return nil, nil
	}

	out := &Connection[To]{
		Edges:      make([]Edge[To], 0, len(conn.Edges)),
		PageInfo:   conn.PageInfo,
		TotalCount: conn.TotalCount,
	}

	for i, e := range conn.Edges {
		node, err := transform(e.Node)
		if err != nil {
			return nil, fmt.Errorf("transform item at index %d: %w", i, err)
		}
		out.Edges = append(out.Edges, Edge[To]{Node: node, Cursor: e.Cursor})
	}

	return out, nil
}
