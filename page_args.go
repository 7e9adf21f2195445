package paging

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// DefaultPageSize is the number of items per page when neither First nor
	// Last is given.
	DefaultPageSize = 20

	// DefaultMaxPageSize caps First and Last.
	// This protects against resource exhaustion from unreasonably large page requests.
	DefaultMaxPageSize = 100
)

// Direction is a sort direction.
type Direction string

const (
	ASC  Direction = "asc"
	DESC Direction = "desc"
)

// ParseDirection parses "asc" or "desc", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case ASC:
		return ASC, nil
	case DESC:
		return DESC, nil
	}
	return "", &ArgumentError{Reason: fmt.Sprintf("orderBy must be %q or %q, got %q", ASC, DESC, s)}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == DESC {
		return ASC
	}
	return DESC
}

// IsDesc reports whether d is DESC.
func (d Direction) IsDesc() bool { return d == DESC }

// UnmarshalJSON accepts "asc" or "desc".
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// PageArgs represents Relay pagination query parameters.
//
// First/After select forward traversal and Last/Before select backward
// traversal. OrderBy, when set, overrides the direction of every field of the
// sort key the args are applied to. Cursors are bound to the OrderBy they were
// issued under and are rejected under another.
type PageArgs struct {
	First   *int       `json:"first,omitempty"`
	After   *string    `json:"after,omitempty"`
	Last    *int       `json:"last,omitempty"`
	Before  *string    `json:"before,omitempty"`
	OrderBy *Direction `json:"orderBy,omitempty"`
}

// GetFirst returns the requested forward page size.
func (pa *PageArgs) GetFirst() *int {
	if pa == nil {
		return nil
	}
	return pa.First
}

// GetAfter returns the forward cursor.
func (pa *PageArgs) GetAfter() *string {
	if pa == nil {
		return nil
	}
	return pa.After
}

// GetLast returns the requested backward page size.
func (pa *PageArgs) GetLast() *int {
	if pa == nil {
		return nil
	}
	return pa.Last
}

// GetBefore returns the backward cursor.
func (pa *PageArgs) GetBefore() *string {
	if pa == nil {
		return nil
	}
	return pa.Before
}

// GetOrderBy returns the direction override, if any.
func (pa *PageArgs) GetOrderBy() *Direction {
	if pa == nil {
		return nil
	}
	return pa.OrderBy
}

// WithOrderBy sets the direction override and returns the args for chaining.
// If pa is nil, a new PageArgs is created.
//
// Example:
//
//	args := paging.WithOrderBy(&paging.PageArgs{First: &first}, paging.DESC)
func WithOrderBy(pa *PageArgs, dir Direction) *PageArgs {
	if pa == nil {
		pa = &PageArgs{}
	}
	pa.OrderBy = &dir
	return pa
}

// IsForward reports whether the args traverse forward. Forward is the
// default; backward is chosen only when Last or Before is set and neither
// First nor After is.
func (pa *PageArgs) IsForward() bool {
	if pa == nil {
		return true
	}
	if pa.First != nil || pa.After != nil {
		return true
	}
	return pa.Last == nil && pa.Before == nil
}

// Cursor returns the boundary cursor of the request (After, else Before) and
// whether it is an "after" cursor.
func (pa *PageArgs) Cursor() (token *string, isAfter bool) {
	if pa == nil {
		return nil, false
	}
	if pa.After != nil {
		return pa.After, true
	}
	return pa.Before, false
}

// Validate checks that the args are not conflicting or malformed.
// All failures match ErrInvalidArguments.
func (pa *PageArgs) Validate() error {
	if pa == nil {
		return nil
	}

	if pa.First != nil && pa.Last != nil {
		return &ArgumentError{Reason: "cannot specify both first and last"}
	}

	if pa.First != nil && *pa.First <= 0 {
		return &ArgumentError{Reason: "first must be a positive integer"}
	}

	if pa.Last != nil && *pa.Last <= 0 {
		return &ArgumentError{Reason: "last must be a positive integer"}
	}

	if pa.After != nil && pa.Before != nil {
		return &ArgumentError{Reason: "cannot specify both after and before"}
	}

	if pa.OrderBy != nil && *pa.OrderBy != ASC && *pa.OrderBy != DESC {
		return &ArgumentError{Reason: fmt.Sprintf("orderBy must be %q or %q", ASC, DESC)}
	}

	return nil
}
