package cursor

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nrfta/relay-paging"
)

// Direction aliases paging.Direction so sort keys read naturally:
// cursor.ASC, cursor.DESC.
type Direction = paging.Direction

const (
	ASC  = paging.ASC
	DESC = paging.DESC
)

// fieldSpec defines a single sort field of a SortKey.
type fieldSpec[T any] struct {
	name      string              // column name: "posts.created_at"
	kind      paging.Kind         // kind every extracted value has
	direction Direction           // declared direction
	extractor func(T) paging.Value // extract value from item
}

// SortKey defines the ordered fields a collection is paginated by, plus the
// unique id used as the final tie-break. It is declared once, with typed
// extractors, and is the single source of truth for cursor encoding, cursor
// conditions and ORDER BY.
//
// The id is sorted in the direction of the last field.
//
// Example:
//
//	var postKey = cursor.NewSortKey[*Post]().
//	    Number("view_count", cursor.DESC, func(p *Post) float64 { return float64(p.ViewCount) }).
//	    Date("created_at", cursor.DESC, func(p *Post) time.Time { return p.CreatedAt }).
//	    ID("id", func(p *Post) string { return p.ID })
type SortKey[T any] struct {
	fields  []*fieldSpec[T]
	byName  map[string]*fieldSpec[T]
	idName  string
	idKind  paging.Kind
	idValue func(T) string
	err     error
}

// NewSortKey creates an empty SortKey. Add at least one field and an id.
func NewSortKey[T any]() *SortKey[T] {
	return &SortKey[T]{
		fields: make([]*fieldSpec[T], 0),
		byName: make(map[string]*fieldSpec[T]),
	}
}

// String adds a string field.
func (k *SortKey[T]) String(name string, dir Direction, extractor func(T) string) *SortKey[T] {
	return k.add(name, paging.KindString, dir, func(item T) paging.Value {
		return paging.StringValue(extractor(item))
	})
}

// Number adds a numeric field.
func (k *SortKey[T]) Number(name string, dir Direction, extractor func(T) float64) *SortKey[T] {
	return k.add(name, paging.KindNumber, dir, func(item T) paging.Value {
		return paging.NumberValue(extractor(item))
	})
}

// Date adds a date field.
func (k *SortKey[T]) Date(name string, dir Direction, extractor func(T) time.Time) *SortKey[T] {
	return k.add(name, paging.KindDate, dir, func(item T) paging.Value {
		return paging.DateValue(extractor(item))
	})
}

// ID sets a string identifier column as the tie-break.
func (k *SortKey[T]) ID(name string, extractor func(T) string) *SortKey[T] {
	return k.setID(name, paging.KindString, extractor)
}

// NumericID sets an integer identifier column as the tie-break. Ids are
// compared as exact int64s, so id 10 sorts after id 9 and 64-bit generated
// ids never collide.
func (k *SortKey[T]) NumericID(name string, extractor func(T) int64) *SortKey[T] {
	return k.setID(name, paging.KindInt, func(item T) string {
		return strconv.FormatInt(extractor(item), 10)
	})
}

func (k *SortKey[T]) add(name string, kind paging.Kind, dir Direction, extractor func(T) paging.Value) *SortKey[T] {
	switch {
	case name == "":
		k.fail(fmt.Errorf("sort key: empty field name"))
	case dir != ASC && dir != DESC:
		k.fail(fmt.Errorf("sort key: field %q: invalid direction %q", name, dir))
	case k.has(name):
		k.fail(fmt.Errorf("sort key: duplicate field %q", name))
	}

	spec := &fieldSpec[T]{
		name:      name,
		kind:      kind,
		direction: dir,
		extractor: extractor,
	}
	k.fields = append(k.fields, spec)
	k.byName[name] = spec

	return k
}

func (k *SortKey[T]) setID(name string, kind paging.Kind, extractor func(T) string) *SortKey[T] {
	switch {
	case name == "":
		k.fail(fmt.Errorf("sort key: empty id name"))
	case k.idName != "":
		k.fail(fmt.Errorf("sort key: id already set to %q", k.idName))
	case k.has(name):
		k.fail(fmt.Errorf("sort key: id %q is also a field", name))
	}

	k.idName = name
	k.idKind = kind
	k.idValue = extractor

	return k
}

func (k *SortKey[T]) has(name string) bool {
	_, ok := k.byName[name]
	return ok || (name != "" && name == k.idName)
}

func (k *SortKey[T]) fail(err error) {
	if k.err == nil {
		k.err = err
	}
}

// Validate reports declaration mistakes: no fields, no id, empty or
// duplicate names.
func (k *SortKey[T]) Validate() error {
	if k == nil {
		return fmt.Errorf("sort key: nil")
	}
	if k.err != nil {
		return k.err
	}
	if len(k.fields) == 0 {
		return fmt.Errorf("sort key: at least one field is required")
	}
	if k.idName == "" {
		return fmt.Errorf("sort key: id is required")
	}
	return nil
}

// Columns returns the field column names followed by the id column.
func (k *SortKey[T]) Columns() []string {
	cols := make([]string, 0, len(k.fields)+1)
	for _, f := range k.fields {
		cols = append(cols, f.name)
	}
	return append(cols, k.idName)
}

// IDColumn returns the id column name.
func (k *SortKey[T]) IDColumn() string {
	return k.idName
}

// Value returns the value of column for item. It resolves columns through the
// declared extractors only.
func (k *SortKey[T]) Value(item T, column string) (paging.Value, bool) {
	if column == k.idName && k.idValue != nil {
		v, err := k.idToValue(k.idValue(item))
		return v, err == nil
	}

	spec, ok := k.byName[column]
	if !ok {
		return paging.Value{}, false
	}
	return spec.extractor(item), true
}

// Extract builds the cursor of item.
func (k *SortKey[T]) Extract(item T) Cursor {
	c := Cursor{
		Fields: make([]Field, len(k.fields)),
		ID:     k.idValue(item),
	}
	for i, f := range k.fields {
		c.Fields[i] = Field{Field: f.name, Value: f.extractor(item)}
	}
	return c
}

// EncodeCursor extracts and encodes the cursor of item.
func (k *SortKey[T]) EncodeCursor(item T) (string, error) {
	return Encode(k.Extract(item))
}

// EncodeCursorFor encodes the cursor of item as issued under an orderBy
// override, so it is only accepted back under the same override.
func (k *SortKey[T]) EncodeCursorFor(item T, override *Direction) (string, error) {
	c := k.Extract(item)
	c.OrderBy = override
	return Encode(c)
}

// Match checks that c was produced under this sort key and override: same
// field names in the same order, same value kinds, an id of the right shape
// and the same orderBy override. Legacy cursors carry no override and are
// accepted under any.
func (k *SortKey[T]) Match(c *Cursor, override *Direction) error {
	if len(c.Fields) != len(k.fields) {
		return &paging.CursorError{
			Reason: fmt.Sprintf("cursor has %d fields, sort key has %d", len(c.Fields), len(k.fields)),
		}
	}

	for i, f := range k.fields {
		got := c.Fields[i]
		if got.Field != f.name {
			return &paging.CursorError{
				Reason: fmt.Sprintf("cursor field %d is %q, sort key expects %q", i, got.Field, f.name),
			}
		}
		if got.Value.Kind() != f.kind {
			return &paging.CursorError{
				Reason: fmt.Sprintf("cursor field %q is a %s, sort key expects a %s", f.name, got.Value.Kind(), f.kind),
			}
		}
	}

	if _, err := k.idToValue(c.ID); err != nil {
		return &paging.CursorError{Reason: "cursor id does not match sort key", Err: err}
	}

	if !c.Legacy && directionLabelOf(c.OrderBy) != directionLabelOf(override) {
		return &paging.CursorError{
			Reason: fmt.Sprintf("cursor was issued for orderBy %s, request has %s",
				directionLabelOf(c.OrderBy), directionLabelOf(override)),
		}
	}

	return nil
}

func directionLabelOf(d *Direction) string {
	if d == nil {
		return "default"
	}
	return string(*d)
}

// OrderBy returns the ORDER BY directives of the key. override, when not nil,
// replaces every field's direction; reverse flips the whole order.
func (k *SortKey[T]) OrderBy(override *Direction, reverse bool) []paging.OrderBy {
	orderBy := make([]paging.OrderBy, 0, len(k.fields)+1)

	for _, f := range k.fields {
		dir := k.direction(f, override)
		if reverse {
			dir = dir.Reverse()
		}
		orderBy = append(orderBy, paging.OrderBy{Column: f.name, Desc: dir.IsDesc()})
	}

	last := orderBy[len(orderBy)-1]
	return append(orderBy, paging.OrderBy{Column: k.idName, Desc: last.Desc})
}

func (k *SortKey[T]) direction(f *fieldSpec[T], override *Direction) Direction {
	if override != nil {
		return *override
	}
	return f.direction
}

// idDirection is the direction of the tie-break: that of the last field.
func (k *SortKey[T]) idDirection(override *Direction) Direction {
	return k.direction(k.fields[len(k.fields)-1], override)
}

func (k *SortKey[T]) idToValue(id string) (paging.Value, error) {
	if k.idKind == paging.KindInt {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return paging.Value{}, fmt.Errorf("id %q is not an integer", id)
		}
		return paging.IntValue(n), nil
	}
	return paging.StringValue(id), nil
}
