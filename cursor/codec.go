package cursor

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/nrfta/relay-paging"
)

// Field is one sort key value carried by a cursor.
type Field struct {
	Field string
	Value paging.Value
}

// Cursor is the decoded position of a record in a sort order: the values of
// the sort key fields, in sort key order, followed by the record id.
//
// OrderBy is the direction override the cursor was issued under, nil for the
// sort key's declared directions. Legacy is set for cursors decoded from the
// single-field format, which records no override.
type Cursor struct {
	Fields  []Field
	ID      string
	OrderBy *paging.Direction
	Legacy  bool
}

// wireField is the JSON shape of a Field. Dates are tagged so they decode
// back into dates instead of strings.
type wireField struct {
	Field  string          `json:"field"`
	Value  json.RawMessage `json:"value"`
	IsDate bool            `json:"isDate"`
}

type wireCursor struct {
	Fields  []wireField       `json:"fields"`
	ID      string            `json:"id"`
	OrderBy *paging.Direction `json:"orderBy,omitempty"`
}

// wireAny accepts both the current and the legacy single-field shape.
type wireAny struct {
	Fields  *[]wireField      `json:"fields"`
	ID      json.RawMessage   `json:"id"`
	OrderBy *paging.Direction `json:"orderBy"`

	// legacy
	Field  string          `json:"field"`
	Value  json.RawMessage `json:"value"`
	IsDate bool            `json:"isDate"`
}

var encoding = base64.StdEncoding

// Encode converts a cursor into an opaque token: base64 of
// {"fields":[{"field":..,"value":..,"isDate":..}],"id":..,"orderBy":..},
// with orderBy omitted when the cursor has no override.
func Encode(c Cursor) (string, error) {
	if c.ID == "" {
		return "", fmt.Errorf("encode cursor: empty id")
	}

	w := wireCursor{
		Fields:  make([]wireField, len(c.Fields)),
		ID:      c.ID,
		OrderBy: c.OrderBy,
	}

	for i, f := range c.Fields {
		raw, err := encodeValue(f.Value)
		if err != nil {
			return "", fmt.Errorf("encode cursor field %q: %w", f.Field, err)
		}
		w.Fields[i] = wireField{
			Field:  f.Field,
			Value:  raw,
			IsDate: f.Value.Kind() == paging.KindDate,
		}
	}

	data, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}

	return encoding.EncodeToString(data), nil
}

// Decode parses a token produced by Encode. It also accepts the legacy
// single-field shape {"field","value","id","isDate"}, which is lifted into a
// one-field cursor.
//
// Every failure matches paging.ErrInvalidCursor.
func Decode(token string) (*Cursor, error) {
	data, err := encoding.DecodeString(token)
	if err != nil {
		return nil, &paging.CursorError{Reason: "not base64", Err: err}
	}

	var w wireAny
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&w); err != nil {
		return nil, &paging.CursorError{Reason: "not JSON", Err: err}
	}
	if rest := bytes.TrimSpace(data[dec.InputOffset():]); len(rest) > 0 {
		return nil, &paging.CursorError{Reason: "trailing data"}
	}

	id, err := decodeID(w.ID)
	if err != nil {
		return nil, err
	}

	if w.Fields == nil {
		if w.Field == "" || len(w.Value) == 0 {
			return nil, &paging.CursorError{Reason: "missing fields"}
		}

		v, err := decodeValue(w.Value, w.IsDate)
		if err != nil {
			return nil, &paging.CursorError{Reason: fmt.Sprintf("field %q", w.Field), Err: err}
		}
		return &Cursor{Fields: []Field{{Field: w.Field, Value: v}}, ID: id, Legacy: true}, nil
	}

	c := &Cursor{Fields: make([]Field, len(*w.Fields)), ID: id, OrderBy: w.OrderBy}
	for i, f := range *w.Fields {
		if f.Field == "" {
			return nil, &paging.CursorError{Reason: fmt.Sprintf("field %d has no name", i)}
		}

		v, err := decodeValue(f.Value, f.IsDate)
		if err != nil {
			return nil, &paging.CursorError{Reason: fmt.Sprintf("field %q", f.Field), Err: err}
		}
		c.Fields[i] = Field{Field: f.Field, Value: v}
	}

	return c, nil
}

func encodeValue(v paging.Value) (json.RawMessage, error) {
	switch v.Kind() {
	case paging.KindString:
		return json.Marshal(v.Str())
	case paging.KindNumber:
		return json.Marshal(v.Number())
	case paging.KindDate:
		return json.Marshal(v.Date().Format(time.RFC3339Nano))
	case paging.KindInt:
		return nil, fmt.Errorf("int values are only carried by the id")
	}
	return nil, fmt.Errorf("invalid value")
}

// maxEpochMillis is the range of a JavaScript Date: 100,000,000 days either
// side of the epoch.
const maxEpochMillis = 8.64e15

func decodeValue(raw json.RawMessage, isDate bool) (paging.Value, error) {
	if len(raw) == 0 {
		return paging.Value{}, fmt.Errorf("missing value")
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return paging.Value{}, err
	}

	switch x := v.(type) {
	case string:
		if !isDate {
			return paging.StringValue(x), nil
		}
		t, err := time.Parse(time.RFC3339Nano, x)
		if err != nil {
			return paging.Value{}, fmt.Errorf("bad date: %w", err)
		}
		return paging.DateValue(t), nil

	case float64:
		if !isDate {
			return paging.NumberValue(x), nil
		}
		// epoch milliseconds, as a JavaScript Date serializes to a number
		if math.IsNaN(x) || math.Abs(x) > maxEpochMillis {
			return paging.Value{}, fmt.Errorf("date %s out of range", string(raw))
		}
		return paging.DateValue(time.UnixMilli(int64(x))), nil
	}

	return paging.Value{}, fmt.Errorf("unsupported value %s", string(raw))
}

func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", &paging.CursorError{Reason: "missing id"}
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", &paging.CursorError{Reason: "bad id", Err: err}
	}

	switch x := v.(type) {
	case string:
		if x != "" {
			return x, nil
		}
	case json.Number:
		// kept verbatim so 64-bit ids keep every digit
		return x.String(), nil
	}

	return "", &paging.CursorError{Reason: "missing id"}
}
