package cursor

import (
	"github.com/nrfta/relay-paging"
)

// BuildCondition returns the predicate selecting records strictly beyond c
// in the order of key.
//
// isAfter selects the side: after a cursor in an ascending column means
// greater-than, in a descending column less-than; before is the mirror.
// override, when not nil, replaces every field's direction.
//
// The result is the expanded lexicographic comparison
//
//	f1 > c1 OR (f1 = c1 AND (f2 > c2 OR (f2 = c2 AND id > cid)))
//
// which is equivalent to (f1, f2, id) > (c1, c2, cid) with per-column
// operators. The id term is always a bare strict comparison since ids are
// unique.
//
// A nil cursor yields a nil condition. c must have passed key.Match.
func BuildCondition[T any](key *SortKey[T], c *Cursor, isAfter bool, override *Direction) (paging.Condition, error) {
	if c == nil {
		return nil, nil
	}

	id, err := key.idToValue(c.ID)
	if err != nil {
		return nil, &paging.CursorError{Reason: "cursor id does not match sort key", Err: err}
	}

	cond := paging.Condition(paging.Compare{
		Column: key.idName,
		Op:     strictOp(key.idDirection(override), isAfter),
		Value:  id,
	})

	// Fold from the innermost term outwards.
	for i := len(key.fields) - 1; i >= 0; i-- {
		f := key.fields[i]
		v := c.Fields[i].Value

		cond = paging.Or{
			paging.Compare{Column: f.name, Op: strictOp(key.direction(f, override), isAfter), Value: v},
			paging.And{
				paging.Eq(f.name, v),
				cond,
			},
		}
	}

	return cond, nil
}

// strictOp maps a column direction and a cursor side to the comparison
// operator that selects rows beyond the cursor.
func strictOp(dir Direction, isAfter bool) paging.Op {
	if dir.IsDesc() == isAfter {
		return paging.OpLt
	}
	return paging.OpGt
}
