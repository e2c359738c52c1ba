/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

// Order defines how the order-key column is sorted within each group.
type Order int

const (
	// Ascending means order-key values are monotonic non-decreasing within a group
	Ascending Order = iota
	// Descending means order-key values are monotonic non-increasing within a group
	Descending
)

// String returns string representation of the sort order
func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// NullOrder defines which edge of a group the null order-key rows occupy.
type NullOrder int

const (
	// NullOrderDefault resolves to NullsFirst under ascending order and
	// NullsLast under descending order
	NullOrderDefault NullOrder = iota
	// NullsFirst means null order keys occupy the group's leading rows
	NullsFirst
	// NullsLast means null order keys occupy the group's trailing rows
	NullsLast
)

// String returns string representation of the null ordering
func (n NullOrder) String() string {
	switch n {
	case NullOrderDefault:
		return "default"
	case NullsFirst:
		return "nulls_first"
	case NullsLast:
		return "nulls_last"
	default:
		return "unknown"
	}
}

// DefaultNullOrder returns the conventional null placement for a sort order:
// nulls sort first in ascending order and last in descending order.
func DefaultNullOrder(o Order) NullOrder {
	if o == Descending {
		return NullsLast
	}
	return NullsFirst
}

// Resolve replaces NullOrderDefault with the conventional placement for o.
func (n NullOrder) Resolve(o Order) NullOrder {
	if n == NullOrderDefault {
		return DefaultNullOrder(o)
	}
	return n
}

// RowRange is a half-open range [Start, End) of row offsets. It describes
// groups, null/value subranges within a group, and per-row windows.
type RowRange struct {
	Start int
	End   int
}

// Size returns the number of rows covered by the range
func (r RowRange) Size() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no rows
func (r RowRange) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains reports whether row offset i falls inside the range
func (r RowRange) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// OrderColumn holds the order-key column: values expressed in a single
// native unit, with an optional validity mask. A nil Valid slice means
// every row is non-null.
type OrderColumn struct {
	Values []int64
	Valid  []bool
	Unit   Unit
}

// Len returns the number of rows in the column
func (c *OrderColumn) Len() int {
	return len(c.Values)
}

// IsNull reports whether the order key at row i is null
func (c *OrderColumn) IsNull(i int) bool {
	return c.Valid != nil && !c.Valid[i]
}
