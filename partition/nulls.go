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

package partition

import (
	"github.com/rulego/rangewindow/types"
)

// SplitNulls splits one group into its null and non-null order-key
// subranges. Sorted input places all null order keys contiguously at one
// group edge: the leading edge for NullsFirst, the trailing edge for
// NullsLast. The two returned ranges exactly partition the group.
//
// Interleaved nulls violate the sorted-input contract and fail with an
// invalid-argument error rather than being corrected here.
func SplitNulls(g types.RowRange, col *types.OrderColumn, nullOrder types.NullOrder) (nullRange, valueRange types.RowRange, err error) {
	switch nullOrder {
	case types.NullsLast:
		boundary := g.End
		for boundary > g.Start && col.IsNull(boundary-1) {
			boundary--
		}
		for i := g.Start; i < boundary; i++ {
			if col.IsNull(i) {
				return types.RowRange{}, types.RowRange{},
					types.NewInvalidArgumentError("null order key at row %d is not contiguous at the group's trailing edge [%d, %d)", i, boundary, g.End)
			}
		}
		return types.RowRange{Start: boundary, End: g.End}, types.RowRange{Start: g.Start, End: boundary}, nil
	default: // NullsFirst
		boundary := g.Start
		for boundary < g.End && col.IsNull(boundary) {
			boundary++
		}
		for i := boundary; i < g.End; i++ {
			if col.IsNull(i) {
				return types.RowRange{}, types.RowRange{},
					types.NewInvalidArgumentError("null order key at row %d is not contiguous at the group's leading edge [%d, %d)", i, g.Start, boundary)
			}
		}
		return types.RowRange{Start: g.Start, End: boundary}, types.RowRange{Start: boundary, End: g.End}, nil
	}
}
