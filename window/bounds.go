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

package window

import (
	"math"
	"sort"

	"github.com/rulego/rangewindow/types"
)

// ResolveBounds computes the [start, end) row window for every row of one
// group. The result is aligned to the group: entry i describes the window
// of row g.Start+i, expressed in absolute row offsets.
//
// Rows in the null subrange all share the null subrange itself as their
// window, for any combination of bounds: null order keys are mutually
// equal, pairwise distance is zero, and zero distance satisfies every
// non-negative bound.
//
// Rows in the value subrange get inclusive lower/upper targets derived
// from their own order key and the scaled bound magnitudes, resolved with
// binary search over the monotonic value run. An unbounded side extends
// the window to the group edge, across a leading or trailing null
// subrange.
func ResolveBounds(g, nullRange, valueRange types.RowRange, col *types.OrderColumn,
	order types.Order, preceding, following types.ScaledBound) ([]types.RowRange, error) {
	if !preceding.Unbounded && preceding.Magnitude < 0 {
		return nil, types.NewInvalidArgumentError("preceding bound magnitude must be non-negative, got %d", preceding.Magnitude)
	}
	if !following.Unbounded && following.Magnitude < 0 {
		return nil, types.NewInvalidArgumentError("following bound magnitude must be non-negative, got %d", following.Magnitude)
	}

	windows := make([]types.RowRange, g.Size())
	for i := nullRange.Start; i < nullRange.End; i++ {
		windows[i-g.Start] = nullRange
	}

	vals := col.Values
	vs, ve := valueRange.Start, valueRange.End
	k := ve - vs
	for i := vs; i < ve; i++ {
		v := vals[i]

		start := g.Start
		if !preceding.Unbounded {
			lower := lowerTarget(v, preceding.Magnitude, order)
			if order == types.Ascending {
				start = vs + sort.Search(k, func(j int) bool { return vals[vs+j] >= lower })
			} else {
				start = vs + sort.Search(k, func(j int) bool { return vals[vs+j] <= lower })
			}
		}

		end := g.End
		if !following.Unbounded {
			upper := upperTarget(v, following.Magnitude, order)
			if order == types.Ascending {
				end = vs + sort.Search(k, func(j int) bool { return vals[vs+j] > upper })
			} else {
				end = vs + sort.Search(k, func(j int) bool { return vals[vs+j] < upper })
			}
		}

		windows[i-g.Start] = types.RowRange{Start: start, End: end}
	}
	return windows, nil
}

// lowerTarget is the inclusive order-key value at which the window starts:
// v-preceding under ascending order, v+preceding under descending order.
// Saturating arithmetic keeps extreme keys from wrapping around; the
// comparisons stay inclusive so saturation cannot drop rows.
func lowerTarget(v, preceding int64, order types.Order) int64 {
	if order == types.Ascending {
		return satSub(v, preceding)
	}
	return satAdd(v, preceding)
}

// upperTarget is the inclusive order-key value at which the window ends:
// v+following under ascending order, v-following under descending order.
func upperTarget(v, following int64, order types.Order) int64 {
	if order == types.Ascending {
		return satAdd(v, following)
	}
	return satSub(v, following)
}

// satAdd adds a non-negative delta, saturating at math.MaxInt64
func satAdd(v, delta int64) int64 {
	if v > math.MaxInt64-delta {
		return math.MaxInt64
	}
	return v + delta
}

// satSub subtracts a non-negative delta, saturating at math.MinInt64
func satSub(v, delta int64) int64 {
	if v < math.MinInt64+delta {
		return math.MinInt64
	}
	return v - delta
}
