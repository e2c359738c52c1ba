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

package aggregator

import (
	"github.com/rulego/rangewindow/types"
)

// Request describes one window aggregation: the kind, the null policy, and
// the minimum number of non-null observations a window needs before a
// non-count aggregate is considered valid.
type Request struct {
	Type       AggregateType
	Policy     NullPolicy
	MinPeriods int
}

// ValidateValueType checks that the aggregation column's value type is
// compatible with the requested aggregation kind. Incompatibilities are
// reported before any row is processed. Count and collect_list accept any
// value type; the numeric kinds require numerically coercible values.
func ValidateValueType(aggType AggregateType, values []interface{}) error {
	switch aggType {
	case Sum, Min, Max, Avg:
	default:
		return nil
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		if !isNumeric(v) {
			return types.NewUnsupportedTypeError("aggregate %s is not supported for value of type %T at row %d", aggType, v, i)
		}
	}
	return nil
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// ApplyInto reduces the aggregation column over each row's window and
// writes the results into dst, which must have len(windows) entries.
// Window offsets index the full values column, so dst is typically a
// disjoint group-sized slice of a preallocated output buffer.
//
// A nil dst entry marks a null output row: the min_periods gate fires for
// every kind except count under the include-nulls policy.
func ApplyInto(dst []interface{}, windows []types.RowRange, values []interface{}, req Request) error {
	proto, err := CreateBuiltinAggregator(req.Type)
	if err != nil {
		return err
	}
	// Nulls are fed to the reducer only where they are observable in the
	// result: raw counts and collected lists under the include policy.
	feedNulls := req.Policy == IncludeNulls && req.Type == CollectList

	for j, win := range windows {
		nonNull := 0
		for i := win.Start; i < win.End; i++ {
			if values[i] != nil {
				nonNull++
			}
		}

		if req.Type == Count && req.Policy == IncludeNulls {
			dst[j] = win.Size()
			continue
		}
		if nonNull < req.MinPeriods {
			dst[j] = nil
			continue
		}

		r := proto.New()
		for i := win.Start; i < win.End; i++ {
			v := values[i]
			if v == nil && !feedNulls {
				continue
			}
			r.Add(v)
		}
		dst[j] = r.Result()
	}
	return nil
}
