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

/*
Package rangewindow computes range-based rolling window aggregates over
grouped, ordered tabular data.

For every row it determines a variable-length window of peer rows whose
order key lies within a value-distance (not a row count) of the current
row's order key, then reduces the aggregation column over that window.
This supports analytics such as "sum of values within 2 days before and
1 day after this event, per entity".

# Core Features

• Range Windows - Per-row windows bounded by order-key distance, not row count
• Grouped Execution - Independent windows per contiguous group, computed in parallel
• Null Semantics - Contiguous null order-key runs form self-contained windows
• Unit Safety - Window bounds scale from coarser time units to the column's native unit, overflow checked
• Six Aggregates - count, sum, min, max, avg and collect_list with include/exclude null policies
• Observation Gate - min_periods nulls out aggregates over windows with too few non-null values

# Usage

	engine := rangewindow.New()
	out, err := engine.Execute(&rangewindow.Request{
	    GroupKeys: []interface{}{"a", "a", "a", "b", "b"},
	    OrderKeys: &types.OrderColumn{
	        Values: []int64{1, 5, 6, 2, 3},
	        Unit:   types.UnitDay,
	    },
	    Values:    []interface{}{10, 20, 30, 40, 50},
	    Order:     types.Ascending,
	    Preceding: types.NewBound(2, types.UnitDay),
	    Following: types.NewBound(1, types.UnitDay),
	    Aggregate: aggregator.Sum,
	})

The engine assumes rows are already sorted by group key and, within each
group, by order key. Sorting, columnar storage and the surrounding query
layer are owned by the caller.
*/
package rangewindow
