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
Package aggregator reduces aggregation-column values over resolved row
windows.

Six aggregation kinds are supported: count, sum, min, max, avg and
collect_list, each implemented as an AggregatorFunction reducer with a
fresh instance per window. A null policy decides whether null values are
counted and collected or skipped, and the min_periods gate nulls out any
non-count result computed from a window with too few non-null
observations.

Sum widens integer inputs into a 64-bit accumulator and promotes to
floating point when float values appear; min and max return the extremum
in its original type; avg is always floating point; collect_list
materializes the window slice in row order, preserving nulls under the
include policy.
*/
package aggregator
