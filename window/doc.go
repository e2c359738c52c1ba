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
Package window resolves range-based rolling windows.

For every row of a partitioned group it computes the [start, end) offsets
of the row's window: the peer rows whose order key lies within the scaled
preceding/following distance of the row's own key. Bounds are inclusive on
both sides, so rows with equal order keys (ties) always enter and leave a
window together, and every row is a member of its own window.

Resolution costs O(log k) per row via binary search over the group's
monotonic value run; unbounded sides are taken directly from the group
edges without a search.
*/
package window
