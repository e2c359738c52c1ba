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

// Groups locates contiguous group boundaries in a group-key column whose
// rows are already sorted by group key. A new group begins whenever the key
// changes from the previous row. The returned descriptors are in
// first-appearance order, non-overlapping, and cover [0, len(keys)).
func Groups(keys []interface{}) []types.RowRange {
	if len(keys) == 0 {
		return nil
	}
	groups := make([]types.RowRange, 0, 8)
	start := 0
	for i := 1; i < len(keys); i++ {
		if keys[i] != keys[start] {
			groups = append(groups, types.RowRange{Start: start, End: i})
			start = i
		}
	}
	return append(groups, types.RowRange{Start: start, End: len(keys)})
}
