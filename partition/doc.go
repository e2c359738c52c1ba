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
Package partition locates structure in pre-sorted row sequences.

Groups finds contiguous group boundaries in a group-key column with a
single O(n) scan. SplitNulls then splits each group into its contiguous
null and non-null order-key subranges according to the configured null
placement, rejecting interleaved nulls as invalid input.
*/
package partition
