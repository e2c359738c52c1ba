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
Package types defines the core data model shared by the RangeWindow engine.

It contains the sort order and null-placement flags, the half-open RowRange
used for groups, null/value subranges and per-row windows, the nullable
order-key column, window bound specifications with unit-safe scaling, and
the typed error taxonomy (invalid argument, overflow, unsupported type).

All entities are transient working data scoped to a single engine
invocation; nothing in this package owns external state.
*/
package types
