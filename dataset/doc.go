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
Package dataset converts row-oriented records into the columnar inputs the
engine consumes.

A Schema names the group, order and value fields of each record; the value
may instead be derived from the whole record with a compiled expression,
and records can be dropped up front with a boolean filter expression.
Missing or nil order fields become null order keys.
*/
package dataset
