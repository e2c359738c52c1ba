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

package dataset

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cast"

	"github.com/rulego/rangewindow/types"
)

// Schema maps record fields onto the engine's input columns
type Schema struct {
	// GroupField names the record field carrying the group key
	GroupField string
	// OrderField names the record field carrying the order key. A missing
	// or nil field value becomes a null order key.
	OrderField string
	// OrderUnit is the native unit of the order-key values
	OrderUnit types.Unit
	// ValueField names the record field carrying the aggregation value.
	// Ignored when ValueExpr is set.
	ValueField string
	// ValueExpr optionally derives the aggregation value from the whole
	// record via an expression, e.g. "price * quantity".
	ValueExpr string
	// Filter optionally drops records before column construction via a
	// boolean expression, e.g. "status == 'ok'".
	Filter string
}

// Columns carries the engine's three input columns, aligned row for row
type Columns struct {
	GroupKeys []interface{}
	OrderKeys *types.OrderColumn
	Values    []interface{}
}

// FromRecords builds the engine's input columns from row-oriented records.
// Record order is preserved; the caller remains responsible for sorting by
// group key and order key before execution.
func FromRecords(records []map[string]interface{}, schema Schema) (*Columns, error) {
	if schema.GroupField == "" || schema.OrderField == "" {
		return nil, types.NewInvalidArgumentError("schema requires both group field and order field")
	}

	var filterProg, valueProg *vm.Program
	var err error
	if schema.Filter != "" {
		filterProg, err = expr.Compile(schema.Filter,
			expr.AllowUndefinedVariables(), expr.AsBool())
		if err != nil {
			return nil, types.NewInvalidArgumentError("invalid filter expression %q: %v", schema.Filter, err)
		}
	}
	if schema.ValueExpr != "" {
		valueProg, err = expr.Compile(schema.ValueExpr, expr.AllowUndefinedVariables())
		if err != nil {
			return nil, types.NewInvalidArgumentError("invalid value expression %q: %v", schema.ValueExpr, err)
		}
	} else if schema.ValueField == "" {
		return nil, types.NewInvalidArgumentError("schema requires a value field or a value expression")
	}

	cols := &Columns{
		GroupKeys: make([]interface{}, 0, len(records)),
		OrderKeys: &types.OrderColumn{
			Values: make([]int64, 0, len(records)),
			Valid:  make([]bool, 0, len(records)),
			Unit:   schema.OrderUnit,
		},
		Values: make([]interface{}, 0, len(records)),
	}

	for i, record := range records {
		if filterProg != nil {
			keep, err := expr.Run(filterProg, record)
			if err != nil {
				return nil, types.NewInvalidArgumentError("filter failed on record %d: %v", i, err)
			}
			if !keep.(bool) {
				continue
			}
		}

		orderValue := int64(0)
		orderValid := false
		if raw, ok := record[schema.OrderField]; ok && raw != nil {
			orderValue, err = cast.ToInt64E(raw)
			if err != nil {
				return nil, types.NewInvalidArgumentError("order field %q on record %d is not numeric: %v", schema.OrderField, i, err)
			}
			orderValid = true
		}

		var value interface{}
		if valueProg != nil {
			value, err = expr.Run(valueProg, record)
			if err != nil {
				return nil, types.NewInvalidArgumentError("value expression failed on record %d: %v", i, err)
			}
		} else {
			value = record[schema.ValueField]
		}

		cols.GroupKeys = append(cols.GroupKeys, record[schema.GroupField])
		cols.OrderKeys.Values = append(cols.OrderKeys.Values, orderValue)
		cols.OrderKeys.Valid = append(cols.OrderKeys.Valid, orderValid)
		cols.Values = append(cols.Values, value)
	}
	return cols, nil
}
