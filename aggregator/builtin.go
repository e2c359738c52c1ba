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
	"github.com/spf13/cast"

	"github.com/rulego/rangewindow/types"
)

// AggregateType identifies a window aggregation kind
type AggregateType string

const (
	Count       AggregateType = "count"
	Sum         AggregateType = "sum"
	Min         AggregateType = "min"
	Max         AggregateType = "max"
	Avg         AggregateType = "avg"
	CollectList AggregateType = "collect_list"
)

// NullPolicy controls whether null aggregation values are counted and
// collected, or skipped
type NullPolicy int

const (
	// ExcludeNulls skips null aggregation values during reduction
	ExcludeNulls NullPolicy = iota
	// IncludeNulls counts null aggregation values and preserves them in
	// collected lists
	IncludeNulls
)

// String returns string representation of the null policy
func (p NullPolicy) String() string {
	if p == IncludeNulls {
		return "include"
	}
	return "exclude"
}

// AggregatorFunction reduces the values of one row window to one result.
// A fresh instance is obtained via New for every window.
type AggregatorFunction interface {
	New() AggregatorFunction
	Add(value interface{})
	Result() interface{}
}

// CreateBuiltinAggregator creates the reducer for an aggregation kind
func CreateBuiltinAggregator(aggType AggregateType) (AggregatorFunction, error) {
	switch aggType {
	case Count:
		return &CountAggregator{}, nil
	case Sum:
		return &SumAggregator{}, nil
	case Min:
		return &MinAggregator{}, nil
	case Max:
		return &MaxAggregator{}, nil
	case Avg:
		return &AvgAggregator{}, nil
	case CollectList:
		return &CollectAggregator{values: make([]interface{}, 0)}, nil
	default:
		return nil, types.NewInvalidArgumentError("unsupported aggregator type: %s", aggType)
	}
}

// CountAggregator counts every added value
type CountAggregator struct {
	count int
}

func (c *CountAggregator) New() AggregatorFunction {
	return &CountAggregator{}
}

func (c *CountAggregator) Add(_ interface{}) {
	c.count++
}

func (c *CountAggregator) Result() interface{} {
	return c.count
}

// SumAggregator accumulates integers in a 64-bit accumulator and switches
// to floating point once any float value is observed, so the result type
// is always wide enough for the inputs.
type SumAggregator struct {
	intSum   int64
	floatSum float64
	sawFloat bool
}

func (s *SumAggregator) New() AggregatorFunction {
	return &SumAggregator{}
}

func (s *SumAggregator) Add(v interface{}) {
	switch x := v.(type) {
	case float32:
		s.promote()
		s.floatSum += float64(x)
	case float64:
		s.promote()
		s.floatSum += x
	default:
		if s.sawFloat {
			s.floatSum += cast.ToFloat64(v)
		} else {
			s.intSum += cast.ToInt64(v)
		}
	}
}

func (s *SumAggregator) promote() {
	if !s.sawFloat {
		s.sawFloat = true
		s.floatSum = float64(s.intSum)
	}
}

func (s *SumAggregator) Result() interface{} {
	if s.sawFloat {
		return s.floatSum
	}
	return s.intSum
}

// MinAggregator keeps the smallest added value in its original type.
// Equal keys keep the first occurrence; any occurrence is acceptable.
type MinAggregator struct {
	value interface{}
	key   float64
}

func (m *MinAggregator) New() AggregatorFunction {
	return &MinAggregator{}
}

func (m *MinAggregator) Add(v interface{}) {
	k := cast.ToFloat64(v)
	if m.value == nil || k < m.key {
		m.value = v
		m.key = k
	}
}

func (m *MinAggregator) Result() interface{} {
	return m.value
}

// MaxAggregator keeps the largest added value in its original type
type MaxAggregator struct {
	value interface{}
	key   float64
}

func (m *MaxAggregator) New() AggregatorFunction {
	return &MaxAggregator{}
}

func (m *MaxAggregator) Add(v interface{}) {
	k := cast.ToFloat64(v)
	if m.value == nil || k > m.key {
		m.value = v
		m.key = k
	}
}

func (m *MaxAggregator) Result() interface{} {
	return m.value
}

// AvgAggregator computes the floating-point mean of the added values
type AvgAggregator struct {
	sum   float64
	count int
}

func (a *AvgAggregator) New() AggregatorFunction {
	return &AvgAggregator{}
}

func (a *AvgAggregator) Add(v interface{}) {
	a.sum += cast.ToFloat64(v)
	a.count++
}

func (a *AvgAggregator) Result() interface{} {
	if a.count == 0 {
		return nil
	}
	return a.sum / float64(a.count)
}

// CollectAggregator materializes the added values in arrival order.
// An empty selection yields an empty list, never a nil one.
type CollectAggregator struct {
	values []interface{}
}

func (c *CollectAggregator) New() AggregatorFunction {
	return &CollectAggregator{values: make([]interface{}, 0)}
}

func (c *CollectAggregator) Add(v interface{}) {
	c.values = append(c.values, v)
}

func (c *CollectAggregator) Result() interface{} {
	return c.values
}
