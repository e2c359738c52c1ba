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

package rangewindow

import (
	"runtime"
	"sync"

	"github.com/rulego/rangewindow/aggregator"
	"github.com/rulego/rangewindow/logger"
	"github.com/rulego/rangewindow/partition"
	"github.com/rulego/rangewindow/types"
	"github.com/rulego/rangewindow/window"
)

// Request describes one rolling window aggregation over grouped, ordered
// rows. The three columns must have equal length; rows must already be
// sorted by group key and, within each group, by order key in the
// requested direction with nulls contiguous at the configured edge.
type Request struct {
	// GroupKeys is the group-key column. Keys must be comparable values.
	GroupKeys []interface{}
	// OrderKeys is the order-key column defining within-group ordering
	// and window distance.
	OrderKeys *types.OrderColumn
	// Values is the aggregation column; nil entries are null.
	Values []interface{}
	// Order is the sort direction of OrderKeys within each group.
	Order types.Order
	// NullOrder is the edge null order keys occupy. The zero value applies
	// the convention: nulls first when ascending, last when descending.
	NullOrder types.NullOrder
	// Preceding and Following are the maximum value-distances behind and
	// ahead of each row's order key.
	Preceding types.Bound
	Following types.Bound
	// MinPeriods is the minimum number of non-null observations a window
	// needs for a non-count aggregate to be valid. Zero defaults to 1.
	MinPeriods int
	// Aggregate selects the aggregation kind.
	Aggregate aggregator.AggregateType
	// NullPolicy decides whether null values are counted and collected.
	NullPolicy aggregator.NullPolicy
}

// Engine computes range-based rolling window aggregates. It is a pure
// function of its inputs, holds no mutable state across invocations, and
// is safe for concurrent use.
type Engine struct {
	workers int
}

// New creates a new engine instance with the given options.
//
// Example:
//
//	engine := rangewindow.New(rangewindow.WithWorkers(4))
//	out, err := engine.Execute(req)
func New(options ...Option) *Engine {
	e := &Engine{
		workers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Execute resolves every row's range window and reduces the aggregation
// column over it, returning one output column aligned 1:1 with the input
// rows. A nil output entry is a null result row.
//
// All failures are detected before aggregation starts and abort the whole
// invocation; there is no partial-result mode.
func (e *Engine) Execute(req *Request) ([]interface{}, error) {
	if req == nil || req.OrderKeys == nil {
		return nil, types.NewInvalidArgumentError("request and order-key column must not be nil")
	}
	n := len(req.GroupKeys)
	if req.OrderKeys.Len() != n || len(req.Values) != n {
		return nil, types.NewInvalidArgumentError("column lengths differ: %d group keys, %d order keys, %d values",
			n, req.OrderKeys.Len(), len(req.Values))
	}
	minPeriods := req.MinPeriods
	if minPeriods == 0 {
		minPeriods = 1
	}
	if minPeriods < 1 {
		return nil, types.NewInvalidArgumentError("min_periods must be at least 1, got %d", req.MinPeriods)
	}
	if err := aggregator.ValidateValueType(req.Aggregate, req.Values); err != nil {
		return nil, err
	}

	// Scaled once per bound, shared read-only by all groups.
	preceding, err := req.Preceding.Scale(req.OrderKeys.Unit)
	if err != nil {
		return nil, err
	}
	following, err := req.Following.Scale(req.OrderKeys.Unit)
	if err != nil {
		return nil, err
	}

	groups := partition.Groups(req.GroupKeys)
	nullOrder := req.NullOrder.Resolve(req.Order)
	logger.Debug("rangewindow: partitioned %d rows into %d groups (%s, %s)", n, len(groups), req.Order, nullOrder)

	// Null subranges are resolved up front so that malformed input fails
	// before any output is produced.
	nullRanges := make([]types.RowRange, len(groups))
	valueRanges := make([]types.RowRange, len(groups))
	for gi, g := range groups {
		nullRanges[gi], valueRanges[gi], err = partition.SplitNulls(g, req.OrderKeys, nullOrder)
		if err != nil {
			return nil, err
		}
	}

	aggReq := aggregator.Request{Type: req.Aggregate, Policy: req.NullPolicy, MinPeriods: minPeriods}
	out := make([]interface{}, n)
	errs := make([]error, len(groups))

	// Each group's windows and aggregates depend only on that group's
	// rows, so groups run on independent workers writing disjoint output
	// slices without locks.
	workers := e.workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(groups) {
		workers = len(groups)
	}
	tasks := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for gi := range tasks {
				errs[gi] = e.executeGroup(out, groups[gi], nullRanges[gi], valueRanges[gi], req, preceding, following, aggReq)
			}
		}()
	}
	for gi := range groups {
		tasks <- gi
	}
	close(tasks)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	logger.Debug("rangewindow: aggregated %d rows with %s(%s)", n, req.Aggregate, req.NullPolicy)
	return out, nil
}

// executeGroup resolves and aggregates the windows of a single group,
// writing results into the group's slice of the shared output buffer.
func (e *Engine) executeGroup(out []interface{}, g, nullRange, valueRange types.RowRange,
	req *Request, preceding, following types.ScaledBound, aggReq aggregator.Request) error {
	windows, err := window.ResolveBounds(g, nullRange, valueRange, req.OrderKeys, req.Order, preceding, following)
	if err != nil {
		return err
	}
	return aggregator.ApplyInto(out[g.Start:g.End], windows, req.Values, aggReq)
}
