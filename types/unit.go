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

package types

import "math"

// Unit identifies the measurement unit of order-key values and window
// bound magnitudes. UnitNone marks plain numeric columns that carry no
// time semantics; it never mixes with the time units.
type Unit int

const (
	UnitNone Unit = iota
	UnitNanosecond
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
)

// String returns string representation of the unit
func (u Unit) String() string {
	switch u {
	case UnitNone:
		return "none"
	case UnitNanosecond:
		return "nanosecond"
	case UnitMicrosecond:
		return "microsecond"
	case UnitMillisecond:
		return "millisecond"
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	default:
		return "unknown"
	}
}

// Nanos returns how many nanoseconds one tick of the unit spans.
// UnitNone has no time span and returns 0.
func (u Unit) Nanos() int64 {
	switch u {
	case UnitNanosecond:
		return 1
	case UnitMicrosecond:
		return 1_000
	case UnitMillisecond:
		return 1_000_000
	case UnitSecond:
		return 1_000_000_000
	case UnitMinute:
		return 60_000_000_000
	case UnitHour:
		return 3_600_000_000_000
	case UnitDay:
		return 86_400_000_000_000
	default:
		return 0
	}
}

// Bound specifies one side of a range window: either a non-negative
// magnitude in some unit, or unbounded.
type Bound struct {
	magnitude int64
	unit      Unit
	unbounded bool
}

// NewBound creates a bounded window bound with the given magnitude and unit
func NewBound(magnitude int64, unit Unit) Bound {
	return Bound{magnitude: magnitude, unit: unit}
}

// Unbounded creates a window bound without a distance limit
func Unbounded() Bound {
	return Bound{unbounded: true}
}

// IsUnbounded reports whether the bound has no distance limit
func (b Bound) IsUnbounded() bool {
	return b.unbounded
}

// Magnitude returns the raw, unscaled bound magnitude
func (b Bound) Magnitude() int64 {
	return b.magnitude
}

// Unit returns the unit the magnitude is expressed in
func (b Bound) Unit() Unit {
	return b.unit
}

// ScaledBound is a bound magnitude re-expressed in the order-key column's
// native unit, ready for direct comparison against order-key values.
type ScaledBound struct {
	Unbounded bool
	Magnitude int64
}

// Scale re-expresses the bound magnitude in the order column's native unit.
// Only widening conversions are supported: the bound unit must be coarser
// than or equal to the column unit. Unbounded bounds bypass scaling.
func (b Bound) Scale(col Unit) (ScaledBound, error) {
	if b.unbounded {
		return ScaledBound{Unbounded: true}, nil
	}
	if b.magnitude < 0 {
		return ScaledBound{}, NewInvalidArgumentError("window bound magnitude must be non-negative, got %d", b.magnitude)
	}
	if (b.unit == UnitNone) != (col == UnitNone) {
		return ScaledBound{}, NewInvalidArgumentError("cannot scale %s bound against %s order column", b.unit, col)
	}
	if b.unit == UnitNone {
		return ScaledBound{Magnitude: b.magnitude}, nil
	}
	bn, cn := b.unit.Nanos(), col.Nanos()
	if bn < cn || bn%cn != 0 {
		return ScaledBound{}, NewInvalidArgumentError("unsupported narrowing conversion from %s bound to %s order column", b.unit, col)
	}
	factor := bn / cn
	if factor > 1 && b.magnitude > math.MaxInt64/factor {
		return ScaledBound{}, NewOverflowError("scaling %d %s bound to %s overflows int64", b.magnitude, b.unit, col)
	}
	return ScaledBound{Magnitude: b.magnitude * factor}, nil
}
