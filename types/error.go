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

import (
	"errors"
	"fmt"
)

// ErrorType classifies engine failures
type ErrorType int

const (
	// ErrorTypeInvalidArgument marks malformed inputs: mismatched column
	// lengths, negative bound magnitudes, nulls not contiguous at the
	// expected group edge, or narrowing unit conversions
	ErrorTypeInvalidArgument ErrorType = iota
	// ErrorTypeOverflow marks unit-scaling multiplications that exceed the
	// representable integer range
	ErrorTypeOverflow
	// ErrorTypeUnsupportedType marks aggregation kinds incompatible with
	// the aggregation column's value type
	ErrorTypeUnsupportedType
)

// getErrorTypeName returns the tag printed in error messages
func (t ErrorType) getErrorTypeName() string {
	switch t {
	case ErrorTypeInvalidArgument:
		return "INVALID_ARGUMENT"
	case ErrorTypeOverflow:
		return "OVERFLOW"
	case ErrorTypeUnsupportedType:
		return "UNSUPPORTED_TYPE"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error is the terminal failure surfaced for one engine invocation.
// All failures are detected before or at the start of processing and are
// never retried internally.
type Error struct {
	Type    ErrorType
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type.getErrorTypeName(), e.Message)
}

// NewInvalidArgumentError creates an invalid-argument error
func NewInvalidArgumentError(format string, args ...interface{}) *Error {
	return &Error{Type: ErrorTypeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewOverflowError creates an overflow error
func NewOverflowError(format string, args ...interface{}) *Error {
	return &Error{Type: ErrorTypeOverflow, Message: fmt.Sprintf(format, args...)}
}

// NewUnsupportedTypeError creates an unsupported-type error
func NewUnsupportedTypeError(format string, args ...interface{}) *Error {
	return &Error{Type: ErrorTypeUnsupportedType, Message: fmt.Sprintf(format, args...)}
}

// ErrorTypeOf extracts the ErrorType from err. The second return value is
// false when err does not wrap an engine Error.
func ErrorTypeOf(err error) (ErrorType, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Type, true
	}
	return 0, false
}

// IsInvalidArgument reports whether err is an invalid-argument failure
func IsInvalidArgument(err error) bool {
	t, ok := ErrorTypeOf(err)
	return ok && t == ErrorTypeInvalidArgument
}

// IsOverflow reports whether err is an overflow failure
func IsOverflow(err error) bool {
	t, ok := ErrorTypeOf(err)
	return ok && t == ErrorTypeOverflow
}

// IsUnsupportedType reports whether err is an unsupported-type failure
func IsUnsupportedType(err error) bool {
	t, ok := ErrorTypeOf(err)
	return ok && t == ErrorTypeUnsupportedType
}
