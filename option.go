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
	"io"

	"github.com/rulego/rangewindow/logger"
)

// Option configures an Engine instance
type Option func(*Engine)

// WithWorkers sets how many groups are aggregated concurrently.
// The default is runtime.NumCPU(); values below 1 run sequentially.
//
// Example:
//
//	engine := rangewindow.New(rangewindow.WithWorkers(4))
func WithWorkers(workers int) Option {
	return func(e *Engine) {
		e.workers = workers
	}
}

// WithLogger sets a custom logger implementation.
//
// Example:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	engine := rangewindow.New(rangewindow.WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		logger.SetDefault(log)
	}
}

// WithLogLevel sets the log level on the default logger.
//
// Example:
//
//	engine := rangewindow.New(rangewindow.WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(e *Engine) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput directs logs to the given writer at the given level.
//
// Example:
//
//	engine := rangewindow.New(rangewindow.WithLogOutput(os.Stderr, logger.WARN))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Engine) {
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLog disables all log output
func WithDiscardLog() Option {
	return func(e *Engine) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}
