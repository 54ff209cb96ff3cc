// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package scheduler

import (
	"time"

	"github.com/tochemey/elasticjob/log"
)

// Option configures the Scheduler
type Option interface {
	// Apply sets the Option value of a config.
	Apply(*Scheduler)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Scheduler)

// Apply applies the option to the scheduler
func (f OptionFunc) Apply(s *Scheduler) {
	f(s)
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithStopTimeout bounds how long Shutdown waits for the running tick
func WithStopTimeout(timeout time.Duration) Option {
	return OptionFunc(func(s *Scheduler) {
		if timeout > 0 {
			s.stopTimeout = timeout
		}
	})
}

// WithLocation sets the time zone the cron expression is evaluated in.
// Defaults to the local time zone.
func WithLocation(location *time.Location) Option {
	return OptionFunc(func(s *Scheduler) {
		if location != nil {
			s.location = location
		}
	})
}

// WithMaxConcurrency bounds the number of shards a tick executes concurrently.
// Zero or a negative value means no bound.
func WithMaxConcurrency(limit int) Option {
	return OptionFunc(func(s *Scheduler) {
		s.maxConcurrency = limit
	})
}
