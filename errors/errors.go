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

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when a job configuration fails validation.
	ErrInvalidConfig = errors.New("invalid job configuration")

	// ErrJobConflict is returned when the persisted configuration belongs to
	// another job handler and the in-process configuration does not request an overwrite.
	ErrJobConflict = errors.New("job configuration conflict")

	// ErrJobNotFound is returned when the job configuration has not been persisted yet.
	ErrJobNotFound = errors.New("job configuration not found")

	// ErrInvalidCron is returned when the cron expression cannot be parsed.
	ErrInvalidCron = errors.New("invalid cron expression")

	// ErrInvalidShardingItem is returned when a sharding item falls outside 0..total-1.
	ErrInvalidShardingItem = errors.New("invalid sharding item")

	// ErrInvalidShardingParameters is returned when the sharding item parameters are malformed.
	ErrInvalidShardingParameters = errors.New("invalid sharding item parameters")

	// ErrUnknownShardingStrategy is returned when the configured sharding strategy is not registered.
	ErrUnknownShardingStrategy = errors.New("unknown sharding strategy")

	// ErrSchedulerNotStarted is returned when attempting to use the scheduler before it has started.
	ErrSchedulerNotStarted = errors.New("scheduler has not started")

	// ErrSchedulerAlreadyStarted is returned when Start is called twice.
	ErrSchedulerAlreadyStarted = errors.New("scheduler has already started")

	// ErrHandlerRequired is returned when a job is scheduled without a handler.
	ErrHandlerRequired = errors.New("job handler is required")

	// ErrGuaranteeTimeout is returned when the distribute-once round did not
	// complete on the other servers within the listener timeout.
	ErrGuaranteeTimeout = errors.New("distributed guarantee timed out")

	// ErrLeaderNotFound is returned when no leader could be elected before the deadline.
	ErrLeaderNotFound = errors.New("leader is not found")

	// ErrShardingTimeout is returned when a follower gave up waiting for the leader to finish resharding.
	ErrShardingTimeout = errors.New("sharding did not complete in time")

	// ErrServerUnavailable is returned when an operation requires the local server to be online.
	ErrServerUnavailable = errors.New("server is not available")
)

// NewErrInvalidConfig wraps a validation failure for the given job
func NewErrInvalidConfig(jobName string, err error) error {
	return fmt.Errorf("job=(%s) %w: %w", jobName, ErrInvalidConfig, err)
}

// NewErrJobConflict reports a handler mismatch between the persisted and the local configuration
func NewErrJobConflict(jobName, persisted, local string) error {
	return fmt.Errorf("job=(%s) is bound to handler=(%s), cannot register handler=(%s): %w", jobName, persisted, local, ErrJobConflict)
}

// NewErrJobNotFound reports a missing persisted configuration
func NewErrJobNotFound(jobName string) error {
	return fmt.Errorf("job=(%s) %w", jobName, ErrJobNotFound)
}

// NewErrInvalidCron wraps the cron parsing failure
func NewErrInvalidCron(expression string, err error) error {
	return fmt.Errorf("cron=(%s) %w: %w", expression, ErrInvalidCron, err)
}

// NewErrInvalidShardingItem reports an out of range sharding item
func NewErrInvalidShardingItem(item, total int) error {
	return fmt.Errorf("item=(%d) total=(%d) %w", item, total, ErrInvalidShardingItem)
}

// NewErrUnknownShardingStrategy reports an unregistered strategy name
func NewErrUnknownShardingStrategy(name string) error {
	return fmt.Errorf("strategy=(%s) %w", name, ErrUnknownShardingStrategy)
}

// NewErrGuaranteeTimeout reports which distribute-once phase timed out
func NewErrGuaranteeTimeout(jobName, phase string) error {
	return fmt.Errorf("job=(%s) phase=(%s) %w", jobName, phase, ErrGuaranteeTimeout)
}

// HandlerError wraps a failure raised by the user job logic for a sharding item.
// It never aborts the coordination bookkeeping of the tick.
type HandlerError struct {
	item int
	err  error
}

var _ error = (*HandlerError)(nil)

// NewHandlerError creates an instance of HandlerError
func NewHandlerError(item int, err error) *HandlerError {
	return &HandlerError{item: item, err: err}
}

// Item returns the sharding item the handler failed on
func (e *HandlerError) Item() int {
	return e.item
}

// Error implements the standard error interface
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler failed on item=(%d): %v", e.item, e.err)
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.err
}

// PanicError wraps a panic recovered while running the user job logic
type PanicError struct {
	err error
}

var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

// Unwrap returns the underlying error
func (e *PanicError) Unwrap() error {
	return e.err
}
