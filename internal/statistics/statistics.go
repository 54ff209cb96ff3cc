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

// Package statistics counts the processed items of a job. Counts are
// exported through OpenTelemetry as they happen and persisted per server at
// a fixed interval.
package statistics

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/internal/metric"
	"github.com/tochemey/elasticjob/internal/ticker"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

const (
	// DefaultInterval is the default persistence interval of the counts
	DefaultInterval = time.Minute

	maxAttempts = 10
)

// Service accumulates the processed counts of the local server
type Service struct {
	store     store.Store
	path      jobpath.Path
	serverID  string
	interval  time.Duration
	jobMetric *metric.JobMetric
	attrs     otelmetric.MeasurementOption
	logger    log.Logger

	success *atomic.Int64
	failure *atomic.Int64

	mu     sync.Mutex
	ticker *ticker.Ticker
	stop   chan struct{}
	done   chan struct{}
}

// New creates an instance of Service. A nil jobMetric disables the export
// of the counts.
func New(st store.Store, jobName, serverID string, interval time.Duration, jobMetric *metric.JobMetric, logger log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		store:     st,
		path:      jobpath.New(jobName),
		serverID:  serverID,
		interval:  interval,
		jobMetric: jobMetric,
		attrs: otelmetric.WithAttributes(
			attribute.String("job", jobName),
			attribute.String("server", serverID)),
		logger:  logger,
		success: atomic.NewInt64(0),
		failure: atomic.NewInt64(0),
	}
}

// IncrementProcessSuccessCount counts items processed successfully
func (s *Service) IncrementProcessSuccessCount(ctx context.Context, count int) {
	if count <= 0 {
		return
	}
	s.success.Add(int64(count))
	if s.jobMetric != nil {
		s.jobMetric.SuccessCount().Add(ctx, int64(count), s.attrs)
	}
}

// IncrementProcessFailureCount counts items whose processing failed
func (s *Service) IncrementProcessFailureCount(ctx context.Context, count int) {
	if count <= 0 {
		return
	}
	s.failure.Add(int64(count))
	if s.jobMetric != nil {
		s.jobMetric.FailureCount().Add(ctx, int64(count), s.attrs)
	}
}

// RecordExecutionDuration records how long an execution took
func (s *Service) RecordExecutionDuration(ctx context.Context, duration time.Duration) {
	if s.jobMetric != nil {
		s.jobMetric.ExecutionDuration().Record(ctx, duration.Milliseconds(), s.attrs)
	}
}

// IncrementMisfireCount counts a tick fired while an execution was running
func (s *Service) IncrementMisfireCount(ctx context.Context) {
	if s.jobMetric != nil {
		s.jobMetric.MisfireCount().Add(ctx, 1, s.attrs)
	}
}

// StartProcessCountJob starts persisting the counts every interval
func (s *Service) StartProcessCountJob(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		return nil
	}

	s.ticker = ticker.New(s.interval)
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.ticker.Start()

	go s.persistLoop(context.WithoutCancel(ctx), s.ticker, s.stop, s.done)
	return nil
}

// StopProcessCountJob stops the periodic persistence and flushes what is pending
func (s *Service) StopProcessCountJob(ctx context.Context) error {
	s.mu.Lock()
	tk, stop, done := s.ticker, s.stop, s.done
	s.ticker = nil
	s.mu.Unlock()

	if tk != nil {
		tk.Stop()
		close(stop)
		<-done
	}
	return s.Flush(ctx)
}

// Flush persists the pending counts
func (s *Service) Flush(ctx context.Context) error {
	return multierr.Combine(
		s.flush(ctx, s.success, s.path.StatisticsSuccess(s.serverID)),
		s.flush(ctx, s.failure, s.path.StatisticsFailure(s.serverID)),
	)
}

// ProcessedCounts returns the persisted counts of a server
func (s *Service) ProcessedCounts(ctx context.Context, serverID string) (success, failure int64, err error) {
	if success, _, err = s.read(ctx, s.path.StatisticsSuccess(serverID)); err != nil {
		return 0, 0, err
	}
	if failure, _, err = s.read(ctx, s.path.StatisticsFailure(serverID)); err != nil {
		return 0, 0, err
	}
	return success, failure, nil
}

func (s *Service) persistLoop(ctx context.Context, tk *ticker.Ticker, stop, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-tk.Ticks:
			if err := s.Flush(ctx); err != nil {
				s.logger.Warnf("job=(%s) failed to persist statistics: %v", s.path.JobName(), err)
			}
		case <-stop:
			return
		}
	}
}

func (s *Service) flush(ctx context.Context, counter *atomic.Int64, path string) error {
	delta := counter.Swap(0)
	if delta == 0 {
		return nil
	}
	if err := s.add(ctx, path, delta); err != nil {
		// keep the delta for the next flush
		counter.Add(delta)
		return err
	}
	return nil
}

func (s *Service) add(ctx context.Context, path string, delta int64) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		current, version, err := s.read(ctx, path)
		if err != nil {
			return err
		}

		value := []byte(strconv.FormatInt(current+delta, 10))
		if version == 0 {
			err = s.store.Create(ctx, path, value, store.Persistent)
			if !errors.Is(err, store.ErrNodeExists) {
				return s.wrap(path, err)
			}
			continue
		}

		_, err = s.store.Update(ctx, path, value, version)
		if !errors.Is(err, store.ErrVersionConflict) && !errors.Is(err, store.ErrNodeNotFound) {
			return s.wrap(path, err)
		}
	}
	return fmt.Errorf("statistics: failed to persist %s after %d attempts: %w", path, maxAttempts, store.ErrVersionConflict)
}

func (s *Service) read(ctx context.Context, path string) (int64, int64, error) {
	node, err := s.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrNodeNotFound) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("statistics: failed to read %s: %w", path, err)
	}

	count, err := strconv.ParseInt(string(node.Value), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("statistics: invalid count at %s: %w", path, err)
	}
	return count, node.Version, nil
}

func (s *Service) wrap(path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("statistics: failed to persist %s: %w", path, err)
}
