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

// Package scheduler fires the executions of a job on its cron expression and
// runs the sharding items assigned to the local server.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	quartzjob "github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
	"go.uber.org/atomic"

	"github.com/tochemey/elasticjob/coordinator"
	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/internal/errorschain"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
)

const defaultStopTimeout = 30 * time.Second

// Scheduler triggers a job on the persisted cron expression. Ticks are serial:
// a tick that fires while the previous one still runs is reported as misfired.
type Scheduler struct {
	// helps lock concurrent access
	mu sync.Mutex

	quartzScheduler quartz.Scheduler
	coordinator     *coordinator.Coordinator
	handler         job.Handler
	detail          *coordinator.JobDetail
	trigger         *coordinator.TriggerListener

	// states whether the scheduler has started or not
	started *atomic.Bool
	// states whether a tick is running
	running *atomic.Bool
	cancel  context.CancelFunc

	logger         log.Logger
	stopTimeout    time.Duration
	location       *time.Location
	maxConcurrency int
}

// New creates an instance of Scheduler for the job coordinated by the given Coordinator
func New(coordinator *coordinator.Coordinator, handler job.Handler, opts ...Option) (*Scheduler, error) {
	if coordinator == nil {
		return nil, errors.New("scheduler: coordinator is required")
	}
	if handler == nil {
		return nil, gerrors.ErrHandlerRequired
	}

	// create an instance of quartz scheduler with logger off
	quartzScheduler, err := quartz.NewStdScheduler(quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))
	if err != nil {
		return nil, fmt.Errorf("scheduler: failed to create the cron scheduler: %w", err)
	}

	scheduler := &Scheduler{
		quartzScheduler: quartzScheduler,
		coordinator:     coordinator,
		handler:         handler,
		started:         atomic.NewBool(false),
		running:         atomic.NewBool(false),
		logger:          log.DefaultLogger,
		stopTimeout:     defaultStopTimeout,
		location:        time.Now().Location(),
	}

	for _, opt := range opts {
		opt.Apply(scheduler)
	}
	return scheduler, nil
}

// Start registers the local server and schedules the job on its persisted cron
// expression. The persisted expression wins over the local configuration.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started.Load() {
		return gerrors.ErrSchedulerAlreadyStarted
	}

	jobName := s.coordinator.JobName()
	s.logger.Infof("starting job=(%s) scheduler...", jobName)

	if err := s.coordinator.RegisterStartUpInfo(ctx); err != nil {
		return err
	}

	detail := new(coordinator.JobDetail)
	if err := s.coordinator.FillJobDetail(detail); err != nil {
		return err
	}

	cron, err := s.coordinator.GetCron(ctx)
	if err != nil {
		return err
	}

	trigger, err := quartz.NewCronTriggerWithLoc(cron, s.location)
	if err != nil {
		return gerrors.NewErrInvalidCron(cron, err)
	}

	s.detail = detail
	s.trigger = s.coordinator.NewJobTriggerListener()

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.quartzScheduler.Start(runCtx)

	function := quartzjob.NewFunctionJob[bool](func(ctx context.Context) (bool, error) {
		err := s.fire(ctx)
		return err == nil, err
	})

	jobDetail := quartz.NewJobDetail(function, quartz.NewJobKey(uuid.NewString()))
	if err := s.quartzScheduler.ScheduleJob(jobDetail, trigger); err != nil {
		cancel()
		s.quartzScheduler.Stop()
		return fmt.Errorf("scheduler: failed to schedule job=(%s): %w", jobName, err)
	}

	s.cancel = cancel
	s.started.Store(true)
	s.logger.Infof("job=(%s) scheduled with cron=(%s)", jobName, cron)
	return nil
}

// Trigger runs one tick right away. It is subject to the same serialization
// as the cron ticks.
func (s *Scheduler) Trigger(ctx context.Context) error {
	if !s.started.Load() {
		return gerrors.ErrSchedulerNotStarted
	}
	return s.fire(ctx)
}

// Running reports whether a tick is in progress
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Shutdown stops the cron ticks, waits for the running tick and releases the
// coordination resources of the local server
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started.Load() {
		return nil
	}

	jobName := s.coordinator.JobName()
	s.logger.Infof("stopping job=(%s) scheduler...", jobName)

	chain := errorschain.New(errorschain.ReturnAll()).
		AddError(s.quartzScheduler.Clear())

	s.quartzScheduler.Stop()
	s.cancel()
	s.started.Store(false)

	waitCtx, cancel := context.WithTimeout(ctx, s.stopTimeout)
	defer cancel()
	s.quartzScheduler.Wait(waitCtx)
	s.awaitIdle(waitCtx)

	err := chain.AddErrorFn(func() error { return s.coordinator.Shutdown(ctx) }).Error()
	s.logger.Infof("job=(%s) scheduler stopped", jobName)
	return err
}

// fire runs a tick unless another one is in progress, in which case the
// local items are flagged as misfired
func (s *Scheduler) fire(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Debugf("job=(%s) is still running, tick misfired", s.coordinator.JobName())
		return s.trigger.TriggerMisfired(ctx)
	}
	defer s.running.Store(false)

	err := s.execute(ctx)
	if err != nil {
		s.logger.Errorf("job=(%s) tick failed: %v", s.coordinator.JobName(), err)
	}
	return err
}

func (s *Scheduler) awaitIdle(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for s.running.Load() {
		select {
		case <-ctx.Done():
			s.logger.Warnf("job=(%s) tick still running after the stop timeout", s.coordinator.JobName())
			return
		case <-ticker.C:
		}
	}
}
