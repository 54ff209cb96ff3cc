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

// Package coordinator is the composition root of a job on one server. It
// drives the coordination services in the order the scheduler relies on.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/internal/errorschain"
	"github.com/tochemey/elasticjob/internal/guarantee"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
)

// Coordinator exposes the lifecycle operations of a job to the scheduler
type Coordinator struct {
	config    *job.Config
	services  Services
	listeners []job.Listener
	logger    log.Logger
}

// New creates an instance of Coordinator from its services
func New(config *job.Config, services Services, opts ...Option) (*Coordinator, error) {
	if config == nil {
		return nil, gerrors.NewErrInvalidConfig("", errors.New("configuration is required"))
	}
	config.Sanitize()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := services.validate(); err != nil {
		return nil, err
	}

	o := newOptions(opts...)
	if len(o.onceListeners) > 0 && services.Guarantee == nil {
		return nil, missing("guarantee")
	}

	listeners := make([]job.Listener, 0, len(o.listeners)+len(o.onceListeners))
	listeners = append(listeners, o.listeners...)
	for _, once := range o.onceListeners {
		listeners = append(listeners, guarantee.NewListener(once, services.Guarantee, o.logger))
	}

	return &Coordinator{
		config:    config,
		services:  services,
		listeners: listeners,
		logger:    o.logger,
	}, nil
}

// JobName returns the name of the coordinated job
func (c *Coordinator) JobName() string {
	return c.config.JobName
}

// RegisterStartUpInfo announces the local server: listeners, leader election,
// configuration, server registration, statistics, resharding request and
// monitor, in that order.
func (c *Coordinator) RegisterStartUpInfo(ctx context.Context) error {
	if err := c.services.Listeners.StartAllListeners(ctx); err != nil {
		return fmt.Errorf("coordinator: failed to start listeners: %w", err)
	}
	if err := c.services.Election.ElectLeader(ctx); err != nil {
		return fmt.Errorf("coordinator: failed to elect leader: %w", err)
	}
	if err := c.services.Config.Persist(ctx, c.config); err != nil {
		return fmt.Errorf("coordinator: failed to persist configuration: %w", err)
	}
	if err := c.services.Server.PersistOnline(ctx); err != nil {
		return fmt.Errorf("coordinator: failed to register server: %w", err)
	}
	if err := c.services.Server.ClearJobStoppedStatus(ctx); err != nil {
		return fmt.Errorf("coordinator: failed to clear stopped status: %w", err)
	}
	if err := c.services.Statistics.StartProcessCountJob(ctx); err != nil {
		return fmt.Errorf("coordinator: failed to start statistics: %w", err)
	}
	if err := c.services.Sharding.SetReshardingFlag(ctx); err != nil {
		return fmt.Errorf("coordinator: failed to request resharding: %w", err)
	}
	if err := c.services.Monitor.Listen(ctx); err != nil {
		return fmt.Errorf("coordinator: failed to start monitor: %w", err)
	}

	c.logger.Infof("job=(%s) registered", c.config.JobName)
	return nil
}

// FillJobDetail hands the services and listeners to the job runner
func (c *Coordinator) FillJobDetail(detail *JobDetail) error {
	if detail == nil {
		return errors.New("coordinator: job detail is required")
	}

	detail.Config = c.services.Config
	detail.Sharding = c.services.Sharding
	detail.ExecutionContext = c.services.ExecutionContext
	detail.Execution = c.services.Execution
	detail.Failover = c.services.Failover
	detail.Offset = c.services.Offset
	detail.Statistics = c.services.Statistics
	detail.Listeners = append([]job.Listener(nil), c.listeners...)
	return nil
}

// ReleaseJobResource closes the monitor and stops the statistics. Both are
// always attempted.
func (c *Coordinator) ReleaseJobResource(ctx context.Context) error {
	return errorschain.New(errorschain.ReturnAll()).
		AddErrorFn(func() error { return c.services.Monitor.Close(ctx) }).
		AddErrorFn(func() error { return c.services.Statistics.StopProcessCountJob(ctx) }).
		Error()
}

// ResumeCrashedJobInfo re-announces the local server after a restart or a
// session loss and clears the running markers of its shards
func (c *Coordinator) ResumeCrashedJobInfo(ctx context.Context) error {
	if err := c.services.Server.PersistOnline(ctx); err != nil {
		return fmt.Errorf("coordinator: failed to register server: %w", err)
	}

	items, err := c.services.Sharding.GetLocalHostShardingItems(ctx)
	if err != nil {
		return fmt.Errorf("coordinator: failed to read local items: %w", err)
	}

	if err := c.services.Execution.ClearRunningInfo(ctx, items); err != nil {
		return fmt.Errorf("coordinator: failed to clear running info: %w", err)
	}
	return nil
}

// Shutdown stops the listeners, resigns the leadership and releases the
// job resources
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.services.Listeners.StopAllListeners()
	return errorschain.New(errorschain.ReturnAll()).
		AddErrorFn(func() error { return c.services.Election.RemoveLeader(ctx) }).
		AddErrorFn(func() error { return c.ReleaseJobResource(ctx) }).
		Error()
}

// ClearJobStoppedStatus removes the manual stop of the local server
func (c *Coordinator) ClearJobStoppedStatus(ctx context.Context) error {
	return c.services.Server.ClearJobStoppedStatus(ctx)
}

// IsJobStoppedManually reports whether the local server was stopped by an operator
func (c *Coordinator) IsJobStoppedManually(ctx context.Context) (bool, error) {
	return c.services.Server.IsJobStoppedManually(ctx)
}

// GetCron returns the persisted cron expression
func (c *Coordinator) GetCron(ctx context.Context) (string, error) {
	return c.services.Config.GetCron(ctx)
}

// IsMisfire returns the persisted misfire policy
func (c *Coordinator) IsMisfire(ctx context.Context) (bool, error) {
	return c.services.Config.IsMisfire(ctx)
}

// NewJobTriggerListener creates the listener the scheduler notifies of its triggers
func (c *Coordinator) NewJobTriggerListener() *TriggerListener {
	return &TriggerListener{
		sharding:   c.services.Sharding,
		execution:  c.services.Execution,
		statistics: c.services.Statistics,
		jobName:    c.config.JobName,
		logger:     c.logger,
	}
}

func missing(service string) error {
	return fmt.Errorf("coordinator: %s service is required", service)
}
