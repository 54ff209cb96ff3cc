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
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/job"
)

// execute runs one tick: resharding, execution of the local items, misfire
// backlog and failover. Shards claimed through failover run right away
// instead of waiting for the next tick.
func (s *Scheduler) execute(ctx context.Context) error {
	for {
		claimed, err := s.executeOnce(ctx)
		if err != nil || len(claimed) == 0 {
			return err
		}
		s.logger.Infof("job=(%s) took over items=%v, executing them now", s.coordinator.JobName(), claimed)
	}
}

func (s *Scheduler) executeOnce(ctx context.Context) ([]int, error) {
	jobName := s.coordinator.JobName()

	stopped, err := s.coordinator.IsJobStoppedManually(ctx)
	if err != nil {
		return nil, err
	}
	if stopped {
		s.logger.Debugf("job=(%s) is stopped on this server, tick skipped", jobName)
		return nil, nil
	}

	if err := s.detail.Sharding.ShardingIfNecessary(ctx); err != nil {
		return nil, err
	}

	shardingContext, err := s.detail.ExecutionContext.GetShardingContext(ctx)
	if err != nil {
		return nil, err
	}

	items := shardingContext.ItemIndexes()
	misfired, err := s.detail.Execution.MisfireIfNecessary(ctx, items)
	if err != nil {
		return nil, err
	}
	if misfired {
		s.logger.Debugf("job=(%s) items=%v still running elsewhere, tick misfired", jobName, items)
		s.detail.Statistics.IncrementMisfireCount(ctx)
		return nil, nil
	}

	s.run(ctx, shardingContext)

	if err := s.executeMisfired(ctx, shardingContext); err != nil {
		return nil, err
	}

	return s.detail.Failover.FailoverIfNecessary(ctx)
}

// executeMisfired catches up the ticks missed while the items were running
// when the misfire policy fires them right away
func (s *Scheduler) executeMisfired(ctx context.Context, shardingContext *job.ShardingContext) error {
	items := shardingContext.ItemIndexes()
	for len(items) > 0 {
		misfire, err := s.coordinator.IsMisfire(ctx)
		if err != nil || !misfire {
			return err
		}

		stopped, err := s.coordinator.IsJobStoppedManually(ctx)
		if err != nil || stopped {
			return err
		}

		misfired, err := s.detail.Execution.GetMisfiredItems(ctx, items)
		if err != nil || len(misfired) == 0 {
			return err
		}

		if err := s.detail.Execution.ClearMisfire(ctx, misfired); err != nil {
			return err
		}

		offsets, err := s.detail.Offset.GetOffsets(ctx, misfired)
		if err != nil {
			return err
		}

		s.logger.Debugf("job=(%s) executing misfired items=%v", s.coordinator.JobName(), misfired)
		s.run(ctx, misfiredContext(shardingContext, misfired, offsets))
	}
	return nil
}

// run executes the items of the sharding context. Failures of the listeners
// and of the handler are logged and never stop the bookkeeping.
func (s *Scheduler) run(ctx context.Context, shardingContext *job.ShardingContext) {
	if shardingContext.IsEmpty() {
		return
	}

	jobName := shardingContext.JobName
	items := shardingContext.ItemIndexes()
	start := time.Now()

	if err := s.detail.Execution.RegisterJobBegin(ctx, shardingContext); err != nil {
		s.logger.Errorf("job=(%s) failed to register the execution start: %v", jobName, err)
		return
	}

	for _, listener := range s.detail.Listeners {
		if err := listener.BeforeJobExecuted(ctx, shardingContext); err != nil {
			s.logger.Errorf("job=(%s) listener failed before execution: %v", jobName, err)
		}
	}

	succeeded, failed := s.handle(ctx, shardingContext)

	if err := s.detail.Execution.RegisterJobCompleted(ctx, shardingContext); err != nil {
		s.logger.Errorf("job=(%s) failed to register the execution completion: %v", jobName, err)
	}

	if err := s.detail.Failover.UpdateFailoverComplete(ctx, items); err != nil {
		s.logger.Errorf("job=(%s) failed to complete failover: %v", jobName, err)
	}

	for _, listener := range s.detail.Listeners {
		if err := listener.AfterJobExecuted(ctx, shardingContext); err != nil {
			s.logger.Errorf("job=(%s) listener failed after execution: %v", jobName, err)
		}
	}

	s.detail.Statistics.IncrementProcessSuccessCount(ctx, succeeded)
	s.detail.Statistics.IncrementProcessFailureCount(ctx, failed)
	s.detail.Statistics.RecordExecutionDuration(ctx, time.Since(start))
}

// handle runs the handler for every item concurrently and returns the
// number of successful and failed items
func (s *Scheduler) handle(ctx context.Context, shardingContext *job.ShardingContext) (succeeded, failed int) {
	var (
		successes = atomic.NewInt64(0)
		errs      = make([]error, len(shardingContext.Items))
		eg        errgroup.Group
	)

	if s.maxConcurrency > 0 {
		eg.SetLimit(s.maxConcurrency)
	}

	for index, item := range shardingContext.Items {
		shard := job.ShardContext{
			JobName:            shardingContext.JobName,
			TaskID:             shardingContext.TaskID,
			ShardingTotalCount: shardingContext.ShardingTotalCount,
			JobParameter:       shardingContext.JobParameter,
			Item:               item,
			Offsets:            s.detail.Offset,
		}

		eg.Go(func() error {
			if err := s.handleItem(ctx, shard); err != nil {
				errs[index] = err
				return nil
			}
			successes.Inc()
			return nil
		})
	}

	_ = eg.Wait()
	if err := multierr.Combine(errs...); err != nil {
		s.logger.Errorf("job=(%s) task=(%s) handler failures: %v", shardingContext.JobName, shardingContext.TaskID, err)
	}

	succeeded = int(successes.Load())
	return succeeded, len(shardingContext.Items) - succeeded
}

func (s *Scheduler) handleItem(ctx context.Context, shard job.ShardContext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			recovered, ok := r.(error)
			if !ok {
				recovered = fmt.Errorf("%v", r)
			}
			err = gerrors.NewHandlerError(shard.Item.Item, gerrors.NewPanicError(recovered))
		}
	}()

	if err := s.handler.Execute(ctx, shard); err != nil {
		return gerrors.NewHandlerError(shard.Item.Item, err)
	}
	return nil
}

// misfiredContext narrows the sharding context to the misfired items of a new task
func misfiredContext(shardingContext *job.ShardingContext, items []int, offsets map[int]string) *job.ShardingContext {
	narrowed := &job.ShardingContext{
		JobName:            shardingContext.JobName,
		TaskID:             uuid.NewString(),
		ShardingTotalCount: shardingContext.ShardingTotalCount,
		JobParameter:       shardingContext.JobParameter,
		Items:              make([]job.ShardingItem, 0, len(items)),
	}
	for _, index := range items {
		if item, ok := shardingContext.Item(index); ok {
			item.Misfire = true
			item.Offset = offsets[index]
			narrowed.Items = append(narrowed.Items, item)
		}
	}
	return narrowed
}
