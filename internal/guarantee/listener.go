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

package guarantee

import (
	"context"
	"time"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
)

const defaultPollInterval = 50 * time.Millisecond

// Listener adapts a job.DistributeOnceListener to a job.Listener. Every
// server registers its shards; once all the shards are registered a single
// server runs the hook and clears the round while the others wait for it.
type Listener struct {
	once         job.DistributeOnceListener
	guarantee    *Service
	logger       log.Logger
	pollInterval time.Duration
}

var _ job.Listener = (*Listener)(nil)

// NewListener creates an instance of Listener
func NewListener(once job.DistributeOnceListener, guarantee *Service, logger log.Logger) *Listener {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Listener{
		once:         once,
		guarantee:    guarantee,
		logger:       logger,
		pollInterval: defaultPollInterval,
	}
}

// Guarantee returns the service the listener coordinates through
func (l *Listener) Guarantee() *Service {
	return l.guarantee
}

// BeforeJobExecuted implements job.Listener
func (l *Listener) BeforeJobExecuted(ctx context.Context, shardingContext *job.ShardingContext) error {
	if shardingContext.IsEmpty() {
		return nil
	}
	if err := l.guarantee.RegisterStart(ctx, shardingContext.ItemIndexes()); err != nil {
		return err
	}
	return l.await(ctx, shardingContext, phase{
		name:    "started",
		timeout: l.once.StartedTimeout(),
		isAll:   l.guarantee.IsAllStarted,
		trigger: l.guarantee.TryTriggerStarted,
		cleared: l.guarantee.IsStartedCleared,
		clear:   l.guarantee.ClearAllStartedInfo,
		hook:    l.once.DoBeforeJobExecutedAtLastStarted,
	})
}

// AfterJobExecuted implements job.Listener
func (l *Listener) AfterJobExecuted(ctx context.Context, shardingContext *job.ShardingContext) error {
	if shardingContext.IsEmpty() {
		return nil
	}
	if err := l.guarantee.RegisterComplete(ctx, shardingContext.ItemIndexes()); err != nil {
		return err
	}
	return l.await(ctx, shardingContext, phase{
		name:    "completed",
		timeout: l.once.CompletedTimeout(),
		isAll:   l.guarantee.IsAllCompleted,
		trigger: l.guarantee.TryTriggerCompleted,
		cleared: l.guarantee.IsCompletedCleared,
		clear:   l.guarantee.ClearAllCompletedInfo,
		hook:    l.once.DoAfterJobExecutedAtLastCompleted,
	})
}

type phase struct {
	name    string
	timeout time.Duration
	isAll   func(context.Context, int) (bool, error)
	trigger func(context.Context) (bool, error)
	cleared func(context.Context) (bool, error)
	clear   func(context.Context) error
	hook    func(context.Context, *job.ShardingContext) error
}

func (l *Listener) await(ctx context.Context, shardingContext *job.ShardingContext, p phase) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	for {
		all, err := p.isAll(ctx, shardingContext.ShardingTotalCount)
		if err != nil {
			return err
		}

		if all {
			won, err := p.trigger(ctx)
			if err != nil {
				return err
			}
			if won {
				hookErr := p.hook(ctx, shardingContext)
				// the round is cleared even when the hook fails
				if err := p.clear(context.WithoutCancel(ctx)); err != nil {
					l.logger.Errorf("job=(%s) failed to clear the %s round: %v", shardingContext.JobName, p.name, err)
				}
				return hookErr
			}
		}

		cleared, err := p.cleared(ctx)
		if err != nil {
			return err
		}
		if cleared {
			return nil
		}

		timer := time.NewTimer(l.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return gerrors.NewErrGuaranteeTimeout(shardingContext.JobName, p.name)
		case <-timer.C:
		}
	}
}
