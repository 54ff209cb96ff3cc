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

package coordinator

import (
	"context"

	"github.com/tochemey/elasticjob/log"
)

// TriggerListener receives the trigger notifications of the scheduler
type TriggerListener struct {
	sharding   ShardingService
	execution  ExecutionService
	statistics StatisticsService
	jobName    string
	logger     log.Logger
}

// TriggerMisfired flags the local shards as misfired: a tick fired while
// the previous execution was still running
func (l *TriggerListener) TriggerMisfired(ctx context.Context) error {
	items, err := l.sharding.GetLocalShardingItems(ctx)
	if err != nil {
		return err
	}

	l.statistics.IncrementMisfireCount(ctx)
	if len(items) == 0 {
		return nil
	}

	l.logger.Debugf("job=(%s) misfired items=%v", l.jobName, items)
	return l.execution.SetMisfire(ctx, items)
}
