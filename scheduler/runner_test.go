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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/elasticjob/coordinator"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
	mocks "github.com/tochemey/elasticjob/mocks/coordinator"
)

func TestExecuteRunsClaimedFailoverItemsRightAway(t *testing.T) {
	ctx := context.Background()

	config := mocks.NewConfigurationService(t)
	server := mocks.NewServerService(t)
	sharding := mocks.NewShardingService(t)
	executionContext := mocks.NewExecutionContextService(t)
	execution := mocks.NewExecutionService(t)
	failover := mocks.NewFailoverService(t)
	statistics := mocks.NewStatisticsService(t)

	coord, err := coordinator.New(job.NewConfig("testJob", "TestJob", 3, yearly, job.WithFailover(true)), coordinator.Services{
		Config:           config,
		Election:         mocks.NewLeaderElectionService(t),
		Server:           server,
		Sharding:         sharding,
		ExecutionContext: executionContext,
		Execution:        execution,
		Failover:         failover,
		Offset:           mocks.NewOffsetService(t),
		Statistics:       statistics,
		Monitor:          mocks.NewMonitorService(t),
		Listeners:        mocks.NewListenerManager(t),
	}, coordinator.WithLogger(log.DiscardLogger))
	require.NoError(t, err)

	rec := new(recorder)
	scheduler, err := New(coord, job.HandlerFunc(func(_ context.Context, shard job.ShardContext) error {
		rec.record(shard)
		return nil
	}), WithLogger(log.DiscardLogger))
	require.NoError(t, err)

	scheduler.detail = new(coordinator.JobDetail)
	require.NoError(t, coord.FillJobDetail(scheduler.detail))

	assigned := &job.ShardingContext{JobName: "testJob", TaskID: "task-1", ShardingTotalCount: 3, Items: []job.ShardingItem{{Item: 0}}}
	takenOver := &job.ShardingContext{JobName: "testJob", TaskID: "task-2", ShardingTotalCount: 3, Items: []job.ShardingItem{{Item: 1}}}

	server.EXPECT().IsJobStoppedManually(mock.Anything).Return(false, nil).Twice()
	sharding.EXPECT().ShardingIfNecessary(mock.Anything).Return(nil).Twice()
	executionContext.EXPECT().GetShardingContext(mock.Anything).Return(assigned, nil).Once()
	executionContext.EXPECT().GetShardingContext(mock.Anything).Return(takenOver, nil).Once()
	execution.EXPECT().MisfireIfNecessary(mock.Anything, []int{0}).Return(false, nil).Once()
	execution.EXPECT().MisfireIfNecessary(mock.Anything, []int{1}).Return(false, nil).Once()
	execution.EXPECT().RegisterJobBegin(mock.Anything, mock.Anything).Return(nil).Twice()
	execution.EXPECT().RegisterJobCompleted(mock.Anything, mock.Anything).Return(nil).Twice()
	config.EXPECT().IsMisfire(mock.Anything).Return(false, nil).Twice()
	failover.EXPECT().UpdateFailoverComplete(mock.Anything, []int{0}).Return(nil).Once()
	failover.EXPECT().UpdateFailoverComplete(mock.Anything, []int{1}).Return(nil).Once()
	failover.EXPECT().FailoverIfNecessary(mock.Anything).Return([]int{1}, nil).Once()
	failover.EXPECT().FailoverIfNecessary(mock.Anything).Return(nil, nil).Once()
	statistics.EXPECT().IncrementProcessSuccessCount(mock.Anything, 1).Return().Twice()
	statistics.EXPECT().IncrementProcessFailureCount(mock.Anything, 0).Return().Twice()
	statistics.EXPECT().RecordExecutionDuration(mock.Anything, mock.Anything).Return().Twice()

	require.NoError(t, scheduler.execute(ctx))

	shards := rec.snapshot()
	require.Len(t, shards, 2)
	assert.Equal(t, "task-1", shards[0].TaskID)
	assert.Equal(t, 0, shards[0].Item.Item)
	assert.Equal(t, "task-2", shards[1].TaskID)
	assert.Equal(t, 1, shards[1].Item.Item)
}
