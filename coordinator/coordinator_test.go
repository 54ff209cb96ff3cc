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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/internal/guarantee"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
	mocks "github.com/tochemey/elasticjob/mocks/coordinator"
	"github.com/tochemey/elasticjob/store/memory"
)

type serviceMocks struct {
	config           *mocks.ConfigurationService
	election         *mocks.LeaderElectionService
	server           *mocks.ServerService
	sharding         *mocks.ShardingService
	executionContext *mocks.ExecutionContextService
	execution        *mocks.ExecutionService
	failover         *mocks.FailoverService
	offset           *mocks.OffsetService
	statistics       *mocks.StatisticsService
	monitor          *mocks.MonitorService
	listeners        *mocks.ListenerManager
}

func newServiceMocks(t *testing.T) *serviceMocks {
	return &serviceMocks{
		config:           mocks.NewConfigurationService(t),
		election:         mocks.NewLeaderElectionService(t),
		server:           mocks.NewServerService(t),
		sharding:         mocks.NewShardingService(t),
		executionContext: mocks.NewExecutionContextService(t),
		execution:        mocks.NewExecutionService(t),
		failover:         mocks.NewFailoverService(t),
		offset:           mocks.NewOffsetService(t),
		statistics:       mocks.NewStatisticsService(t),
		monitor:          mocks.NewMonitorService(t),
		listeners:        mocks.NewListenerManager(t),
	}
}

func (m *serviceMocks) services() Services {
	return Services{
		Config:           m.config,
		Election:         m.election,
		Server:           m.server,
		Sharding:         m.sharding,
		ExecutionContext: m.executionContext,
		Execution:        m.execution,
		Failover:         m.failover,
		Offset:           m.offset,
		Statistics:       m.statistics,
		Monitor:          m.monitor,
		Listeners:        m.listeners,
	}
}

func testConfig() *job.Config {
	return job.NewConfig("testJob", "TestJob", 3, "0/1 * * * * ?")
}

type noopListener struct{}

func (noopListener) BeforeJobExecuted(context.Context, *job.ShardingContext) error { return nil }
func (noopListener) AfterJobExecuted(context.Context, *job.ShardingContext) error  { return nil }

type onceListener struct{}

func (onceListener) DoBeforeJobExecutedAtLastStarted(context.Context, *job.ShardingContext) error {
	return nil
}

func (onceListener) DoAfterJobExecutedAtLastCompleted(context.Context, *job.ShardingContext) error {
	return nil
}
func (onceListener) StartedTimeout() time.Duration   { return time.Second }
func (onceListener) CompletedTimeout() time.Duration { return time.Second }

func TestNew(t *testing.T) {
	t.Run("with nil configuration", func(t *testing.T) {
		_, err := New(nil, newServiceMocks(t).services())
		require.ErrorIs(t, err, gerrors.ErrInvalidConfig)
	})
	t.Run("with invalid configuration", func(t *testing.T) {
		_, err := New(job.NewConfig("testJob", "TestJob", 0, "0/1 * * * * ?"), newServiceMocks(t).services())
		require.ErrorIs(t, err, gerrors.ErrInvalidConfig)
	})
	t.Run("with missing service", func(t *testing.T) {
		services := newServiceMocks(t).services()
		services.Monitor = nil
		_, err := New(testConfig(), services)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "monitor")
	})
	t.Run("with distribute once listeners but no guarantee", func(t *testing.T) {
		_, err := New(testConfig(), newServiceMocks(t).services(), WithDistributeOnceListeners(onceListener{}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "guarantee")
	})
	t.Run("happy path", func(t *testing.T) {
		coordinator, err := New(testConfig(), newServiceMocks(t).services(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		assert.Equal(t, "testJob", coordinator.JobName())
	})
}

func TestRegisterStartUpInfo(t *testing.T) {
	ctx := context.Background()
	config := testConfig()

	t.Run("in order", func(t *testing.T) {
		m := newServiceMocks(t)
		mock.InOrder(
			m.listeners.EXPECT().StartAllListeners(ctx).Return(nil).Once(),
			m.election.EXPECT().ElectLeader(ctx).Return(nil).Once(),
			m.config.EXPECT().Persist(ctx, config).Return(nil).Once(),
			m.server.EXPECT().PersistOnline(ctx).Return(nil).Once(),
			m.server.EXPECT().ClearJobStoppedStatus(ctx).Return(nil).Once(),
			m.statistics.EXPECT().StartProcessCountJob(ctx).Return(nil).Once(),
			m.sharding.EXPECT().SetReshardingFlag(ctx).Return(nil).Once(),
			m.monitor.EXPECT().Listen(ctx).Return(nil).Once(),
		)

		coordinator, err := New(config, m.services(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		require.NoError(t, coordinator.RegisterStartUpInfo(ctx))
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		m := newServiceMocks(t)
		m.listeners.EXPECT().StartAllListeners(ctx).Return(nil).Once()
		m.election.EXPECT().ElectLeader(ctx).Return(nil).Once()
		m.config.EXPECT().Persist(ctx, config).Return(gerrors.ErrJobConflict).Once()

		coordinator, err := New(config, m.services(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		err = coordinator.RegisterStartUpInfo(ctx)
		require.ErrorIs(t, err, gerrors.ErrJobConflict)
	})
}

func TestFillJobDetail(t *testing.T) {
	m := newServiceMocks(t)
	services := m.services()
	services.Guarantee = guarantee.New(memory.New(), "testJob", "host#1", log.DiscardLogger)

	coordinator, err := New(testConfig(), services,
		WithLogger(log.DiscardLogger),
		WithListeners(noopListener{}),
		WithDistributeOnceListeners(onceListener{}))
	require.NoError(t, err)

	require.Error(t, coordinator.FillJobDetail(nil))

	detail := new(JobDetail)
	require.NoError(t, coordinator.FillJobDetail(detail))
	assert.Len(t, detail.Listeners, 2)
	assert.IsType(t, noopListener{}, detail.Listeners[0])
	assert.IsType(t, &guarantee.Listener{}, detail.Listeners[1])
	assert.Same(t, m.sharding, detail.Sharding)
	assert.Same(t, m.execution, detail.Execution)
	assert.Same(t, m.offset, detail.Offset)

	// the detail owns its copy of the listeners
	detail.Listeners[0] = nil
	other := new(JobDetail)
	require.NoError(t, coordinator.FillJobDetail(other))
	assert.NotNil(t, other.Listeners[0])
}

func TestReleaseJobResource(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(t)
	closeErr := errors.New("close failure")
	m.monitor.EXPECT().Close(ctx).Return(closeErr).Once()
	m.statistics.EXPECT().StopProcessCountJob(ctx).Return(nil).Once()

	coordinator, err := New(testConfig(), m.services(), WithLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.ErrorIs(t, coordinator.ReleaseJobResource(ctx), closeErr)
}

func TestResumeCrashedJobInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("with local items", func(t *testing.T) {
		m := newServiceMocks(t)
		mock.InOrder(
			m.server.EXPECT().PersistOnline(ctx).Return(nil).Once(),
			m.sharding.EXPECT().GetLocalHostShardingItems(ctx).Return([]int{0, 2}, nil).Once(),
			m.execution.EXPECT().ClearRunningInfo(ctx, []int{0, 2}).Return(nil).Once(),
		)

		coordinator, err := New(testConfig(), m.services(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		require.NoError(t, coordinator.ResumeCrashedJobInfo(ctx))
	})

	t.Run("without local items", func(t *testing.T) {
		m := newServiceMocks(t)
		m.server.EXPECT().PersistOnline(ctx).Return(nil).Once()
		m.sharding.EXPECT().GetLocalHostShardingItems(ctx).Return([]int{}, nil).Once()
		m.execution.EXPECT().ClearRunningInfo(ctx, []int{}).Return(nil).Once()

		coordinator, err := New(testConfig(), m.services(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		require.NoError(t, coordinator.ResumeCrashedJobInfo(ctx))
	})
}

func TestShutdown(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(t)
	removeErr := errors.New("remove failure")
	mock.InOrder(
		m.listeners.EXPECT().StopAllListeners().Return().Once(),
		m.election.EXPECT().RemoveLeader(ctx).Return(removeErr).Once(),
	)
	m.monitor.EXPECT().Close(ctx).Return(nil).Once()
	m.statistics.EXPECT().StopProcessCountJob(ctx).Return(nil).Once()

	coordinator, err := New(testConfig(), m.services(), WithLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.ErrorIs(t, coordinator.Shutdown(ctx), removeErr)
}

func TestPassThrough(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(t)
	m.server.EXPECT().ClearJobStoppedStatus(ctx).Return(nil).Once()
	m.server.EXPECT().IsJobStoppedManually(ctx).Return(true, nil).Once()
	m.config.EXPECT().GetCron(ctx).Return("0/5 * * * * ?", nil).Once()
	m.config.EXPECT().IsMisfire(ctx).Return(false, nil).Once()

	coordinator, err := New(testConfig(), m.services(), WithLogger(log.DiscardLogger))
	require.NoError(t, err)

	require.NoError(t, coordinator.ClearJobStoppedStatus(ctx))
	stopped, err := coordinator.IsJobStoppedManually(ctx)
	require.NoError(t, err)
	assert.True(t, stopped)

	cron, err := coordinator.GetCron(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0/5 * * * * ?", cron)

	misfire, err := coordinator.IsMisfire(ctx)
	require.NoError(t, err)
	assert.False(t, misfire)
}

func TestTriggerMisfired(t *testing.T) {
	ctx := context.Background()

	t.Run("with local items", func(t *testing.T) {
		m := newServiceMocks(t)
		m.sharding.EXPECT().GetLocalShardingItems(ctx).Return([]int{1}, nil).Once()
		m.statistics.EXPECT().IncrementMisfireCount(ctx).Return().Once()
		m.execution.EXPECT().SetMisfire(ctx, []int{1}).Return(nil).Once()

		coordinator, err := New(testConfig(), m.services(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		require.NoError(t, coordinator.NewJobTriggerListener().TriggerMisfired(ctx))
	})

	t.Run("without local items", func(t *testing.T) {
		m := newServiceMocks(t)
		m.sharding.EXPECT().GetLocalShardingItems(ctx).Return([]int{}, nil).Once()
		m.statistics.EXPECT().IncrementMisfireCount(ctx).Return().Once()

		coordinator, err := New(testConfig(), m.services(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		require.NoError(t, coordinator.NewJobTriggerListener().TriggerMisfired(ctx))
	})

	t.Run("with sharding failure", func(t *testing.T) {
		m := newServiceMocks(t)
		m.sharding.EXPECT().GetLocalShardingItems(ctx).Return(nil, gerrors.ErrServerUnavailable).Once()

		coordinator, err := New(testConfig(), m.services(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		require.ErrorIs(t, coordinator.NewJobTriggerListener().TriggerMisfired(ctx), gerrors.ErrServerUnavailable)
	})
}

func TestNewFromStore(t *testing.T) {
	t.Run("with nil store", func(t *testing.T) {
		_, err := NewFromStore(nil, testConfig())
		require.Error(t, err)
	})

	t.Run("with invalid configuration", func(t *testing.T) {
		_, err := NewFromStore(memory.New(), job.NewConfig("testJob", "", 3, "0/1 * * * * ?"))
		require.ErrorIs(t, err, gerrors.ErrInvalidConfig)
	})

	t.Run("single server owns every item", func(t *testing.T) {
		ctx := context.Background()
		st := memory.New()
		t.Cleanup(func() { _ = st.Close() })

		coordinator, err := NewFromStore(st, testConfig(),
			WithServerID("host#1"),
			WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		require.NoError(t, coordinator.RegisterStartUpInfo(ctx))

		detail := new(JobDetail)
		require.NoError(t, coordinator.FillJobDetail(detail))

		items, err := detail.Sharding.GetLocalHostShardingItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, items)

		cron, err := coordinator.GetCron(ctx)
		require.NoError(t, err)
		assert.Equal(t, "0/1 * * * * ?", cron)

		require.NoError(t, coordinator.Shutdown(ctx))
	})

	t.Run("two servers split the items", func(t *testing.T) {
		ctx := context.Background()
		backend := memory.NewBackend()
		config := job.NewConfig("testJob", "TestJob", 4, "0/1 * * * * ?")

		details := make([]*JobDetail, 2)
		for i, id := range []string{"host#1", "host#2"} {
			client := backend.NewClient()
			t.Cleanup(func() { _ = client.Close() })

			coordinator, err := NewFromStore(client, config, WithServerID(id), WithLogger(log.DiscardLogger))
			require.NoError(t, err)
			require.NoError(t, coordinator.RegisterStartUpInfo(ctx))
			t.Cleanup(func() { _ = coordinator.Shutdown(context.Background()) })

			details[i] = new(JobDetail)
			require.NoError(t, coordinator.FillJobDetail(details[i]))
		}

		require.Eventually(t, func() bool {
			for _, detail := range details {
				ctx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
				_ = detail.Sharding.ShardingIfNecessary(ctx)
				cancel()
			}

			seen := make(map[int]int)
			for _, detail := range details {
				items, err := detail.Sharding.GetLocalShardingItems(ctx)
				if err != nil || len(items) != 2 {
					return false
				}
				for _, item := range items {
					seen[item]++
				}
			}
			return len(seen) == 4
		}, 5*time.Second, 100*time.Millisecond)
	})
}
