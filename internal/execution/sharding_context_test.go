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

package execution_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/elasticjob/internal/config"
	"github.com/tochemey/elasticjob/internal/election"
	"github.com/tochemey/elasticjob/internal/execution"
	"github.com/tochemey/elasticjob/internal/failover"
	"github.com/tochemey/elasticjob/internal/offset"
	"github.com/tochemey/elasticjob/internal/server"
	"github.com/tochemey/elasticjob/internal/sharding"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store/memory"
)

type worker struct {
	id        string
	client    *memory.Client
	election  *election.Service
	sharding  *sharding.Service
	execution *execution.Service
	failover  *failover.Service
	offsets   *offset.Service
	contexts  *execution.ContextService
}

func startWorkers(t *testing.T, cfg *job.Config, instances ...string) []*worker {
	t.Helper()
	ctx := context.Background()
	backend := memory.NewBackend()

	workers := make([]*worker, len(instances))
	for i, instance := range instances {
		client := backend.NewClient()
		t.Cleanup(func() { _ = client.Close() })

		id := server.NewServerID("host", instance)
		configs := config.New(client, jobName, log.DiscardLogger)
		require.NoError(t, configs.Persist(ctx, cfg))
		servers := server.New(client, jobName, id, log.DiscardLogger)
		require.NoError(t, servers.PersistOnline(ctx))

		leadership := election.New(client, jobName, id, servers, log.DiscardLogger)
		executions := execution.New(client, jobName, id, configs, servers, log.DiscardLogger)
		shards := sharding.New(client, jobName, id, configs, leadership, servers, executions, log.DiscardLogger)
		failovers := failover.New(client, jobName, id, configs, leadership, servers, executions, shards, log.DiscardLogger)
		offsets := offset.New(client, jobName, log.DiscardLogger)

		workers[i] = &worker{
			id:        id,
			client:    client,
			election:  leadership,
			sharding:  shards,
			execution: executions,
			failover:  failovers,
			offsets:   offsets,
			contexts:  execution.NewContextService(configs, shards, failovers, offsets, executions, log.DiscardLogger),
		}
	}

	require.NoError(t, workers[0].election.ElectLeader(ctx))
	require.NoError(t, workers[0].sharding.SetReshardingFlag(ctx))
	require.NoError(t, workers[0].sharding.ShardingIfNecessary(ctx))
	return workers
}

func TestGetShardingContext(t *testing.T) {
	ctx := context.Background()
	workers := startWorkers(t, job.NewConfig(jobName, "TestJob", 4, "0/1 * * * * ?",
		job.WithShardingItemParameters("0=A,1=B,2=C,3=D"),
		job.WithJobParameter("param")), "a", "b")
	a, b := workers[0], workers[1]

	require.NoError(t, a.offsets.SetOffset(ctx, 2, "42"))
	require.NoError(t, a.execution.SetMisfire(ctx, []int{0}))

	shardingContext, err := a.contexts.GetShardingContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, jobName, shardingContext.JobName)
	assert.Equal(t, 4, shardingContext.ShardingTotalCount)
	assert.Equal(t, "param", shardingContext.JobParameter)
	assert.NotEmpty(t, shardingContext.TaskID)
	assert.Equal(t, []job.ShardingItem{
		{Item: 0, Parameter: "A", Misfire: true},
		{Item: 2, Parameter: "C", Offset: "42"},
	}, shardingContext.Items)

	// an item still running on another live server is skipped
	require.NoError(t, b.execution.RegisterJobBegin(ctx, &job.ShardingContext{
		JobName: jobName, ShardingTotalCount: 4, Items: []job.ShardingItem{{Item: 2}},
	}))
	shardingContext, err = a.contexts.GetShardingContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, shardingContext.ItemIndexes())

	next, err := a.contexts.GetShardingContext(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, shardingContext.TaskID, next.TaskID)
}

func TestGetShardingContextWithFailover(t *testing.T) {
	ctx := context.Background()
	workers := startWorkers(t, job.NewConfig(jobName, "TestJob", 4, "0/1 * * * * ?", job.WithFailover(true)), "a", "b", "c")
	a, b, c := workers[0], workers[1], workers[2]

	// b crashes while running item 1, a takes it over
	require.NoError(t, b.execution.RegisterJobBegin(ctx, &job.ShardingContext{
		JobName: jobName, ShardingTotalCount: 4, Items: []job.ShardingItem{{Item: 1}},
	}))
	b.client.ExpireSession()
	claimed, err := a.failover.FailoverIfNecessary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, claimed)

	// claimed items take precedence over the assigned ones
	shardingContext, err := a.contexts.GetShardingContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, shardingContext.ItemIndexes())

	// c owns item 2 only
	shardingContext, err = c.contexts.GetShardingContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, shardingContext.ItemIndexes())

	require.NoError(t, a.failover.UpdateFailoverComplete(ctx, []int{1}))
	require.NoError(t, a.execution.RegisterJobCompleted(ctx, &job.ShardingContext{
		JobName: jobName, ShardingTotalCount: 4, Items: []job.ShardingItem{{Item: 1}},
	}))
	shardingContext, err = a.contexts.GetShardingContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, shardingContext.ItemIndexes())
}

func TestGetShardingContextWithoutItems(t *testing.T) {
	ctx := context.Background()
	workers := startWorkers(t, job.NewConfig(jobName, "TestJob", 1, "0/1 * * * * ?"), "a", "b")

	shardingContext, err := workers[1].contexts.GetShardingContext(ctx)
	require.NoError(t, err)
	assert.True(t, shardingContext.IsEmpty())
	assert.NotNil(t, shardingContext.Items)
}
