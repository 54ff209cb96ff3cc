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
	"github.com/tochemey/elasticjob/internal/execution"
	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/internal/server"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store/memory"
)

const jobName = "testJob"

type member struct {
	id        string
	client    *memory.Client
	servers   *server.Service
	execution *execution.Service
}

func newMember(t *testing.T, backend *memory.Backend, instance string, opts ...job.Option) *member {
	t.Helper()
	ctx := context.Background()
	client := backend.NewClient()
	t.Cleanup(func() { _ = client.Close() })

	id := server.NewServerID("host", instance)
	configs := config.New(client, jobName, log.DiscardLogger)
	require.NoError(t, configs.Persist(ctx, job.NewConfig(jobName, "TestJob", 3, "0/1 * * * * ?", opts...)))
	servers := server.New(client, jobName, id, log.DiscardLogger)
	require.NoError(t, servers.PersistOnline(ctx))

	return &member{
		id:        id,
		client:    client,
		servers:   servers,
		execution: execution.New(client, jobName, id, configs, servers, log.DiscardLogger),
	}
}

func shardingContext(items ...int) *job.ShardingContext {
	shardingContext := &job.ShardingContext{JobName: jobName, ShardingTotalCount: 3}
	for _, item := range items {
		shardingContext.Items = append(shardingContext.Items, job.ShardingItem{Item: item})
	}
	return shardingContext
}

func TestRegisterJob(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewBackend()
	a := newMember(t, backend, "a")
	b := newMember(t, backend, "b")

	require.NoError(t, a.execution.RegisterJobBegin(ctx, shardingContext(0, 1)))
	require.NoError(t, a.execution.RegisterJobBegin(ctx, shardingContext()))

	owners, err := b.execution.RunningOwners(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: a.id, 1: a.id}, owners)

	running, err := b.execution.HasRunningItems(ctx, []int{1, 2})
	require.NoError(t, err)
	assert.True(t, running)

	// the local server ignores its own markers
	running, err = a.execution.HasRunningItems(ctx, nil)
	require.NoError(t, err)
	assert.False(t, running)

	running, err = b.execution.HasRunningItems(ctx, []int{2})
	require.NoError(t, err)
	assert.False(t, running)

	// another server took item 1 over: its marker is left untouched
	require.NoError(t, b.execution.RegisterJobBegin(ctx, shardingContext(1)))
	require.NoError(t, a.execution.RegisterJobCompleted(ctx, shardingContext(0, 1)))

	owners, err = a.execution.RunningOwners(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: b.id}, owners)

	completed, err := a.execution.IsCompleted(ctx, 0)
	require.NoError(t, err)
	assert.True(t, completed)

	completed, err = a.execution.IsCompleted(ctx, 1)
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestRunningMarkerOfCrashedServer(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewBackend()
	a := newMember(t, backend, "a")
	b := newMember(t, backend, "b")

	require.NoError(t, b.execution.RegisterJobBegin(ctx, shardingContext(2)))
	b.client.ExpireSession()

	// the marker survives the crash but does not count as running
	owners, err := a.execution.RunningOwners(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{2: b.id}, owners)

	running, err := a.execution.HasRunningItems(ctx, nil)
	require.NoError(t, err)
	assert.False(t, running)

	// clearing accepts an empty set
	require.NoError(t, a.execution.ClearRunningInfo(ctx, []int{}))
	require.NoError(t, a.execution.ClearRunningInfo(ctx, []int{2}))
	owners, err = a.execution.RunningOwners(ctx)
	require.NoError(t, err)
	assert.Empty(t, owners)
}

func TestMonitorExecutionDisabled(t *testing.T) {
	ctx := context.Background()
	a := newMember(t, memory.NewBackend(), "a", job.WithMonitorExecution(false))

	require.NoError(t, a.execution.RegisterJobBegin(ctx, shardingContext(0)))
	require.NoError(t, a.execution.RegisterJobCompleted(ctx, shardingContext(0)))

	children, err := a.client.Children(ctx, jobpath.New(jobName).Execution())
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestMisfire(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewBackend()
	a := newMember(t, backend, "a")
	b := newMember(t, backend, "b")

	misfired, err := a.execution.MisfireIfNecessary(ctx, []int{0})
	require.NoError(t, err)
	assert.False(t, misfired)

	require.NoError(t, b.execution.RegisterJobBegin(ctx, shardingContext(0)))
	misfired, err = a.execution.MisfireIfNecessary(ctx, []int{0, 1})
	require.NoError(t, err)
	assert.True(t, misfired)

	items, err := a.execution.GetMisfiredItems(ctx, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, items)

	require.NoError(t, a.execution.ClearMisfire(ctx, []int{0, 1}))
	items, err = a.execution.GetMisfiredItems(ctx, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, a.execution.SetMisfire(ctx, []int{2}))
	items, err = a.execution.GetMisfiredItems(ctx, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, items)
}
