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

package sharding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/internal/config"
	"github.com/tochemey/elasticjob/internal/election"
	"github.com/tochemey/elasticjob/internal/execution"
	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/internal/server"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
	"github.com/tochemey/elasticjob/store/memory"
)

const jobName = "testJob"

type node struct {
	id        string
	client    *memory.Client
	config    *config.Service
	servers   *server.Service
	election  *election.Service
	execution *execution.Service
	sharding  *Service
}

func newNode(t *testing.T, backend *memory.Backend, instance string) *node {
	t.Helper()
	client := backend.NewClient()
	t.Cleanup(func() { _ = client.Close() })

	id := server.NewServerID("host", instance)
	configs := config.New(client, jobName, log.DiscardLogger)
	servers := server.New(client, jobName, id, log.DiscardLogger)
	leadership := election.New(client, jobName, id, servers, log.DiscardLogger)
	executions := execution.New(client, jobName, id, configs, servers, log.DiscardLogger)
	return &node{
		id:        id,
		client:    client,
		config:    configs,
		servers:   servers,
		election:  leadership,
		execution: executions,
		sharding:  New(client, jobName, id, configs, leadership, servers, executions, log.DiscardLogger),
	}
}

func startNodes(t *testing.T, backend *memory.Backend, total int, instances ...string) []*node {
	t.Helper()
	ctx := context.Background()
	nodes := make([]*node, len(instances))
	for i, instance := range instances {
		nodes[i] = newNode(t, backend, instance)
		require.NoError(t, nodes[i].config.Persist(ctx, job.NewConfig(jobName, "TestJob", total, "0/1 * * * * ?")))
		require.NoError(t, nodes[i].servers.PersistOnline(ctx))
	}
	require.NoError(t, nodes[0].election.ElectLeader(ctx))
	return nodes
}

func TestShardingIfNecessary(t *testing.T) {
	ctx := context.Background()
	nodes := startNodes(t, memory.NewBackend(), 10, "a", "b", "c")
	leader := nodes[0]

	require.NoError(t, leader.sharding.SetReshardingFlag(ctx))
	require.NoError(t, leader.sharding.ShardingIfNecessary(ctx))

	necessary, err := leader.sharding.IsReshardingNecessary(ctx)
	require.NoError(t, err)
	assert.False(t, necessary)

	expected := map[string][]int{
		"host#a": {0, 3, 6, 9},
		"host#b": {1, 4, 7},
		"host#c": {2, 5, 8},
	}
	for _, n := range nodes {
		items, err := n.sharding.GetShardingItems(ctx, n.id)
		require.NoError(t, err)
		assert.Equal(t, expected[n.id], items)
	}

	// nothing to do while the flag is not set
	require.NoError(t, nodes[1].sharding.ShardingIfNecessary(ctx))
}

func TestShardingShrinksTotal(t *testing.T) {
	ctx := context.Background()
	nodes := startNodes(t, memory.NewBackend(), 6, "a", "b")
	leader := nodes[0]

	require.NoError(t, leader.sharding.SetReshardingFlag(ctx))
	require.NoError(t, leader.sharding.ShardingIfNecessary(ctx))

	require.NoError(t, leader.config.Persist(ctx, job.NewConfig(jobName, "TestJob", 3, "0/1 * * * * ?",
		job.WithShardingStrategy(job.AverageStrategy), job.WithOverwrite())))
	require.NoError(t, leader.sharding.SetReshardingFlag(ctx))

	// the leader reshards before answering its own items
	items, err := leader.sharding.GetLocalHostShardingItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, items)

	assignment, err := leader.sharding.Assignment(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "host#a", 1: "host#a", 2: "host#b"}, assignment)
}

func TestShardingWithoutAvailableServer(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewBackend()
	n := newNode(t, backend, "a")
	require.NoError(t, n.config.Persist(ctx, job.NewConfig(jobName, "TestJob", 3, "0/1 * * * * ?")))

	require.NoError(t, n.sharding.SetReshardingFlag(ctx))
	require.NoError(t, n.sharding.ShardingIfNecessary(ctx))

	necessary, err := n.sharding.IsReshardingNecessary(ctx)
	require.NoError(t, err)
	assert.True(t, necessary)

	items, err := n.sharding.GetLocalHostShardingItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	children, err := n.client.Children(ctx, jobpath.New(jobName).Sharding())
	require.NoError(t, err)
	assert.Equal(t, []string{"necessary"}, children)
}

func TestFollowerWaitsForLeader(t *testing.T) {
	nodes := startNodes(t, memory.NewBackend(), 4, "a", "b")
	leader, follower := nodes[0], nodes[1]
	follower.sharding.pollInterval = 10 * time.Millisecond

	require.NoError(t, leader.sharding.SetReshardingFlag(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, follower.sharding.ShardingIfNecessary(ctx), gerrors.ErrShardingTimeout)

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		done <- follower.sharding.ShardingIfNecessary(ctx)
	}()

	require.NoError(t, leader.sharding.ShardingIfNecessary(context.Background()))
	require.NoError(t, <-done)

	items, err := follower.sharding.GetLocalHostShardingItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, items)
}

func TestLeaderWaitsForRunningItems(t *testing.T) {
	ctx := context.Background()
	nodes := startNodes(t, memory.NewBackend(), 2, "a", "b")
	leader, follower := nodes[0], nodes[1]
	leader.sharding.pollInterval = 10 * time.Millisecond

	require.NoError(t, leader.sharding.SetReshardingFlag(ctx))
	require.NoError(t, leader.sharding.ShardingIfNecessary(ctx))

	running := &job.ShardingContext{JobName: jobName, ShardingTotalCount: 2, Items: []job.ShardingItem{{Item: 1}}}
	require.NoError(t, follower.execution.RegisterJobBegin(ctx, running))
	require.NoError(t, leader.sharding.SetReshardingFlag(ctx))

	timeout, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, leader.sharding.ShardingIfNecessary(timeout), gerrors.ErrShardingTimeout)

	require.NoError(t, follower.execution.RegisterJobCompleted(ctx, running))
	require.NoError(t, leader.sharding.ShardingIfNecessary(ctx))

	necessary, err := leader.sharding.IsReshardingNecessary(ctx)
	require.NoError(t, err)
	assert.False(t, necessary)
}

func TestReshardAfterLosingLeadership(t *testing.T) {
	ctx := context.Background()
	nodes := startNodes(t, memory.NewBackend(), 2, "a", "b")
	leader := nodes[0]
	path := jobpath.New(jobName)

	require.NoError(t, leader.sharding.SetReshardingFlag(ctx))
	// another server took the leadership between the check and the commit
	_, err := leader.client.Put(ctx, path.Leader(), []byte("host#b"), store.Persistent)
	require.NoError(t, err)

	require.NoError(t, leader.sharding.reshard(ctx))

	assignment, err := leader.sharding.Assignment(ctx)
	require.NoError(t, err)
	assert.Empty(t, assignment)

	necessary, err := leader.sharding.IsReshardingNecessary(ctx)
	require.NoError(t, err)
	assert.True(t, necessary)
}

func TestDisabledServerOwnsNothing(t *testing.T) {
	ctx := context.Background()
	nodes := startNodes(t, memory.NewBackend(), 4, "a", "b")
	leader := nodes[0]

	require.NoError(t, leader.servers.Disable(ctx, "host#b"))
	require.NoError(t, leader.sharding.SetReshardingFlag(ctx))
	require.NoError(t, leader.sharding.ShardingIfNecessary(ctx))

	items, err := leader.sharding.GetShardingItems(ctx, "host#a")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, items)

	items, err = nodes[1].sharding.GetLocalHostShardingItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = leader.sharding.GetLocalShardingItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, items)
}
