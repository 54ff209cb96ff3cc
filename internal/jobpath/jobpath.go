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

// Package jobpath builds the store paths of a job. Every node of a job lives
// below /{job}.
package jobpath

import (
	"strconv"

	"github.com/tochemey/elasticjob/store"
)

const (
	configNode     = "config"
	leaderNode     = "leader"
	serversNode    = "servers"
	stoppedNode    = "stopped"
	disabledNode   = "disabled"
	shardingNode   = "sharding"
	necessaryNode  = "necessary"
	processingNode = "processing"
	executionNode  = "execution"
	runningNode    = "running"
	completedNode  = "completed"
	misfireNode    = "misfire"
	failoverNode   = "failover"
	offsetNode     = "offset"
	guaranteeNode  = "guarantee"
	startedNode    = "started"
	triggerNode    = "trigger"
	statisticsNode = "statistics"
	successNode    = "success"
	failureNode    = "failure"
)

// Path builds the node paths of one job
type Path struct {
	job string
}

// New creates a Path for the given job
func New(jobName string) Path {
	return Path{job: jobName}
}

// JobName returns the job name
func (p Path) JobName() string {
	return p.job
}

// Root returns /{job}
func (p Path) Root() string {
	return store.Join(p.job)
}

// Config returns /{job}/config
func (p Path) Config() string {
	return store.Join(p.job, configNode)
}

// Leader returns /{job}/leader
func (p Path) Leader() string {
	return store.Join(p.job, leaderNode)
}

// Servers returns /{job}/servers
func (p Path) Servers() string {
	return store.Join(p.job, serversNode)
}

// Server returns /{job}/servers/{id}
func (p Path) Server(serverID string) string {
	return store.Join(p.job, serversNode, serverID)
}

// ServerStopped returns /{job}/servers/{id}/stopped
func (p Path) ServerStopped(serverID string) string {
	return store.Join(p.job, serversNode, serverID, stoppedNode)
}

// ServerDisabled returns /{job}/servers/{id}/disabled
func (p Path) ServerDisabled(serverID string) string {
	return store.Join(p.job, serversNode, serverID, disabledNode)
}

// Sharding returns /{job}/sharding
func (p Path) Sharding() string {
	return store.Join(p.job, shardingNode)
}

// ShardingItem returns /{job}/sharding/{i}
func (p Path) ShardingItem(item int) string {
	return store.Join(p.job, shardingNode, strconv.Itoa(item))
}

// ReshardingNecessary returns /{job}/sharding/necessary
func (p Path) ReshardingNecessary() string {
	return store.Join(p.job, shardingNode, necessaryNode)
}

// ReshardingProcessing returns /{job}/sharding/processing
func (p Path) ReshardingProcessing() string {
	return store.Join(p.job, shardingNode, processingNode)
}

// Execution returns /{job}/execution
func (p Path) Execution() string {
	return store.Join(p.job, executionNode)
}

// ExecutionItem returns /{job}/execution/{i}
func (p Path) ExecutionItem(item int) string {
	return store.Join(p.job, executionNode, strconv.Itoa(item))
}

// Running returns /{job}/execution/{i}/running. The marker is persistent and
// holds the owner id: it outlives a crashed owner so that failover finds it.
func (p Path) Running(item int) string {
	return store.Join(p.ExecutionItem(item), runningNode)
}

// Completed returns /{job}/execution/{i}/completed
func (p Path) Completed(item int) string {
	return store.Join(p.ExecutionItem(item), completedNode)
}

// Misfire returns /{job}/execution/{i}/misfire
func (p Path) Misfire(item int) string {
	return store.Join(p.ExecutionItem(item), misfireNode)
}

// FailoverClaim returns /{job}/execution/{i}/failover
func (p Path) FailoverClaim(item int) string {
	return store.Join(p.ExecutionItem(item), failoverNode)
}

// FailoverQueue returns /{job}/failover
func (p Path) FailoverQueue() string {
	return store.Join(p.job, failoverNode)
}

// FailoverTask returns /{job}/failover/{i}
func (p Path) FailoverTask(item int) string {
	return store.Join(p.job, failoverNode, strconv.Itoa(item))
}

// Offsets returns /{job}/offset
func (p Path) Offsets() string {
	return store.Join(p.job, offsetNode)
}

// Offset returns /{job}/offset/{i}
func (p Path) Offset(item int) string {
	return store.Join(p.job, offsetNode, strconv.Itoa(item))
}

// Guarantee returns /{job}/guarantee
func (p Path) Guarantee() string {
	return store.Join(p.job, guaranteeNode)
}

// GuaranteeStarted returns /{job}/guarantee/started
func (p Path) GuaranteeStarted() string {
	return store.Join(p.job, guaranteeNode, startedNode)
}

// GuaranteeStartedItem returns /{job}/guarantee/started/{i}
func (p Path) GuaranteeStartedItem(item int) string {
	return store.Join(p.GuaranteeStarted(), strconv.Itoa(item))
}

// GuaranteeStartedTrigger returns /{job}/guarantee/started/trigger
func (p Path) GuaranteeStartedTrigger() string {
	return store.Join(p.GuaranteeStarted(), triggerNode)
}

// GuaranteeCompleted returns /{job}/guarantee/completed
func (p Path) GuaranteeCompleted() string {
	return store.Join(p.job, guaranteeNode, completedNode)
}

// GuaranteeCompletedItem returns /{job}/guarantee/completed/{i}
func (p Path) GuaranteeCompletedItem(item int) string {
	return store.Join(p.GuaranteeCompleted(), strconv.Itoa(item))
}

// GuaranteeCompletedTrigger returns /{job}/guarantee/completed/trigger
func (p Path) GuaranteeCompletedTrigger() string {
	return store.Join(p.GuaranteeCompleted(), triggerNode)
}

// Statistics returns /{job}/statistics/{id}
func (p Path) Statistics(serverID string) string {
	return store.Join(p.job, statisticsNode, serverID)
}

// StatisticsSuccess returns /{job}/statistics/{id}/success
func (p Path) StatisticsSuccess(serverID string) string {
	return store.Join(p.job, statisticsNode, serverID, successNode)
}

// StatisticsFailure returns /{job}/statistics/{id}/failure
func (p Path) StatisticsFailure(serverID string) string {
	return store.Join(p.job, statisticsNode, serverID, failureNode)
}

// ParseItem converts a child name into a shard index. Names that are not
// shard indexes, such as "necessary" below /sharding, are rejected.
func ParseItem(name string) (int, bool) {
	item, err := strconv.Atoi(name)
	if err != nil || item < 0 {
		return 0, false
	}
	return item, true
}
