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
	"time"

	"github.com/tochemey/elasticjob/internal/guarantee"
	"github.com/tochemey/elasticjob/job"
)

// ConfigurationService persists and reads the job configuration
type ConfigurationService interface {
	Persist(ctx context.Context, config *job.Config) error
	Load(ctx context.Context) (*job.Config, error)
	GetCron(ctx context.Context) (string, error)
	IsMisfire(ctx context.Context) (bool, error)
}

// LeaderElectionService elects the leader of the job
type LeaderElectionService interface {
	ElectLeader(ctx context.Context) error
	HasLeadership(ctx context.Context) (bool, error)
	RemoveLeader(ctx context.Context) error
}

// ServerService publishes the local server
type ServerService interface {
	PersistOnline(ctx context.Context) error
	ClearJobStoppedStatus(ctx context.Context) error
	IsJobStoppedManually(ctx context.Context) (bool, error)
}

// ShardingService maintains the sharding assignment
type ShardingService interface {
	SetReshardingFlag(ctx context.Context) error
	ShardingIfNecessary(ctx context.Context) error
	GetLocalHostShardingItems(ctx context.Context) ([]int, error)
	GetLocalShardingItems(ctx context.Context) ([]int, error)
}

// ExecutionContextService builds the sharding context of a tick
type ExecutionContextService interface {
	GetShardingContext(ctx context.Context) (*job.ShardingContext, error)
}

// ExecutionService maintains the running, completed and misfire markers
type ExecutionService interface {
	RegisterJobBegin(ctx context.Context, shardingContext *job.ShardingContext) error
	RegisterJobCompleted(ctx context.Context, shardingContext *job.ShardingContext) error
	ClearRunningInfo(ctx context.Context, items []int) error
	MisfireIfNecessary(ctx context.Context, items []int) (bool, error)
	SetMisfire(ctx context.Context, items []int) error
	GetMisfiredItems(ctx context.Context, items []int) ([]int, error)
	ClearMisfire(ctx context.Context, items []int) error
}

// FailoverService moves the shards of crashed servers
type FailoverService interface {
	FailoverIfNecessary(ctx context.Context) ([]int, error)
	UpdateFailoverComplete(ctx context.Context, items []int) error
}

// OffsetService persists the shard offsets
type OffsetService interface {
	GetOffsets(ctx context.Context, items []int) (map[int]string, error)
	SetOffset(ctx context.Context, item int, value string) error
}

// StatisticsService counts the processed items
type StatisticsService interface {
	StartProcessCountJob(ctx context.Context) error
	StopProcessCountJob(ctx context.Context) error
	IncrementProcessSuccessCount(ctx context.Context, count int)
	IncrementProcessFailureCount(ctx context.Context, count int)
	RecordExecutionDuration(ctx context.Context, duration time.Duration)
	IncrementMisfireCount(ctx context.Context)
}

// MonitorService serves the monitor endpoint
type MonitorService interface {
	Listen(ctx context.Context) error
	Close(ctx context.Context) error
}

// ListenerManager runs the watch loops
type ListenerManager interface {
	StartAllListeners(ctx context.Context) error
	StopAllListeners()
}

// Services groups the collaborators of the Coordinator
type Services struct {
	Config           ConfigurationService
	Election         LeaderElectionService
	Server           ServerService
	Sharding         ShardingService
	ExecutionContext ExecutionContextService
	Execution        ExecutionService
	Failover         FailoverService
	Offset           OffsetService
	Statistics       StatisticsService
	Monitor          MonitorService
	Listeners        ListenerManager
	// Guarantee is required when distribute-once listeners are registered
	Guarantee *guarantee.Service
}

func (s Services) validate() error {
	switch {
	case s.Config == nil:
		return missing("configuration")
	case s.Election == nil:
		return missing("leader election")
	case s.Server == nil:
		return missing("server")
	case s.Sharding == nil:
		return missing("sharding")
	case s.ExecutionContext == nil:
		return missing("execution context")
	case s.Execution == nil:
		return missing("execution")
	case s.Failover == nil:
		return missing("failover")
	case s.Offset == nil:
		return missing("offset")
	case s.Statistics == nil:
		return missing("statistics")
	case s.Monitor == nil:
		return missing("monitor")
	case s.Listeners == nil:
		return missing("listener manager")
	}
	return nil
}
