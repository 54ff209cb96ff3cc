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

package execution

import (
	"context"

	goset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
)

// ShardingSource returns the shards assigned to the local server
type ShardingSource interface {
	GetLocalHostShardingItems(ctx context.Context) ([]int, error)
}

// FailoverSource returns the shards taken over by failover
type FailoverSource interface {
	GetLocalHostFailoverItems(ctx context.Context) ([]int, error)
	GetLocalHostTakeOffItems(ctx context.Context) ([]int, error)
}

// OffsetSource returns the persisted offsets of shards
type OffsetSource interface {
	GetOffsets(ctx context.Context, items []int) (map[int]string, error)
}

// ContextService builds the sharding context of a tick
type ContextService struct {
	config    ConfigLoader
	sharding  ShardingSource
	failover  FailoverSource
	offsets   OffsetSource
	execution *Service
	logger    log.Logger
}

// NewContextService creates an instance of ContextService
func NewContextService(config ConfigLoader, sharding ShardingSource, failover FailoverSource, offsets OffsetSource, execution *Service, logger log.Logger) *ContextService {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &ContextService{
		config:    config,
		sharding:  sharding,
		failover:  failover,
		offsets:   offsets,
		execution: execution,
		logger:    logger,
	}
}

// GetShardingContext returns what the local server executes now. Failover
// items claimed by the local server take precedence; otherwise the local
// sharding items minus the ones other servers took over and the ones still
// running on another live server. Owning nothing yields an empty context.
func (s *ContextService) GetShardingContext(ctx context.Context) (*job.ShardingContext, error) {
	config, err := s.config.Load(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.items(ctx, config)
	if err != nil {
		return nil, err
	}

	shardingContext := &job.ShardingContext{
		JobName:            config.JobName,
		TaskID:             uuid.NewString(),
		ShardingTotalCount: config.ShardingTotalCount,
		JobParameter:       config.JobParameter,
		Items:              make([]job.ShardingItem, 0, len(items)),
	}

	if len(items) == 0 {
		return shardingContext, nil
	}

	parameters, err := config.ShardingParameters()
	if err != nil {
		return nil, err
	}

	offsets, err := s.offsets.GetOffsets(ctx, items)
	if err != nil {
		return nil, err
	}

	misfired, err := s.execution.GetMisfiredItems(ctx, items)
	if err != nil {
		return nil, err
	}
	misfiredSet := goset.NewThreadUnsafeSet(misfired...)

	for _, item := range items {
		shardingContext.Items = append(shardingContext.Items, job.ShardingItem{
			Item:      item,
			Parameter: parameters[item],
			Offset:    offsets[item],
			Misfire:   misfiredSet.Contains(item),
		})
	}
	return shardingContext, nil
}

func (s *ContextService) items(ctx context.Context, config *job.Config) ([]int, error) {
	if config.Failover {
		claimed, err := s.failover.GetLocalHostFailoverItems(ctx)
		if err != nil {
			return nil, err
		}
		if len(claimed) > 0 {
			return job.SortedItems(claimed), nil
		}
	}

	local, err := s.sharding.GetLocalHostShardingItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(local) == 0 {
		return []int{}, nil
	}

	excluded := goset.NewThreadUnsafeSet[int]()
	if config.Failover {
		takenOff, err := s.failover.GetLocalHostTakeOffItems(ctx)
		if err != nil {
			return nil, err
		}
		excluded.Append(takenOff...)
	}

	if config.MonitorExecution {
		owners, err := s.execution.RunningOwners(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range local {
			owner, ok := owners[item]
			if !ok || owner == s.execution.serverID {
				continue
			}
			live, err := s.execution.liveness.IsLive(ctx, owner)
			if err != nil {
				return nil, err
			}
			if live {
				excluded.Add(item)
			}
		}
	}

	items := make([]int, 0, len(local))
	for _, item := range job.SortedItems(local) {
		if !excluded.Contains(item) {
			items = append(items, item)
		}
	}
	return items, nil
}
