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

// Package execution records which shards are running where and builds the
// sharding context of every tick.
package execution

import (
	"context"
	"errors"
	"fmt"

	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

// ConfigLoader loads the persisted job configuration
type ConfigLoader interface {
	Load(ctx context.Context) (*job.Config, error)
}

// Liveness tells whether a server still holds its registration
type Liveness interface {
	IsLive(ctx context.Context, serverID string) (bool, error)
}

// Service maintains the running, completed and misfire markers of the shards.
// Running markers are persistent: a crash leaves them behind so that they can
// be told apart from live executions through the liveness of their owner.
type Service struct {
	store    store.Store
	path     jobpath.Path
	serverID string
	config   ConfigLoader
	liveness Liveness
	logger   log.Logger
}

// New creates an instance of Service
func New(st store.Store, jobName, serverID string, config ConfigLoader, liveness Liveness, logger log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Service{
		store:    st,
		path:     jobpath.New(jobName),
		serverID: serverID,
		config:   config,
		liveness: liveness,
		logger:   logger,
	}
}

// RegisterJobBegin marks every shard of the context as running on the local server
func (s *Service) RegisterJobBegin(ctx context.Context, shardingContext *job.ShardingContext) error {
	if shardingContext.IsEmpty() {
		return nil
	}

	monitored, err := s.isMonitorExecution(ctx)
	if err != nil || !monitored {
		return err
	}

	ops := make([]store.Op, 0, 2*len(shardingContext.Items))
	for _, item := range shardingContext.ItemIndexes() {
		ops = append(ops,
			store.OpPut(s.path.Running(item), []byte(s.serverID), store.Persistent),
			store.OpDelete(s.path.Completed(item)))
	}

	if err := s.store.Commit(ctx, ops...); err != nil {
		return fmt.Errorf("execution: failed to register begin: %w", err)
	}
	return nil
}

// RegisterJobCompleted clears the running markers still owned by the local
// server and records the completion
func (s *Service) RegisterJobCompleted(ctx context.Context, shardingContext *job.ShardingContext) error {
	if shardingContext.IsEmpty() {
		return nil
	}

	monitored, err := s.isMonitorExecution(ctx)
	if err != nil || !monitored {
		return err
	}

	for _, item := range shardingContext.ItemIndexes() {
		err := s.store.Commit(ctx,
			store.OpCheckValue(s.path.Running(item), []byte(s.serverID)),
			store.OpDelete(s.path.Running(item)),
			store.OpPut(s.path.Completed(item), []byte(s.serverID), store.Persistent))
		switch {
		case err == nil:
		case errors.Is(err, store.ErrTxnConflict):
			s.logger.Warnf("job=(%s) item=(%d) running marker is no longer owned by %s", s.path.JobName(), item, s.serverID)
		default:
			return fmt.Errorf("execution: failed to register completion of item %d: %w", item, err)
		}
	}
	return nil
}

// ClearRunningInfo removes the running markers of the given shards whoever owns them.
// An empty set is accepted and does nothing.
func (s *Service) ClearRunningInfo(ctx context.Context, items []int) error {
	for _, item := range items {
		if err := s.store.Delete(ctx, s.path.Running(item)); err != nil {
			return fmt.Errorf("execution: failed to clear running info of item %d: %w", item, err)
		}
	}
	return nil
}

// RunningOwners returns the owner of every running marker
func (s *Service) RunningOwners(ctx context.Context) (map[int]string, error) {
	children, err := s.store.Children(ctx, s.path.Execution())
	if err != nil {
		return nil, fmt.Errorf("execution: failed to list executions: %w", err)
	}

	owners := make(map[int]string, len(children))
	for _, child := range children {
		item, ok := jobpath.ParseItem(child)
		if !ok {
			continue
		}
		owner, found, err := s.value(ctx, s.path.Running(item))
		if err != nil {
			return nil, err
		}
		if found {
			owners[item] = owner
		}
	}
	return owners, nil
}

// HasRunningItems reports whether one of the given shards, or any shard when
// items is nil, is running on another live server. Markers owned by dead
// servers are orphans left to failover and are ignored.
func (s *Service) HasRunningItems(ctx context.Context, items []int) (bool, error) {
	monitored, err := s.isMonitorExecution(ctx)
	if err != nil || !monitored {
		return false, err
	}

	owners, err := s.RunningOwners(ctx)
	if err != nil {
		return false, err
	}

	var wanted map[int]struct{}
	if items != nil {
		wanted = make(map[int]struct{}, len(items))
		for _, item := range items {
			wanted[item] = struct{}{}
		}
	}

	for item, owner := range owners {
		if wanted != nil {
			if _, ok := wanted[item]; !ok {
				continue
			}
		}
		if owner == s.serverID {
			continue
		}
		live, err := s.liveness.IsLive(ctx, owner)
		if err != nil {
			return false, err
		}
		if live {
			return true, nil
		}
	}
	return false, nil
}

// MisfireIfNecessary flags the shards as misfired when they are still running
// elsewhere and reports whether it did
func (s *Service) MisfireIfNecessary(ctx context.Context, items []int) (bool, error) {
	if len(items) == 0 {
		return false, nil
	}

	running, err := s.HasRunningItems(ctx, items)
	if err != nil || !running {
		return false, err
	}
	return true, s.SetMisfire(ctx, items)
}

// SetMisfire flags the given shards as misfired
func (s *Service) SetMisfire(ctx context.Context, items []int) error {
	for _, item := range items {
		if _, err := s.store.Put(ctx, s.path.Misfire(item), nil, store.Persistent); err != nil {
			return fmt.Errorf("execution: failed to set misfire of item %d: %w", item, err)
		}
	}
	return nil
}

// GetMisfiredItems returns the given shards that are flagged as misfired
func (s *Service) GetMisfiredItems(ctx context.Context, items []int) ([]int, error) {
	misfired := make([]int, 0, len(items))
	for _, item := range items {
		ok, err := s.store.Exists(ctx, s.path.Misfire(item))
		if err != nil {
			return nil, fmt.Errorf("execution: failed to read misfire of item %d: %w", item, err)
		}
		if ok {
			misfired = append(misfired, item)
		}
	}
	return misfired, nil
}

// ClearMisfire removes the misfire flags of the given shards
func (s *Service) ClearMisfire(ctx context.Context, items []int) error {
	for _, item := range items {
		if err := s.store.Delete(ctx, s.path.Misfire(item)); err != nil {
			return fmt.Errorf("execution: failed to clear misfire of item %d: %w", item, err)
		}
	}
	return nil
}

// IsCompleted reports whether the shard has a completion record
func (s *Service) IsCompleted(ctx context.Context, item int) (bool, error) {
	return s.store.Exists(ctx, s.path.Completed(item))
}

func (s *Service) isMonitorExecution(ctx context.Context) (bool, error) {
	config, err := s.config.Load(ctx)
	if err != nil {
		return false, err
	}
	return config.MonitorExecution, nil
}

func (s *Service) value(ctx context.Context, path string) (string, bool, error) {
	node, err := s.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrNodeNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("execution: failed to read %s: %w", path, err)
	}
	return string(node.Value), true, nil
}
