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

// Package sharding assigns the shards of a job to its available servers.
// The leader recomputes the assignment when the resharding flag is set;
// followers wait until it is done.
package sharding

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

const defaultPollInterval = 100 * time.Millisecond

// ConfigLoader loads the persisted job configuration
type ConfigLoader interface {
	Load(ctx context.Context) (*job.Config, error)
}

// Leadership tells whether the local server leads the job
type Leadership interface {
	IsLeaderUntilBlock(ctx context.Context) (bool, error)
	HasLeadership(ctx context.Context) (bool, error)
}

// Servers exposes the available servers of the job
type Servers interface {
	AvailableServers(ctx context.Context) ([]string, error)
	IsAvailable(ctx context.Context, serverID string) (bool, error)
}

// RunningChecker tells whether shards are still running on other live servers
type RunningChecker interface {
	HasRunningItems(ctx context.Context, items []int) (bool, error)
}

// Service maintains the sharding assignment of one job
type Service struct {
	store        store.Store
	path         jobpath.Path
	serverID     string
	config       ConfigLoader
	leadership   Leadership
	servers      Servers
	running      RunningChecker
	logger       log.Logger
	pollInterval time.Duration
}

// New creates an instance of Service
func New(st store.Store, jobName, serverID string, config ConfigLoader, leadership Leadership, servers Servers, running RunningChecker, logger log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Service{
		store:        st,
		path:         jobpath.New(jobName),
		serverID:     serverID,
		config:       config,
		leadership:   leadership,
		servers:      servers,
		running:      running,
		logger:       logger,
		pollInterval: defaultPollInterval,
	}
}

// SetReshardingFlag requests a recompute of the assignment
func (s *Service) SetReshardingFlag(ctx context.Context) error {
	if _, err := s.store.Put(ctx, s.path.ReshardingNecessary(), nil, store.Persistent); err != nil {
		return fmt.Errorf("sharding: failed to set resharding flag: %w", err)
	}
	return nil
}

// IsReshardingNecessary reports whether the resharding flag is set
func (s *Service) IsReshardingNecessary(ctx context.Context) (bool, error) {
	return s.store.Exists(ctx, s.path.ReshardingNecessary())
}

// ShardingIfNecessary recomputes the assignment when the flag is set and the
// local server is the leader. Followers wait until the leader is done. The
// wait is bounded by ctx.
func (s *Service) ShardingIfNecessary(ctx context.Context) error {
	necessary, err := s.IsReshardingNecessary(ctx)
	if err != nil || !necessary {
		return err
	}

	servers, err := s.servers.AvailableServers(ctx)
	if err != nil {
		return err
	}
	if len(servers) == 0 {
		s.logger.Warnf("job=(%s) no available server to shard on", s.path.JobName())
		return nil
	}

	leader, err := s.leadership.IsLeaderUntilBlock(ctx)
	if err != nil {
		return err
	}
	if !leader {
		return s.waitUntilShardingCompleted(ctx)
	}
	return s.reshard(ctx)
}

// GetShardingItems returns the shards assigned to the given server. An
// unavailable server owns nothing.
func (s *Service) GetShardingItems(ctx context.Context, serverID string) ([]int, error) {
	available, err := s.servers.IsAvailable(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if !available {
		return []int{}, nil
	}

	assignment, err := s.Assignment(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]int, 0, len(assignment))
	for item, owner := range assignment {
		if owner == serverID {
			items = append(items, item)
		}
	}
	slices.Sort(items)
	return items, nil
}

// GetLocalHostShardingItems returns the shards assigned to the local server,
// recomputing the assignment first when the local server leads and the flag is set
func (s *Service) GetLocalHostShardingItems(ctx context.Context) ([]int, error) {
	leader, err := s.leadership.HasLeadership(ctx)
	if err != nil {
		return nil, err
	}

	if leader {
		necessary, err := s.IsReshardingNecessary(ctx)
		if err != nil {
			return nil, err
		}
		if necessary {
			if err := s.ShardingIfNecessary(ctx); err != nil {
				return nil, err
			}
		}
	}
	return s.GetShardingItems(ctx, s.serverID)
}

// GetLocalShardingItems returns the shards currently assigned to the local
// server without recomputing the assignment
func (s *Service) GetLocalShardingItems(ctx context.Context) ([]int, error) {
	return s.GetShardingItems(ctx, s.serverID)
}

// Assignment returns the owner of every assigned shard
func (s *Service) Assignment(ctx context.Context) (map[int]string, error) {
	children, err := s.store.Children(ctx, s.path.Sharding())
	if err != nil {
		return nil, fmt.Errorf("sharding: failed to list assignment: %w", err)
	}

	assignment := make(map[int]string, len(children))
	for _, child := range children {
		item, ok := jobpath.ParseItem(child)
		if !ok {
			continue
		}
		node, err := s.store.Get(ctx, s.path.ShardingItem(item))
		if err != nil {
			if errors.Is(err, store.ErrNodeNotFound) {
				continue
			}
			return nil, fmt.Errorf("sharding: failed to read item %d: %w", item, err)
		}
		assignment[item] = string(node.Value)
	}
	return assignment, nil
}

func (s *Service) reshard(ctx context.Context) error {
	config, err := s.config.Load(ctx)
	if err != nil {
		return err
	}

	strategy, err := NewStrategy(config.ShardingStrategy, config.JobName)
	if err != nil {
		return err
	}

	if err := s.waitUntilRunningItemsCompleted(ctx); err != nil {
		return err
	}

	// the servers may have changed while waiting
	servers, err := s.servers.AvailableServers(ctx)
	if err != nil {
		return err
	}
	if len(servers) == 0 {
		return nil
	}

	if _, err := s.store.Put(ctx, s.path.ReshardingProcessing(), []byte(s.serverID), store.Ephemeral); err != nil {
		return fmt.Errorf("sharding: failed to mark processing: %w", err)
	}

	total := config.ShardingTotalCount
	ops := []store.Op{store.OpCheckValue(s.path.Leader(), []byte(s.serverID))}
	for server, items := range strategy.Shard(servers, total) {
		for _, item := range items {
			ops = append(ops, store.OpPut(s.path.ShardingItem(item), []byte(server), store.Persistent))
		}
	}

	stale, err := s.staleItems(ctx, total)
	if err != nil {
		return err
	}
	for _, item := range stale {
		ops = append(ops, store.OpDelete(s.path.ShardingItem(item)))
	}

	if err := s.store.Commit(ctx, ops...); err != nil {
		if errors.Is(err, store.ErrTxnConflict) {
			s.logger.Warnf("job=(%s) server=(%s) lost leadership while resharding", s.path.JobName(), s.serverID)
			return nil
		}
		return fmt.Errorf("sharding: failed to write assignment: %w", err)
	}

	err = s.store.Commit(ctx,
		store.OpCheckValue(s.path.Leader(), []byte(s.serverID)),
		store.OpDelete(s.path.ReshardingNecessary()),
		store.OpDelete(s.path.ReshardingProcessing()))
	if err != nil {
		if errors.Is(err, store.ErrTxnConflict) {
			s.logger.Warnf("job=(%s) server=(%s) lost leadership before clearing the resharding flag", s.path.JobName(), s.serverID)
			return nil
		}
		return fmt.Errorf("sharding: failed to clear resharding flag: %w", err)
	}

	s.logger.Infof("job=(%s) resharded %d items over %d servers", s.path.JobName(), total, len(servers))
	return nil
}

func (s *Service) staleItems(ctx context.Context, total int) ([]int, error) {
	children, err := s.store.Children(ctx, s.path.Sharding())
	if err != nil {
		return nil, fmt.Errorf("sharding: failed to list assignment: %w", err)
	}

	var stale []int
	for _, child := range children {
		if item, ok := jobpath.ParseItem(child); ok && item >= total {
			stale = append(stale, item)
		}
	}
	return stale, nil
}

func (s *Service) waitUntilRunningItemsCompleted(ctx context.Context) error {
	for {
		running, err := s.running.HasRunningItems(ctx, nil)
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
		if err := s.sleep(ctx); err != nil {
			return err
		}
	}
}

func (s *Service) waitUntilShardingCompleted(ctx context.Context) error {
	for {
		necessary, err := s.IsReshardingNecessary(ctx)
		if err != nil {
			return err
		}
		processing, err := s.store.Exists(ctx, s.path.ReshardingProcessing())
		if err != nil {
			return err
		}
		if !necessary && !processing {
			return nil
		}
		if err := s.sleep(ctx); err != nil {
			return err
		}
	}
}

func (s *Service) sleep(ctx context.Context) error {
	timer := time.NewTimer(s.pollInterval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("job=(%s) %w: %w", s.path.JobName(), gerrors.ErrShardingTimeout, ctx.Err())
	case <-timer.C:
		return nil
	}
}
