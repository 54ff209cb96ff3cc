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

// Package failover moves the shards left running by a crashed server to a
// live one. The leader queues the orphans and every available server claims
// them, a single claim succeeding per task.
package failover

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

// Leadership tells whether the local server leads the job
type Leadership interface {
	HasLeadership(ctx context.Context) (bool, error)
}

// Servers exposes the liveness and availability of servers
type Servers interface {
	IsLive(ctx context.Context, serverID string) (bool, error)
	IsLocalServerAvailable(ctx context.Context) (bool, error)
}

// Executions exposes the running markers
type Executions interface {
	RunningOwners(ctx context.Context) (map[int]string, error)
}

// ShardingSource returns the shards assigned to a server
type ShardingSource interface {
	GetShardingItems(ctx context.Context, serverID string) ([]int, error)
}

// Service manages the failover queue and claims of one job
type Service struct {
	store      store.Store
	path       jobpath.Path
	serverID   string
	config     ConfigLoader
	leadership Leadership
	servers    Servers
	executions Executions
	sharding   ShardingSource
	logger     log.Logger
}

// New creates an instance of Service
func New(st store.Store, jobName, serverID string, config ConfigLoader, leadership Leadership, servers Servers, executions Executions, sharding ShardingSource, logger log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Service{
		store:      st,
		path:       jobpath.New(jobName),
		serverID:   serverID,
		config:     config,
		leadership: leadership,
		servers:    servers,
		executions: executions,
		sharding:   sharding,
		logger:     logger,
	}
}

// EnqueueOrphans queues a failover task for every shard whose running
// marker belongs to a server that is no longer live and that nobody claimed.
// Only the leader populates the queue.
func (s *Service) EnqueueOrphans(ctx context.Context) error {
	leader, err := s.leadership.HasLeadership(ctx)
	if err != nil || !leader {
		return err
	}

	owners, err := s.executions.RunningOwners(ctx)
	if err != nil {
		return err
	}

	for item, owner := range owners {
		live, err := s.servers.IsLive(ctx, owner)
		if err != nil {
			return err
		}
		if live {
			continue
		}

		claimed, err := s.store.Exists(ctx, s.path.FailoverClaim(item))
		if err != nil {
			return fmt.Errorf("failover: failed to read claim of item %d: %w", item, err)
		}
		if claimed {
			continue
		}

		err = s.store.Create(ctx, s.path.FailoverTask(item), []byte(owner), store.Persistent)
		switch {
		case err == nil:
			s.logger.Infof("job=(%s) item=(%d) queued for failover, crashed server=(%s)", s.path.JobName(), item, owner)
		case errors.Is(err, store.ErrNodeExists):
		default:
			return fmt.Errorf("failover: failed to queue item %d: %w", item, err)
		}
	}
	return nil
}

// ClaimFailoverItems claims the queued tasks for the local server and
// returns the claimed shards. A claim removes the task, marks the shard as
// claimed by the local server and takes over its running marker in one commit.
func (s *Service) ClaimFailoverItems(ctx context.Context) ([]int, error) {
	available, err := s.servers.IsLocalServerAvailable(ctx)
	if err != nil || !available {
		return nil, err
	}

	tasks, err := s.store.Children(ctx, s.path.FailoverQueue())
	if err != nil {
		return nil, fmt.Errorf("failover: failed to list queue: %w", err)
	}

	claimed := make([]int, 0, len(tasks))
	for _, task := range tasks {
		item, ok := jobpath.ParseItem(task)
		if !ok {
			continue
		}
		won, err := s.claim(ctx, item)
		if err != nil {
			return nil, err
		}
		if won {
			claimed = append(claimed, item)
		}
	}
	return claimed, nil
}

// FailoverIfNecessary queues the orphans when the local server leads, then
// claims what is queued and returns the shards claimed by this call. Nothing
// happens when failover is disabled.
func (s *Service) FailoverIfNecessary(ctx context.Context) ([]int, error) {
	config, err := s.config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !config.Failover {
		return nil, nil
	}

	if err := s.EnqueueOrphans(ctx); err != nil {
		return nil, err
	}
	return s.ClaimFailoverItems(ctx)
}

// GetLocalHostFailoverItems returns the shards claimed by the local server
func (s *Service) GetLocalHostFailoverItems(ctx context.Context) ([]int, error) {
	claims, err := s.claims(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]int, 0, len(claims))
	for item, owner := range claims {
		if owner == s.serverID {
			items = append(items, item)
		}
	}
	return job.SortedItems(items), nil
}

// GetLocalHostTakeOffItems returns the shards assigned to the local server
// that another server claimed through failover
func (s *Service) GetLocalHostTakeOffItems(ctx context.Context) ([]int, error) {
	local, err := s.sharding.GetShardingItems(ctx, s.serverID)
	if err != nil {
		return nil, err
	}
	if len(local) == 0 {
		return []int{}, nil
	}

	claims, err := s.claims(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]int, 0, len(local))
	for _, item := range local {
		if owner, ok := claims[item]; ok && owner != s.serverID {
			items = append(items, item)
		}
	}
	return items, nil
}

// UpdateFailoverComplete releases the claims the local server holds on the given shards
func (s *Service) UpdateFailoverComplete(ctx context.Context, items []int) error {
	for _, item := range items {
		err := s.store.Commit(ctx,
			store.OpCheckValue(s.path.FailoverClaim(item), []byte(s.serverID)),
			store.OpDelete(s.path.FailoverClaim(item)))
		if err != nil && !errors.Is(err, store.ErrTxnConflict) {
			return fmt.Errorf("failover: failed to release claim of item %d: %w", item, err)
		}
	}
	return nil
}

// RemoveFailoverInfo drops the queue and every claim
func (s *Service) RemoveFailoverInfo(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.path.FailoverQueue()); err != nil {
		return fmt.Errorf("failover: failed to remove queue: %w", err)
	}

	claims, err := s.claims(ctx)
	if err != nil {
		return err
	}
	for item := range claims {
		if err := s.store.Delete(ctx, s.path.FailoverClaim(item)); err != nil {
			return fmt.Errorf("failover: failed to remove claim of item %d: %w", item, err)
		}
	}
	return nil
}

func (s *Service) claim(ctx context.Context, item int) (bool, error) {
	task, err := s.store.Get(ctx, s.path.FailoverTask(item))
	if err != nil {
		if errors.Is(err, store.ErrNodeNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failover: failed to read task of item %d: %w", item, err)
	}

	err = s.store.Commit(ctx,
		store.OpCheckVersion(s.path.FailoverTask(item), task.Version),
		store.OpCheckValue(s.path.Running(item), task.Value),
		store.OpDelete(s.path.FailoverTask(item)),
		store.OpCreate(s.path.FailoverClaim(item), []byte(s.serverID), store.Ephemeral),
		store.OpPut(s.path.Running(item), []byte(s.serverID), store.Persistent))
	if err == nil {
		s.logger.Infof("job=(%s) item=(%d) claimed by server=(%s)", s.path.JobName(), item, s.serverID)
		return true, nil
	}
	if !errors.Is(err, store.ErrTxnConflict) {
		return false, fmt.Errorf("failover: failed to claim item %d: %w", item, err)
	}

	// either another server won the task, or the shard stopped being an
	// orphan in the meantime, in which case the task is dropped
	err = s.store.Commit(ctx,
		store.OpCheckVersion(s.path.FailoverTask(item), task.Version),
		store.OpDelete(s.path.FailoverTask(item)))
	switch {
	case err == nil:
		s.logger.Debugf("job=(%s) item=(%d) dropped stale failover task", s.path.JobName(), item)
	case errors.Is(err, store.ErrTxnConflict):
	default:
		return false, fmt.Errorf("failover: failed to drop task of item %d: %w", item, err)
	}
	return false, nil
}

func (s *Service) claims(ctx context.Context) (map[int]string, error) {
	children, err := s.store.Children(ctx, s.path.Execution())
	if err != nil {
		return nil, fmt.Errorf("failover: failed to list executions: %w", err)
	}

	claims := make(map[int]string)
	for _, child := range children {
		item, ok := jobpath.ParseItem(child)
		if !ok {
			continue
		}
		node, err := s.store.Get(ctx, s.path.FailoverClaim(item))
		if err != nil {
			if errors.Is(err, store.ErrNodeNotFound) {
				continue
			}
			return nil, fmt.Errorf("failover: failed to read claim of item %d: %w", item, err)
		}
		claims[item] = string(node.Value)
	}
	return claims, nil
}
