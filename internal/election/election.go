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

// Package election elects the leader of a job. The leader is the server
// holding the ephemeral /{job}/leader node; it is released when the
// leader's session is lost, which triggers a new election.
package election

import (
	"context"
	"errors"
	"fmt"
	"time"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

const defaultPollInterval = 100 * time.Millisecond

// Servers exposes the availability of the servers of the job
type Servers interface {
	IsLocalServerAvailable(ctx context.Context) (bool, error)
	HasAvailableServers(ctx context.Context) (bool, error)
}

// Service runs the leader election of one job
type Service struct {
	store        store.Store
	path         jobpath.Path
	serverID     string
	servers      Servers
	logger       log.Logger
	pollInterval time.Duration
}

// New creates an instance of Service
func New(st store.Store, jobName, serverID string, servers Servers, logger log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Service{
		store:        st,
		path:         jobpath.New(jobName),
		serverID:     serverID,
		servers:      servers,
		logger:       logger,
		pollInterval: defaultPollInterval,
	}
}

// ElectLeader tries to claim the leadership. Losing the race is not an error:
// the server simply stays a follower.
func (s *Service) ElectLeader(ctx context.Context) error {
	err := s.store.Create(ctx, s.path.Leader(), []byte(s.serverID), store.Ephemeral)
	switch {
	case err == nil:
		s.logger.Infof("job=(%s) server=(%s) elected leader", s.path.JobName(), s.serverID)
		return nil
	case errors.Is(err, store.ErrNodeExists):
		return nil
	default:
		return fmt.Errorf("election: failed to elect leader: %w", err)
	}
}

// HasLeadership reports whether the local server holds the leadership
func (s *Service) HasLeadership(ctx context.Context) (bool, error) {
	leader, err := s.LeaderID(ctx)
	if err != nil {
		return false, err
	}
	return leader == s.serverID, nil
}

// HasLeader reports whether some server holds the leadership
func (s *Service) HasLeader(ctx context.Context) (bool, error) {
	leader, err := s.LeaderID(ctx)
	if err != nil {
		return false, err
	}
	return leader != "", nil
}

// LeaderID returns the identifier of the current leader, or "" when there is none
func (s *Service) LeaderID(ctx context.Context) (string, error) {
	node, err := s.store.Get(ctx, s.path.Leader())
	if err != nil {
		if errors.Is(err, store.ErrNodeNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("election: failed to read leader: %w", err)
	}
	return string(node.Value), nil
}

// IsLeaderUntilBlock waits for a leader to exist, taking part in the election
// while the local server is available, and then reports whether the local
// server is the leader. It gives up when no server is available or ctx is done.
func (s *Service) IsLeaderUntilBlock(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("election: %w: %w", gerrors.ErrLeaderNotFound, err)
		}

		leader, err := s.LeaderID(ctx)
		if err != nil {
			return false, err
		}
		if leader != "" {
			return leader == s.serverID, nil
		}

		available, err := s.servers.HasAvailableServers(ctx)
		if err != nil {
			return false, err
		}
		if !available {
			return false, nil
		}

		local, err := s.servers.IsLocalServerAvailable(ctx)
		if err != nil {
			return false, err
		}
		if local {
			if err := s.ElectLeader(ctx); err != nil {
				return false, err
			}
			continue
		}

		select {
		case <-ctx.Done():
		case <-time.After(s.pollInterval):
		}
	}
}

// RemoveLeader resigns the leadership when the local server holds it
func (s *Service) RemoveLeader(ctx context.Context) error {
	err := s.store.Commit(ctx,
		store.OpCheckValue(s.path.Leader(), []byte(s.serverID)),
		store.OpDelete(s.path.Leader()))
	if err == nil || errors.Is(err, store.ErrTxnConflict) {
		return nil
	}
	return fmt.Errorf("election: failed to resign: %w", err)
}
