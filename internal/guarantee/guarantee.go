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

// Package guarantee coordinates the listeners that must run once per job
// execution across all the servers.
package guarantee

import (
	"context"
	"errors"
	"fmt"

	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

// Service tracks which shards started and completed in the current round
type Service struct {
	store    store.Store
	path     jobpath.Path
	serverID string
	logger   log.Logger
}

// New creates an instance of Service
func New(st store.Store, jobName, serverID string, logger log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Service{
		store:    st,
		path:     jobpath.New(jobName),
		serverID: serverID,
		logger:   logger,
	}
}

// RegisterStart records that the given shards started
func (s *Service) RegisterStart(ctx context.Context, items []int) error {
	return s.register(ctx, items, s.path.GuaranteeStartedItem)
}

// IsAllStarted reports whether every shard of the job started
func (s *Service) IsAllStarted(ctx context.Context, total int) (bool, error) {
	return s.isAll(ctx, s.path.GuaranteeStarted(), total)
}

// IsStartedCleared reports whether the started round has been cleared
func (s *Service) IsStartedCleared(ctx context.Context) (bool, error) {
	return s.isCleared(ctx, s.path.GuaranteeStarted())
}

// TryTriggerStarted elects the server running the started hook of the round
func (s *Service) TryTriggerStarted(ctx context.Context) (bool, error) {
	return s.trigger(ctx, s.path.GuaranteeStartedTrigger())
}

// ClearAllStartedInfo ends the started round
func (s *Service) ClearAllStartedInfo(ctx context.Context) error {
	return s.clear(ctx, s.path.GuaranteeStarted())
}

// RegisterComplete records that the given shards completed
func (s *Service) RegisterComplete(ctx context.Context, items []int) error {
	return s.register(ctx, items, s.path.GuaranteeCompletedItem)
}

// IsAllCompleted reports whether every shard of the job completed
func (s *Service) IsAllCompleted(ctx context.Context, total int) (bool, error) {
	return s.isAll(ctx, s.path.GuaranteeCompleted(), total)
}

// IsCompletedCleared reports whether the completed round has been cleared
func (s *Service) IsCompletedCleared(ctx context.Context) (bool, error) {
	return s.isCleared(ctx, s.path.GuaranteeCompleted())
}

// TryTriggerCompleted elects the server running the completed hook of the round
func (s *Service) TryTriggerCompleted(ctx context.Context) (bool, error) {
	return s.trigger(ctx, s.path.GuaranteeCompletedTrigger())
}

// ClearAllCompletedInfo ends the completed round
func (s *Service) ClearAllCompletedInfo(ctx context.Context) error {
	return s.clear(ctx, s.path.GuaranteeCompleted())
}

func (s *Service) register(ctx context.Context, items []int, path func(int) string) error {
	for _, item := range items {
		if _, err := s.store.Put(ctx, path(item), []byte(s.serverID), store.Persistent); err != nil {
			return fmt.Errorf("guarantee: failed to register item %d: %w", item, err)
		}
	}
	return nil
}

func (s *Service) isAll(ctx context.Context, path string, total int) (bool, error) {
	children, err := s.store.Children(ctx, path)
	if err != nil {
		return false, fmt.Errorf("guarantee: failed to list %s: %w", path, err)
	}

	count := 0
	for _, child := range children {
		if _, ok := jobpath.ParseItem(child); ok {
			count++
		}
	}
	return count == total, nil
}

// isCleared reports whether a round holds neither registered items nor a
// trigger. The round path itself is never written as a node.
func (s *Service) isCleared(ctx context.Context, path string) (bool, error) {
	children, err := s.store.Children(ctx, path)
	if err != nil {
		return false, fmt.Errorf("guarantee: failed to list %s: %w", path, err)
	}
	return len(children) == 0, nil
}

func (s *Service) trigger(ctx context.Context, path string) (bool, error) {
	err := s.store.Create(ctx, path, []byte(s.serverID), store.Persistent)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNodeExists):
		return false, nil
	default:
		return false, fmt.Errorf("guarantee: failed to create %s: %w", path, err)
	}
}

func (s *Service) clear(ctx context.Context, path string) error {
	if err := s.store.Delete(ctx, path); err != nil {
		return fmt.Errorf("guarantee: failed to clear %s: %w", path, err)
	}
	return nil
}
