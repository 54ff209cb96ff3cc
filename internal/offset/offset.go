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

// Package offset persists the per-shard progress markers written by handlers.
package offset

import (
	"context"
	"errors"
	"fmt"

	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

const defaultMaxAttempts = 10

// Service reads and writes shard offsets
type Service struct {
	store       store.Store
	path        jobpath.Path
	logger      log.Logger
	maxAttempts int
}

// New creates an instance of Service
func New(st store.Store, jobName string, logger log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Service{
		store:       st,
		path:        jobpath.New(jobName),
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
	}
}

// GetOffsets returns the offsets of the given shards. Shards without offset
// are absent from the result.
func (s *Service) GetOffsets(ctx context.Context, items []int) (map[int]string, error) {
	offsets := make(map[int]string, len(items))
	for _, item := range items {
		value, found, err := s.GetOffset(ctx, item)
		if err != nil {
			return nil, err
		}
		if found {
			offsets[item] = value
		}
	}
	return offsets, nil
}

// GetOffset returns the offset of a shard
func (s *Service) GetOffset(ctx context.Context, item int) (string, bool, error) {
	node, err := s.store.Get(ctx, s.path.Offset(item))
	if err != nil {
		if errors.Is(err, store.ErrNodeNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("offset: failed to read item %d: %w", item, err)
	}
	return string(node.Value), true, nil
}

// SetOffset writes the offset of a shard. The write is conditional on the
// version read just before; a concurrent writer causes a re-read and another
// attempt.
func (s *Service) SetOffset(ctx context.Context, item int, value string) error {
	path := s.path.Offset(item)
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		node, err := s.store.Get(ctx, path)
		switch {
		case errors.Is(err, store.ErrNodeNotFound):
			err = s.store.Create(ctx, path, []byte(value), store.Persistent)
			if err == nil || !errors.Is(err, store.ErrNodeExists) {
				return s.wrap(item, err)
			}
		case err != nil:
			return s.wrap(item, err)
		default:
			_, err = s.store.Update(ctx, path, []byte(value), node.Version)
			if err == nil || !(errors.Is(err, store.ErrVersionConflict) || errors.Is(err, store.ErrNodeNotFound)) {
				return s.wrap(item, err)
			}
		}
		s.logger.Debugf("job=(%s) item=(%d) offset changed concurrently, attempt=%d", s.path.JobName(), item, attempt)
	}
	return fmt.Errorf("offset: failed to write item %d after %d attempts: %w", item, s.maxAttempts, store.ErrVersionConflict)
}

// Remove deletes the offsets of the given shards
func (s *Service) Remove(ctx context.Context, items []int) error {
	for _, item := range items {
		if err := s.store.Delete(ctx, s.path.Offset(item)); err != nil {
			return s.wrap(item, err)
		}
	}
	return nil
}

func (s *Service) wrap(item int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("offset: failed to write item %d: %w", item, err)
}
