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

// Package config persists and loads the job configuration.
package config

import (
	"context"
	"errors"
	"fmt"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

// Service reads and writes /{job}/config
type Service struct {
	store  store.Store
	path   jobpath.Path
	logger log.Logger
}

// New creates an instance of Service
func New(st store.Store, jobName string, logger log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Service{
		store:  st,
		path:   jobpath.New(jobName),
		logger: logger,
	}
}

// Persist writes the configuration. The first writer wins: an existing
// configuration is only replaced when Overwrite is set. A persisted
// configuration bound to another handler is a conflict; any other drift is
// logged and the persisted configuration prevails.
func (s *Service) Persist(ctx context.Context, config *job.Config) error {
	config.Sanitize()
	if err := config.Validate(); err != nil {
		return err
	}

	if config.JobName != s.path.JobName() {
		return gerrors.NewErrInvalidConfig(config.JobName,
			fmt.Errorf("job name does not match %s", s.path.JobName()))
	}

	data, err := config.Marshal()
	if err != nil {
		return fmt.Errorf("config: failed to encode configuration: %w", err)
	}

	if config.Overwrite {
		if _, err := s.store.Put(ctx, s.path.Config(), data, store.Persistent); err != nil {
			return fmt.Errorf("config: failed to overwrite configuration: %w", err)
		}
		return nil
	}

	err = s.store.Create(ctx, s.path.Config(), data, store.Persistent)
	if err == nil {
		return nil
	}

	if !errors.Is(err, store.ErrNodeExists) {
		return fmt.Errorf("config: failed to persist configuration: %w", err)
	}

	persisted, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if persisted.HandlerType != config.HandlerType {
		return gerrors.NewErrJobConflict(config.JobName, persisted.HandlerType, config.HandlerType)
	}

	if !persisted.Equal(config) {
		s.logger.Warnf("job=(%s) local configuration differs from the persisted one, the persisted configuration is used", config.JobName)
	}
	return nil
}

// Load reads the persisted configuration
func (s *Service) Load(ctx context.Context) (*job.Config, error) {
	node, err := s.store.Get(ctx, s.path.Config())
	if err != nil {
		if errors.Is(err, store.ErrNodeNotFound) {
			return nil, gerrors.NewErrJobNotFound(s.path.JobName())
		}
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return job.UnmarshalConfig(node.Value)
}

// GetCron returns the persisted cron expression
func (s *Service) GetCron(ctx context.Context) (string, error) {
	config, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	return config.Cron, nil
}

// IsMisfire returns the persisted misfire policy
func (s *Service) IsMisfire(ctx context.Context) (bool, error) {
	config, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return config.Misfire, nil
}

// Remove deletes the persisted configuration
func (s *Service) Remove(ctx context.Context) error {
	return s.store.Delete(ctx, s.path.Config())
}
