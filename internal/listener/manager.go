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

// Package listener reacts to the changes other servers make to the job
// namespace: leader loss, membership changes, configuration updates and the
// renewal of the local session.
package listener

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

const defaultRewatchDelay = 200 * time.Millisecond

// ConfigLoader loads the persisted job configuration
type ConfigLoader interface {
	Load(ctx context.Context) (*job.Config, error)
}

// Servers exposes the server registry
type Servers interface {
	IsLocalServerAvailable(ctx context.Context) (bool, error)
	ParseServerEvent(path string) (serverID, flag string, ok bool)
}

// Election runs the leader election
type Election interface {
	ElectLeader(ctx context.Context) error
}

// Sharding requests resharding
type Sharding interface {
	SetReshardingFlag(ctx context.Context) error
}

// Failover manages the failover queue
type Failover interface {
	EnqueueOrphans(ctx context.Context) error
	RemoveFailoverInfo(ctx context.Context) error
}

// Services groups what the watch loops act on
type Services struct {
	Config   ConfigLoader
	Servers  Servers
	Election Election
	Sharding Sharding
	Failover Failover
}

// ReconnectHandler is called when a fresh session replaced a lost one
type ReconnectHandler func(ctx context.Context) error

// Option configures the Manager
type Option func(*Manager)

// WithReconnectHandler sets the handler called after a session renewal
func WithReconnectHandler(handler ReconnectHandler) Option {
	return func(m *Manager) {
		m.onReconnect = handler
	}
}

// Manager runs the watch loops of one job
type Manager struct {
	store       store.Store
	path        jobpath.Path
	services    Services
	onReconnect ReconnectHandler
	logger      log.Logger

	mu           sync.Mutex
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	total        *atomic.Int64
	rewatchDelay time.Duration
}

// New creates an instance of Manager
func New(st store.Store, jobName string, services Services, logger log.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = log.DefaultLogger
	}
	m := &Manager{
		store:        st,
		path:         jobpath.New(jobName),
		services:     services,
		logger:       logger,
		total:        atomic.NewInt64(0),
		rewatchDelay: defaultRewatchDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StartAllListeners starts the watch loops. They run until StopAllListeners
// is called; ctx only provides the values of the loops' context.
func (m *Manager) StartAllListeners(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return nil
	}

	if config, err := m.services.Config.Load(ctx); err == nil {
		m.total.Store(int64(config.ShardingTotalCount))
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	watches := []watch{
		{path: m.path.Leader(), handle: m.onLeaderEvent},
		{path: m.path.Servers(), recursive: true, handle: m.onServerEvent},
		{path: m.path.Config(), handle: m.onConfigEvent},
	}

	// watches are opened before returning so that no change is missed
	for _, w := range watches {
		events, err := m.store.Watch(ctx, w.path, w.recursive)
		if err != nil {
			cancel()
			m.wg.Wait()
			return fmt.Errorf("listener: failed to watch %s: %w", w.path, err)
		}
		m.wg.Go(func() { m.watchLoop(ctx, w, events) })
	}

	if notifier, ok := m.store.(store.SessionNotifier); ok && m.onReconnect != nil {
		m.wg.Go(func() { m.reconnectLoop(ctx, notifier) })
	}
	m.cancel = cancel

	m.logger.Debugf("job=(%s) listeners started", m.path.JobName())
	return nil
}

// StopAllListeners stops the watch loops and waits for them to return
func (m *Manager) StopAllListeners() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	m.wg.Wait()
	m.logger.Debugf("job=(%s) listeners stopped", m.path.JobName())
}

type watch struct {
	path      string
	recursive bool
	handle    func(context.Context, store.Event)
}

func (m *Manager) watchLoop(ctx context.Context, w watch, events <-chan store.Event) {
	for {
		for event := range events {
			w.handle(ctx, event)
		}

		// the channel closes when ctx is done, the store is closed or the
		// connection dropped
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(m.rewatchDelay):
			}

			var err error
			events, err = m.store.Watch(ctx, w.path, w.recursive)
			if err == nil {
				break
			}
			if errors.Is(err, store.ErrStoreClosed) || ctx.Err() != nil {
				return
			}
			m.logger.Warnf("job=(%s) failed to watch %s: %v", m.path.JobName(), w.path, err)
		}
	}
}

func (m *Manager) onLeaderEvent(ctx context.Context, event store.Event) {
	if event.Type != store.EventDelete || event.Path != m.path.Leader() {
		return
	}

	available, err := m.services.Servers.IsLocalServerAvailable(ctx)
	if err != nil {
		m.logger.Errorf("job=(%s) failed to check local server availability: %v", m.path.JobName(), err)
		return
	}
	if !available {
		return
	}
	if err := m.services.Election.ElectLeader(ctx); err != nil {
		m.logger.Errorf("job=(%s) failed to elect leader: %v", m.path.JobName(), err)
	}
}

func (m *Manager) onServerEvent(ctx context.Context, event store.Event) {
	serverID, flag, ok := m.services.Servers.ParseServerEvent(event.Path)
	if !ok {
		return
	}

	if err := m.services.Sharding.SetReshardingFlag(ctx); err != nil {
		m.logger.Errorf("job=(%s) failed to set resharding flag: %v", m.path.JobName(), err)
	}

	if flag != "" || event.Type != store.EventDelete {
		return
	}

	config, err := m.services.Config.Load(ctx)
	if err != nil {
		m.logger.Errorf("job=(%s) failed to load configuration: %v", m.path.JobName(), err)
		return
	}
	if !config.Failover {
		return
	}

	m.logger.Infof("job=(%s) server=(%s) went away", m.path.JobName(), serverID)
	if err := m.services.Failover.EnqueueOrphans(ctx); err != nil {
		m.logger.Errorf("job=(%s) failed to queue orphaned items: %v", m.path.JobName(), err)
	}
}

func (m *Manager) onConfigEvent(ctx context.Context, event store.Event) {
	if event.Type != store.EventPut || event.Path != m.path.Config() {
		return
	}

	config, err := job.UnmarshalConfig(event.Value)
	if err != nil {
		m.logger.Errorf("job=(%s) failed to decode configuration: %v", m.path.JobName(), err)
		return
	}

	total := int64(config.ShardingTotalCount)
	if previous := m.total.Swap(total); previous != total {
		if err := m.services.Sharding.SetReshardingFlag(ctx); err != nil {
			m.logger.Errorf("job=(%s) failed to set resharding flag: %v", m.path.JobName(), err)
		}
	}

	if !config.Failover {
		if err := m.services.Failover.RemoveFailoverInfo(ctx); err != nil {
			m.logger.Errorf("job=(%s) failed to remove failover info: %v", m.path.JobName(), err)
		}
	}
}

func (m *Manager) reconnectLoop(ctx context.Context, notifier store.SessionNotifier) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-notifier.Reconnected():
			m.logger.Infof("job=(%s) session renewed, resuming", m.path.JobName())
			if err := m.onReconnect(ctx); err != nil {
				m.logger.Errorf("job=(%s) failed to resume after reconnection: %v", m.path.JobName(), err)
			}
		}
	}
}
