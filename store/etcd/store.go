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

// Package etcd implements store.Store on top of etcd v3.
//
// A node is an etcd key below the configured namespace. The ModRevision of a
// key is used as the node version for optimistic concurrency control (OCC).
// Ephemeral nodes are attached to the lease of a concurrency.Session that is
// kept alive in the background; when the session is lost its keys vanish and a
// fresh session is created, which is reported through Reconnected.
//
// Unless otherwise stated by the called method, any provided context is wrapped
// with the configured per-operation timeout.
package etcd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/flowchartsman/retry"
	"go.etcd.io/etcd/api/v3/v3rpc/rpctypes"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/concurrency"
	"go.etcd.io/etcd/client/v3/namespace"
	"go.uber.org/atomic"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

// Store is an etcd backed store.Store
type Store struct {
	config  *Config
	client  *clientv3.Client
	kv      clientv3.KV
	watcher clientv3.Watcher
	logger  log.Logger

	mu      sync.RWMutex
	session *concurrency.Session

	reconnected chan struct{}
	stop        chan struct{}
	done        chan struct{}
	closed      *atomic.Bool
	closeOnce   sync.Once
	closeErr    error
	sessionFunc func(*clientv3.Client, ...concurrency.SessionOption) (*concurrency.Session, error)
}

var (
	_ store.Store           = (*Store)(nil)
	_ store.SessionNotifier = (*Store)(nil)
)

// New connects to etcd, opens the session and returns the Store
func New(config *Config) (*Store, error) {
	if config == nil {
		return nil, errors.New("store/etcd: config is nil")
	}

	config.Sanitize()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("store/etcd: invalid config: %w", err)
	}

	client, err := clientv3.New(clientv3.Config{
		Endpoints:   config.Endpoints,
		DialTimeout: config.DialTimeout,
		TLS:         config.TLS,
		Username:    config.Username,
		Password:    config.Password,
		Context:     config.Context,
	})
	if err != nil {
		return nil, fmt.Errorf("store/etcd: failed to create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(config.Context, config.DialTimeout)
	defer cancel()

	if _, err = client.Status(ctx, config.Endpoints[0]); err != nil {
		if cerr := client.Close(); cerr != nil {
			return nil, errors.Join(err, fmt.Errorf("store/etcd: failed to close client: %w", cerr))
		}
		return nil, fmt.Errorf("store/etcd: failed to connect to etcd: %w", err)
	}

	prefix := normalizeNamespace(config.Namespace)
	s := &Store{
		config:      config,
		client:      client,
		kv:          namespace.NewKV(client.KV, prefix),
		watcher:     namespace.NewWatcher(client.Watcher, prefix),
		logger:      config.Logger,
		reconnected: make(chan struct{}, 1),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		closed:      atomic.NewBool(false),
		sessionFunc: concurrency.NewSession,
	}

	session, err := s.newSession()
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	s.session = session
	go s.keepSession()
	return s, nil
}

// Create writes a new node and fails with store.ErrNodeExists when present
func (s *Store) Create(ctx context.Context, path string, value []byte, mode store.Mode) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	put, err := s.opPut(path, value, mode)
	if err != nil {
		return err
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.kv.Txn(opCtx).
		If(clientv3.Compare(clientv3.CreateRevision(path), "=", 0)).
		Then(put).
		Commit()
	if err != nil {
		return fmt.Errorf("store/etcd: failed to create %s: %w", path, err)
	}

	if !resp.Succeeded {
		return store.ErrNodeExists
	}
	return nil
}

// Put creates or overwrites the node
func (s *Store) Put(ctx context.Context, path string, value []byte, mode store.Mode) (int64, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}

	var revision int64
	err := s.retry(ctx, func(opCtx context.Context) error {
		put, err := s.opPut(path, value, mode)
		if err != nil {
			return err
		}
		resp, err := s.kv.Do(opCtx, put)
		if err != nil {
			return err
		}
		revision = resp.Put().Header.Revision
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("store/etcd: failed to put %s: %w", path, err)
	}
	return revision, nil
}

// Update overwrites the node when its version matches. The lease of the node is kept.
func (s *Store) Update(ctx context.Context, path string, value []byte, version int64) (int64, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.kv.Txn(opCtx).
		If(clientv3.Compare(clientv3.ModRevision(path), "=", version)).
		Then(clientv3.OpPut(path, string(value), clientv3.WithIgnoreLease())).
		Else(clientv3.OpGet(path, clientv3.WithKeysOnly())).
		Commit()
	if err != nil {
		return 0, fmt.Errorf("store/etcd: failed to update %s: %w", path, err)
	}

	if !resp.Succeeded {
		if len(resp.Responses) > 0 && len(resp.Responses[0].GetResponseRange().GetKvs()) == 0 {
			return 0, store.ErrNodeNotFound
		}
		return 0, store.ErrVersionConflict
	}
	return resp.Header.Revision, nil
}

// Get returns the node
func (s *Store) Get(ctx context.Context, path string) (*store.Node, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var resp *clientv3.GetResponse
	err := s.retry(ctx, func(opCtx context.Context) (err error) {
		resp, err = s.kv.Get(opCtx, path)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("store/etcd: failed to get %s: %w", path, err)
	}

	if len(resp.Kvs) == 0 {
		return nil, store.ErrNodeNotFound
	}

	kv := resp.Kvs[0]
	return &store.Node{
		Path:      path,
		Value:     kv.Value,
		Version:   kv.ModRevision,
		Ephemeral: kv.Lease != 0,
	}, nil
}

// Exists checks whether the node is present
func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	if err := s.checkOpen(); err != nil {
		return false, err
	}

	var resp *clientv3.GetResponse
	err := s.retry(ctx, func(opCtx context.Context) (err error) {
		resp, err = s.kv.Get(opCtx, path, clientv3.WithCountOnly())
		return err
	})
	if err != nil {
		return false, fmt.Errorf("store/etcd: failed to check %s: %w", path, err)
	}
	return resp.Count > 0, nil
}

// Children returns the sorted names of the direct children of the node
func (s *Store) Children(ctx context.Context, path string) ([]string, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	prefix := childPrefix(path)
	var resp *clientv3.GetResponse
	err := s.retry(ctx, func(opCtx context.Context) (err error) {
		resp, err = s.kv.Get(opCtx, prefix, clientv3.WithPrefix(), clientv3.WithKeysOnly())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("store/etcd: failed to list %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(resp.Kvs))
	names := make([]string, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		name, _, _ := strings.Cut(strings.TrimPrefix(string(kv.Key), prefix), "/")
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the node and its subtree
func (s *Store) Delete(ctx context.Context, path string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	err := s.retry(ctx, func(opCtx context.Context) error {
		_, err := s.kv.Txn(opCtx).
			Then(deleteOps(path)...).
			Commit()
		return err
	})
	if err != nil {
		return fmt.Errorf("store/etcd: failed to delete %s: %w", path, err)
	}
	return nil
}

// Commit applies the operations in a single etcd transaction
func (s *Store) Commit(ctx context.Context, ops ...store.Op) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	cmps := make([]clientv3.Cmp, 0, len(ops))
	thenOps := make([]clientv3.Op, 0, len(ops))
	for _, op := range ops {
		switch op.Type {
		case store.OpTypeCheckVersion:
			cmps = append(cmps, clientv3.Compare(clientv3.ModRevision(op.Path), "=", op.Version))
		case store.OpTypeCheckValue:
			cmps = append(cmps, clientv3.Compare(clientv3.Value(op.Path), "=", string(op.Value)))
		case store.OpTypeCheckExists:
			cmps = append(cmps, clientv3.Compare(clientv3.CreateRevision(op.Path), ">", 0))
		case store.OpTypeCheckAbsent:
			cmps = append(cmps, clientv3.Compare(clientv3.CreateRevision(op.Path), "=", 0))
		case store.OpTypeCreate:
			cmps = append(cmps, clientv3.Compare(clientv3.CreateRevision(op.Path), "=", 0))
			put, err := s.opPut(op.Path, op.Value, op.Mode)
			if err != nil {
				return err
			}
			thenOps = append(thenOps, put)
		case store.OpTypePut:
			put, err := s.opPut(op.Path, op.Value, op.Mode)
			if err != nil {
				return err
			}
			thenOps = append(thenOps, put)
		case store.OpTypeDelete:
			thenOps = append(thenOps, deleteOps(op.Path)...)
		default:
			return fmt.Errorf("store/etcd: unsupported operation %d", op.Type)
		}
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.kv.Txn(opCtx).If(cmps...).Then(thenOps...).Commit()
	if err != nil {
		return fmt.Errorf("store/etcd: failed to commit transaction: %w", err)
	}

	if !resp.Succeeded {
		return store.ErrTxnConflict
	}
	return nil
}

// Watch streams changes of the node and, when recursive, of its subtree.
//
// The returned channel is closed when the watch terminates or when ctx is done.
// Consumers are expected to re-read the state and watch again when the channel
// closes while ctx is still alive.
func (s *Store) Watch(ctx context.Context, path string, recursive bool) (<-chan store.Event, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(clientv3.WithRequireLeader(ctx))
	options := []clientv3.OpOption{clientv3.WithPrevKV()}
	if recursive {
		options = append(options, clientv3.WithPrefix())
	}

	prefix := childPrefix(path)
	events := make(chan store.Event)
	watchChan := s.watcher.Watch(watchCtx, path, options...)

	go func() {
		defer close(events)
		defer cancel()
		for {
			select {
			case <-s.stop:
				return
			case resp, ok := <-watchChan:
				if !ok {
					return
				}
				if err := resp.Err(); err != nil {
					s.logger.Warnf("store/etcd: watch on %s terminated: %v", path, err)
					return
				}
				for _, ev := range resp.Events {
					key := string(ev.Kv.Key)
					if key != path && !strings.HasPrefix(key, prefix) {
						continue
					}
					event := toEvent(ev)
					select {
					case events <- event:
					case <-watchCtx.Done():
						return
					case <-s.stop:
						return
					}
				}
			}
		}
	}()

	return events, nil
}

// Reconnected signals that a fresh session replaced a lost one
func (s *Store) Reconnected() <-chan struct{} {
	return s.reconnected
}

// Close revokes the session lease, which removes every ephemeral node, and
// releases the etcd client. Close is idempotent.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.stop)
		<-s.done

		s.mu.Lock()
		session := s.session
		s.session = nil
		s.mu.Unlock()

		if session != nil {
			if err := session.Close(); err != nil {
				s.logger.Warnf("store/etcd: failed to revoke session: %v", err)
			}
		}
		s.closeErr = s.client.Close()
	})
	return s.closeErr
}

// keepSession replaces the session each time its lease is lost
func (s *Store) keepSession() {
	defer close(s.done)
	for {
		s.mu.RLock()
		session := s.session
		s.mu.RUnlock()

		select {
		case <-s.stop:
			return
		case <-session.Done():
		}

		s.logger.Warn("store/etcd: session lost, creating a new one")
		for {
			next, err := s.newSession()
			if err == nil {
				s.mu.Lock()
				s.session = next
				s.mu.Unlock()
				break
			}

			s.logger.Errorf("store/etcd: failed to create session: %v", err)
			select {
			case <-s.stop:
				return
			case <-time.After(s.config.Timeout):
			}
		}

		select {
		case s.reconnected <- struct{}{}:
		default:
		}
	}
}

func (s *Store) newSession() (*concurrency.Session, error) {
	ctx, cancel := context.WithTimeout(s.config.Context, s.config.DialTimeout)
	defer cancel()

	var session *concurrency.Session
	err := s.retry(ctx, func(context.Context) (err error) {
		// the session context must outlive the creation call
		session, err = s.sessionFunc(s.client,
			concurrency.WithTTL(s.ttlSeconds()),
			concurrency.WithContext(s.config.Context))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("store/etcd: failed to create session: %w", err)
	}
	return session, nil
}

func (s *Store) opPut(path string, value []byte, mode store.Mode) (clientv3.Op, error) {
	if mode != store.Ephemeral {
		return clientv3.OpPut(path, string(value)), nil
	}

	s.mu.RLock()
	session := s.session
	s.mu.RUnlock()
	if session == nil {
		return clientv3.Op{}, store.ErrStoreClosed
	}
	return clientv3.OpPut(path, string(value), clientv3.WithLease(session.Lease())), nil
}

// retry runs an idempotent operation and retries it on transient failures.
// Every attempt is bounded by the configured timeout.
func (s *Store) retry(ctx context.Context, fn func(context.Context) error) error {
	if ctx == nil {
		ctx = s.config.Context
	}

	var terminal error
	retrier := retry.NewRetrier(s.config.MaxRetries, 50*time.Millisecond, s.config.Timeout)
	err := retrier.RunContext(ctx, func(ctx context.Context) error {
		opCtx, cancel := s.withTimeout(ctx)
		defer cancel()

		err := fn(opCtx)
		if err == nil || isTransient(ctx, err) {
			return err
		}
		terminal = err
		return retry.Stop(err)
	})
	if terminal != nil {
		return terminal
	}
	return err
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = s.config.Context
	}
	return context.WithTimeout(ctx, s.config.Timeout)
}

func (s *Store) checkOpen() error {
	if s.closed.Load() {
		return store.ErrStoreClosed
	}
	return nil
}

func (s *Store) ttlSeconds() int {
	seconds := int(s.config.TTL.Seconds())
	if seconds < 1 {
		return 1
	}
	return seconds
}

// isTransient reports whether the failure may succeed when attempted again.
// Per attempt deadlines are transient as long as the caller context is alive.
func isTransient(parent context.Context, err error) bool {
	if parent.Err() != nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	switch {
	case errors.Is(err, rpctypes.ErrNoLeader),
		errors.Is(err, rpctypes.ErrLeaderChanged),
		errors.Is(err, rpctypes.ErrTimeout),
		errors.Is(err, rpctypes.ErrTimeoutDueToLeaderFail),
		errors.Is(err, rpctypes.ErrTimeoutDueToConnectionLost):
		return true
	}

	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return true
	default:
		return false
	}
}

func toEvent(ev *clientv3.Event) store.Event {
	if ev.Type == clientv3.EventTypeDelete {
		event := store.Event{Type: store.EventDelete, Path: string(ev.Kv.Key)}
		if ev.PrevKv != nil {
			event.Value = ev.PrevKv.Value
		}
		return event
	}
	return store.Event{
		Type:  store.EventPut,
		Path:  string(ev.Kv.Key),
		Value: ev.Kv.Value,
	}
}

func deleteOps(path string) []clientv3.Op {
	return []clientv3.Op{
		clientv3.OpDelete(path),
		clientv3.OpDelete(childPrefix(path), clientv3.WithPrefix()),
	}
}

func childPrefix(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/") + "/"
}
