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

package memory

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tochemey/elasticjob/store"
)

// Client is one session on a Backend. It implements store.Store and store.SessionNotifier.
type Client struct {
	backend *Backend

	mu          sync.Mutex
	session     uint64
	closed      bool
	reconnected chan struct{}
	watchers    map[uint64]struct{}
}

var (
	_ store.Store           = (*Client)(nil)
	_ store.SessionNotifier = (*Client)(nil)
)

// Create writes a new node and fails with store.ErrNodeExists when present
func (c *Client) Create(ctx context.Context, path string, value []byte, mode store.Mode) error {
	session, err := c.acquire(ctx)
	if err != nil {
		return err
	}

	b := c.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.nodes[path]; ok {
		return store.ErrNodeExists
	}
	b.put(path, value, owner(mode, session))
	return nil
}

// Put creates or overwrites the node
func (c *Client) Put(ctx context.Context, path string, value []byte, mode store.Mode) (int64, error) {
	session, err := c.acquire(ctx)
	if err != nil {
		return 0, err
	}

	b := c.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.put(path, value, owner(mode, session)), nil
}

// Update overwrites the node when its version matches. The node keeps its lifetime.
func (c *Client) Update(ctx context.Context, path string, value []byte, version int64) (int64, error) {
	if _, err := c.acquire(ctx); err != nil {
		return 0, err
	}

	b := c.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	node, ok := b.nodes[path]
	if !ok {
		return 0, store.ErrNodeNotFound
	}
	if node.version != version {
		return 0, store.ErrVersionConflict
	}
	return b.put(path, value, node.session), nil
}

// Get returns the node
func (c *Client) Get(ctx context.Context, path string) (*store.Node, error) {
	if _, err := c.acquire(ctx); err != nil {
		return nil, err
	}

	b := c.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	node, ok := b.nodes[path]
	if !ok {
		return nil, store.ErrNodeNotFound
	}
	return &store.Node{
		Path:      path,
		Value:     bytes.Clone(node.value),
		Version:   node.version,
		Ephemeral: node.session != 0,
	}, nil
}

// Exists checks whether the node is present
func (c *Client) Exists(ctx context.Context, path string) (bool, error) {
	if _, err := c.acquire(ctx); err != nil {
		return false, err
	}

	b := c.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.nodes[path]
	return ok, nil
}

// Children returns the sorted names of the direct children of the node
func (c *Client) Children(ctx context.Context, path string) ([]string, error) {
	if _, err := c.acquire(ctx); err != nil {
		return nil, err
	}

	b := c.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	prefix := childPrefix(path)
	seen := make(map[string]struct{})
	for key := range b.nodes {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name, _, _ := strings.Cut(strings.TrimPrefix(key, prefix), "/")
		if name != "" {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the node and its subtree
func (c *Client) Delete(ctx context.Context, path string) error {
	if _, err := c.acquire(ctx); err != nil {
		return err
	}

	b := c.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	b.remove(path)
	return nil
}

// Commit applies the operations atomically. Checks are evaluated against
// the state preceding the transaction.
func (c *Client) Commit(ctx context.Context, ops ...store.Op) error {
	session, err := c.acquire(ctx)
	if err != nil {
		return err
	}

	b := c.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, op := range ops {
		if !b.check(op) {
			return store.ErrTxnConflict
		}
	}

	for _, op := range ops {
		switch op.Type {
		case store.OpTypeCreate, store.OpTypePut:
			b.put(op.Path, op.Value, owner(op.Mode, session))
		case store.OpTypeDelete:
			b.remove(op.Path)
		}
	}
	return nil
}

// Watch streams the changes of the node and, when recursive, of its subtree
func (c *Client) Watch(ctx context.Context, path string, recursive bool) (<-chan store.Event, error) {
	if _, err := c.acquire(ctx); err != nil {
		return nil, err
	}

	w := newWatcher(path, recursive)
	b := c.backend
	b.mu.Lock()
	b.nextWatcherID++
	id := b.nextWatcherID
	b.watchers[id] = w
	b.mu.Unlock()

	c.mu.Lock()
	c.watchers[id] = struct{}{}
	c.mu.Unlock()

	out := make(chan store.Event)
	go w.pump(ctx, out, func() { c.unwatch(id) })
	return out, nil
}

// Reconnected signals that a fresh session replaced an expired one
func (c *Client) Reconnected() <-chan struct{} {
	return c.reconnected
}

// SessionID returns the identifier of the current session
func (c *Client) SessionID() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// ExpireSession simulates the loss of the session: every ephemeral node of the
// session is removed, a new session is opened and Reconnected is signaled.
func (c *Client) ExpireSession() {
	b := c.backend
	b.mu.Lock()
	c.mu.Lock()
	b.expire(c.session)
	b.nextSession++
	c.session = b.nextSession
	c.mu.Unlock()
	b.mu.Unlock()

	select {
	case c.reconnected <- struct{}{}:
	default:
	}
}

// Close removes the ephemeral nodes of the session and terminates its watches
func (c *Client) Close() error {
	b := c.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	b.expire(c.session)
	for id := range c.watchers {
		if w, ok := b.watchers[id]; ok {
			w.close()
			delete(b.watchers, id)
		}
	}
	c.watchers = make(map[uint64]struct{})
	return nil
}

func (c *Client) unwatch(id uint64) {
	b := c.backend
	b.mu.Lock()
	if w, ok := b.watchers[id]; ok {
		w.close()
		delete(b.watchers, id)
	}
	b.mu.Unlock()

	c.mu.Lock()
	delete(c.watchers, id)
	c.mu.Unlock()
}

func (c *Client) acquire(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, store.ErrStoreClosed
	}
	return c.session, nil
}

func owner(mode store.Mode, session uint64) uint64 {
	if mode == store.Ephemeral {
		return session
	}
	return 0
}
