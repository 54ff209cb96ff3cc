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

// Package memory provides an in-process store.Store. A Backend plays the
// role of the shared coordination service and every Client owns one
// session on it, so several servers of a job can run inside one process.
package memory

import (
	"bytes"
	"sort"
	"strings"
	"sync"

	"github.com/tochemey/elasticjob/store"
)

type entry struct {
	value   []byte
	version int64
	// session is zero for persistent nodes
	session uint64
}

// Backend is the shared namespace all clients read from and write to
type Backend struct {
	mu            sync.Mutex
	nodes         map[string]*entry
	revision      int64
	nextSession   uint64
	nextWatcherID uint64
	watchers      map[uint64]*watcher
}

// NewBackend creates an empty Backend
func NewBackend() *Backend {
	return &Backend{
		nodes:    make(map[string]*entry),
		watchers: make(map[uint64]*watcher),
	}
}

// New creates a Client on a private Backend
func New() *Client {
	return NewBackend().NewClient()
}

// NewClient opens a new session on the backend
func (b *Backend) NewClient() *Client {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextSession++
	return &Client{
		backend:     b,
		session:     b.nextSession,
		reconnected: make(chan struct{}, 1),
		watchers:    make(map[uint64]struct{}),
	}
}

// Len returns the number of nodes held by the backend
func (b *Backend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.nodes)
}

// put writes the node and notifies watchers. The caller holds the lock.
func (b *Backend) put(path string, value []byte, session uint64) int64 {
	b.revision++
	b.nodes[path] = &entry{
		value:   bytes.Clone(value),
		version: b.revision,
		session: session,
	}
	b.notify(store.Event{Type: store.EventPut, Path: path, Value: bytes.Clone(value)})
	return b.revision
}

// remove deletes the node and its subtree. The caller holds the lock.
func (b *Backend) remove(path string) {
	prefix := childPrefix(path)
	removed := make([]string, 0)
	for key := range b.nodes {
		if key == path || strings.HasPrefix(key, prefix) {
			removed = append(removed, key)
		}
	}
	sort.Strings(removed)
	for _, key := range removed {
		value := b.nodes[key].value
		delete(b.nodes, key)
		b.revision++
		b.notify(store.Event{Type: store.EventDelete, Path: key, Value: value})
	}
}

// expire removes every node bound to the session. The caller holds the lock.
func (b *Backend) expire(session uint64) {
	removed := make([]string, 0)
	for key, node := range b.nodes {
		if node.session == session {
			removed = append(removed, key)
		}
	}
	sort.Strings(removed)
	for _, key := range removed {
		value := b.nodes[key].value
		delete(b.nodes, key)
		b.revision++
		b.notify(store.Event{Type: store.EventDelete, Path: key, Value: value})
	}
}

func (b *Backend) notify(event store.Event) {
	for _, w := range b.watchers {
		if w.matches(event.Path) {
			w.enqueue(event)
		}
	}
}

func (b *Backend) check(op store.Op) bool {
	node, ok := b.nodes[op.Path]
	switch op.Type {
	case store.OpTypeCreate, store.OpTypeCheckAbsent:
		return !ok
	case store.OpTypeCheckExists:
		return ok
	case store.OpTypeCheckVersion:
		return ok && node.version == op.Version
	case store.OpTypeCheckValue:
		return ok && bytes.Equal(node.value, op.Value)
	default:
		return true
	}
}

func childPrefix(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/") + "/"
}
