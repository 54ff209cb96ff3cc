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

package store

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNodeExists is returned by Create when the node is already present.
	ErrNodeExists = errors.New("store: node already exists")
	// ErrNodeNotFound is returned when the requested node does not exist.
	ErrNodeNotFound = errors.New("store: node not found")
	// ErrVersionConflict is returned by Update when the stored version moved on.
	ErrVersionConflict = errors.New("store: version conflict")
	// ErrTxnConflict is returned by Commit when one of its checks failed.
	// None of the operations of the transaction has been applied.
	ErrTxnConflict = errors.New("store: transaction conflict")
	// ErrStoreClosed is returned when the store has been closed.
	ErrStoreClosed = errors.New("store: closed")
)

// Mode defines the lifetime of a node
type Mode int

const (
	// Persistent nodes outlive the session that created them
	Persistent Mode = iota
	// Ephemeral nodes are removed when the session that created them is lost
	Ephemeral
)

// String returns the textual representation of the mode
func (m Mode) String() string {
	if m == Ephemeral {
		return "ephemeral"
	}
	return "persistent"
}

// Node is a single entry of the hierarchical namespace
type Node struct {
	Path string
	// Value is the raw payload of the node
	Value []byte
	// Version changes on every write and is used for optimistic concurrency
	Version int64
	// Ephemeral is true when the node is bound to a session
	Ephemeral bool
}

// EventType defines the kind of change observed by a watch
type EventType int

const (
	// EventPut is emitted when a node is created or updated
	EventPut EventType = iota + 1
	// EventDelete is emitted when a node is removed
	EventDelete
)

// String returns the textual representation of the event type
func (t EventType) String() string {
	switch t {
	case EventPut:
		return "put"
	case EventDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event is a change notification delivered by Watch
type Event struct {
	Type  EventType
	Path  string
	Value []byte
}

// Store is the capability the coordination services are built upon:
// a hierarchical namespace of nodes with ephemeral nodes bound to the
// client session, optimistic versions and change notifications.
//
// Paths are slash separated and absolute. A node may have children
// whether or not it carries a value itself.
type Store interface {
	// Create writes a new node and fails with ErrNodeExists when the node is already present.
	Create(ctx context.Context, path string, value []byte, mode Mode) error
	// Put creates or overwrites the node and returns its new version.
	Put(ctx context.Context, path string, value []byte, mode Mode) (int64, error)
	// Update overwrites the node only when its current version matches.
	// It returns ErrNodeNotFound when absent and ErrVersionConflict on mismatch.
	Update(ctx context.Context, path string, value []byte, version int64) (int64, error)
	// Get returns the node or ErrNodeNotFound.
	Get(ctx context.Context, path string) (*Node, error)
	// Exists checks whether the node is present.
	Exists(ctx context.Context, path string) (bool, error)
	// Children returns the sorted names of the direct children of the node.
	Children(ctx context.Context, path string) ([]string, error)
	// Delete removes the node and its subtree. Deleting a missing node is not an error.
	Delete(ctx context.Context, path string) error
	// Commit applies all operations atomically or none of them.
	// A failed check or a create on an existing node yields ErrTxnConflict.
	Commit(ctx context.Context, ops ...Op) error
	// Watch streams changes of the node, and of its subtree when recursive is set.
	// The channel is closed when ctx is done or the store is closed.
	Watch(ctx context.Context, path string, recursive bool) (<-chan Event, error)
	// Close releases the session. Ephemeral nodes of the session are removed.
	Close() error
}

// SessionNotifier is implemented by stores able to replace a lost session.
// A value is sent on the channel each time a fresh session took over, at
// which point every ephemeral node of the previous session is gone.
type SessionNotifier interface {
	Reconnected() <-chan struct{}
}

// Join builds a path from its segments
func Join(segments ...string) string {
	var builder strings.Builder
	for _, segment := range segments {
		segment = strings.Trim(segment, "/")
		if segment == "" {
			continue
		}
		builder.WriteByte('/')
		builder.WriteString(segment)
	}
	if builder.Len() == 0 {
		return "/"
	}
	return builder.String()
}

// Base returns the last segment of the path
func Base(path string) string {
	path = strings.TrimRight(path, "/")
	if index := strings.LastIndexByte(path, '/'); index >= 0 {
		return path[index+1:]
	}
	return path
}

// IsDescendant reports whether path is located strictly below parent
func IsDescendant(parent, path string) bool {
	parent = strings.TrimRight(parent, "/")
	return strings.HasPrefix(path, parent+"/")
}
