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

// Package testutil holds helpers shared by the tests of several packages.
package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/elasticjob/store"
)

// SessionFactory opens a new session on one shared namespace. Sessions
// returned by the same factory observe each other's writes.
type SessionFactory func(t *testing.T) store.Store

// RunStoreSuite checks that a store.Store implementation honors the
// semantics the coordination services rely on.
func RunStoreSuite(t *testing.T, root string, open SessionFactory) {
	t.Helper()

	t.Run("create is exclusive", func(t *testing.T) {
		ctx := context.Background()
		client := open(t)
		path := store.Join(root, "create", "node")

		require.NoError(t, client.Create(ctx, path, []byte("a"), store.Persistent))
		require.ErrorIs(t, client.Create(ctx, path, []byte("b"), store.Persistent), store.ErrNodeExists)

		node, err := client.Get(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []byte("a"), node.Value)
		assert.False(t, node.Ephemeral)
	})

	t.Run("get missing node", func(t *testing.T) {
		client := open(t)
		_, err := client.Get(context.Background(), store.Join(root, "missing"))
		require.ErrorIs(t, err, store.ErrNodeNotFound)

		ok, err := client.Exists(context.Background(), store.Join(root, "missing"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("update uses optimistic versions", func(t *testing.T) {
		ctx := context.Background()
		client := open(t)
		path := store.Join(root, "update", "node")

		_, err := client.Update(ctx, path, []byte("x"), 1)
		require.ErrorIs(t, err, store.ErrNodeNotFound)

		version, err := client.Put(ctx, path, []byte("1"), store.Persistent)
		require.NoError(t, err)

		next, err := client.Update(ctx, path, []byte("2"), version)
		require.NoError(t, err)
		assert.Greater(t, next, version)

		_, err = client.Update(ctx, path, []byte("3"), version)
		require.ErrorIs(t, err, store.ErrVersionConflict)

		node, err := client.Get(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), node.Value)
		assert.Equal(t, next, node.Version)
	})

	t.Run("children are direct and sorted", func(t *testing.T) {
		ctx := context.Background()
		client := open(t)
		parent := store.Join(root, "children")

		for _, path := range []string{"b", "a/x", "a/y/z", "c"} {
			_, err := client.Put(ctx, store.Join(parent, path), nil, store.Persistent)
			require.NoError(t, err)
		}

		children, err := client.Children(ctx, parent)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, children)

		children, err = client.Children(ctx, store.Join(parent, "none"))
		require.NoError(t, err)
		assert.Empty(t, children)
	})

	t.Run("delete removes subtree and is idempotent", func(t *testing.T) {
		ctx := context.Background()
		client := open(t)
		parent := store.Join(root, "delete")

		_, err := client.Put(ctx, parent, []byte("p"), store.Persistent)
		require.NoError(t, err)
		_, err = client.Put(ctx, store.Join(parent, "a", "b"), nil, store.Persistent)
		require.NoError(t, err)
		_, err = client.Put(ctx, parent+"-sibling", nil, store.Persistent)
		require.NoError(t, err)

		require.NoError(t, client.Delete(ctx, parent))
		require.NoError(t, client.Delete(ctx, parent))

		ok, err := client.Exists(ctx, store.Join(parent, "a", "b"))
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = client.Exists(ctx, parent+"-sibling")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("commit is all or nothing", func(t *testing.T) {
		ctx := context.Background()
		client := open(t)
		guard := store.Join(root, "commit", "leader")
		target := store.Join(root, "commit", "target")

		_, err := client.Put(ctx, guard, []byte("server-a"), store.Persistent)
		require.NoError(t, err)

		err = client.Commit(ctx,
			store.OpCheckValue(guard, []byte("server-b")),
			store.OpPut(target, []byte("x"), store.Persistent))
		require.ErrorIs(t, err, store.ErrTxnConflict)

		ok, err := client.Exists(ctx, target)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, client.Commit(ctx,
			store.OpCheckValue(guard, []byte("server-a")),
			store.OpCheckAbsent(target),
			store.OpCreate(target, []byte("x"), store.Persistent)))

		err = client.Commit(ctx, store.OpCreate(target, []byte("y"), store.Persistent))
		require.ErrorIs(t, err, store.ErrTxnConflict)

		node, err := client.Get(ctx, target)
		require.NoError(t, err)
		require.NoError(t, client.Commit(ctx,
			store.OpCheckExists(target),
			store.OpCheckVersion(target, node.Version),
			store.OpDelete(target)))

		ok, err = client.Exists(ctx, target)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ephemeral nodes die with the session", func(t *testing.T) {
		ctx := context.Background()
		owner := open(t)
		observer := open(t)
		path := store.Join(root, "ephemeral", "node")

		require.NoError(t, owner.Create(ctx, path, []byte("owner"), store.Ephemeral))
		node, err := observer.Get(ctx, path)
		require.NoError(t, err)
		assert.True(t, node.Ephemeral)

		require.NoError(t, owner.Close())
		require.Eventually(t, func() bool {
			ok, err := observer.Exists(ctx, path)
			return err == nil && !ok
		}, 10*time.Second, 20*time.Millisecond)
	})

	t.Run("create race has a single winner", func(t *testing.T) {
		ctx := context.Background()
		path := store.Join(root, "race", "leader")
		const racers = 8

		clients := make([]store.Store, racers)
		for i := range clients {
			clients[i] = open(t)
		}

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		for _, client := range clients {
			wg.Add(1)
			go func(client store.Store) {
				defer wg.Done()
				if err := client.Create(ctx, path, []byte("x"), store.Ephemeral); err == nil {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}(client)
		}
		wg.Wait()
		assert.Equal(t, 1, wins)
	})

	t.Run("watch delivers put and delete", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		client := open(t)
		parent := store.Join(root, "watch")
		events, err := client.Watch(ctx, parent, true)
		require.NoError(t, err)

		child := store.Join(parent, "child")
		_, err = client.Put(ctx, child, []byte("v"), store.Persistent)
		require.NoError(t, err)
		require.NoError(t, client.Delete(ctx, child))

		put := nextEvent(t, events)
		assert.Equal(t, store.EventPut, put.Type)
		assert.Equal(t, child, put.Path)
		assert.Equal(t, []byte("v"), put.Value)

		deleted := nextEvent(t, events)
		assert.Equal(t, store.EventDelete, deleted.Type)
		assert.Equal(t, child, deleted.Path)

		cancel()
		require.Eventually(t, func() bool {
			select {
			case _, ok := <-events:
				return !ok
			default:
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)
	})
}

func nextEvent(t *testing.T, events <-chan store.Event) store.Event {
	t.Helper()
	select {
	case event, ok := <-events:
		require.True(t, ok, "watch channel closed")
		return event
	case <-time.After(5 * time.Second):
		require.FailNow(t, "no event received")
		return store.Event{}
	}
}
