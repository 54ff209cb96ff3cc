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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tochemey/elasticjob/internal/testutil"
	"github.com/tochemey/elasticjob/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClient(t *testing.T) {
	backend := NewBackend()
	testutil.RunStoreSuite(t, "/memory", func(t *testing.T) store.Store {
		client := backend.NewClient()
		t.Cleanup(func() { _ = client.Close() })
		return client
	})
}

func TestExpireSession(t *testing.T) {
	ctx := context.Background()
	backend := NewBackend()
	client := backend.NewClient()
	observer := backend.NewClient()
	t.Cleanup(func() {
		_ = client.Close()
		_ = observer.Close()
	})

	session := client.SessionID()
	require.NoError(t, client.Create(ctx, "/job/leader", []byte("a"), store.Ephemeral))
	_, err := client.Put(ctx, "/job/config", []byte("{}"), store.Persistent)
	require.NoError(t, err)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	events, err := observer.Watch(watchCtx, "/job/leader", false)
	require.NoError(t, err)

	client.ExpireSession()
	assert.NotEqual(t, session, client.SessionID())

	select {
	case <-client.Reconnected():
	case <-time.After(time.Second):
		require.FailNow(t, "reconnect not signaled")
	}

	select {
	case event := <-events:
		assert.Equal(t, store.EventDelete, event.Type)
		assert.Equal(t, "/job/leader", event.Path)
	case <-time.After(time.Second):
		require.FailNow(t, "delete not observed")
	}

	ok, err := observer.Exists(ctx, "/job/leader")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = observer.Exists(ctx, "/job/config")
	require.NoError(t, err)
	assert.True(t, ok)

	// the client remains usable with its new session
	require.NoError(t, client.Create(ctx, "/job/leader", []byte("a"), store.Ephemeral))
	assert.Equal(t, 2, backend.Len())
}

func TestClosedClient(t *testing.T) {
	ctx := context.Background()
	client := New()
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	require.ErrorIs(t, client.Create(ctx, "/a", nil, store.Persistent), store.ErrStoreClosed)
	_, err := client.Get(ctx, "/a")
	require.ErrorIs(t, err, store.ErrStoreClosed)
	_, err = client.Watch(ctx, "/a", true)
	require.ErrorIs(t, err, store.ErrStoreClosed)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := New()
	defer client.Close()
	_, err := client.Put(ctx, "/a", nil, store.Persistent)
	require.ErrorIs(t, err, context.Canceled)
}
