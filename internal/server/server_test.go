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

package server

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store/memory"
)

func TestServerID(t *testing.T) {
	assert.Equal(t, "host#1", NewServerID("host", "1"))
	assert.True(t, strings.Contains(LocalServerID(), "#"))
}

func TestPersistOnline(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewBackend()
	first := backend.NewClient()
	second := backend.NewClient()
	defer first.Close()
	defer second.Close()

	a := New(first, "testJob", "host-a#1", log.DiscardLogger)
	b := New(second, "testJob", "host-b#1", log.DiscardLogger)

	require.NoError(t, a.PersistOnline(ctx))
	require.NoError(t, b.PersistOnline(ctx))

	registration, err := a.Registration(ctx, "host-a#1")
	require.NoError(t, err)
	assert.Equal(t, "host-a", registration.Host)
	assert.Equal(t, "1", registration.Instance)
	assert.Equal(t, StatusOnline, registration.Status)

	live, err := a.LiveServers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"host-a#1", "host-b#1"}, live)

	// losing the session removes the registration but not the persistent flags
	require.NoError(t, a.StopJob(ctx, "host-b#1"))
	second.ExpireSession()

	live, err = a.LiveServers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"host-a#1"}, live)

	ok, err := a.IsLive(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailability(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	defer st.Close()

	service := New(st, "testJob", "host#1", nil)
	assert.Equal(t, "host#1", service.ServerID())
	require.NoError(t, service.PersistOnline(ctx))

	ok, err := service.IsLocalServerAvailable(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("stopped manually", func(t *testing.T) {
		require.NoError(t, service.StopJob(ctx, "host#1"))
		stopped, err := service.IsJobStoppedManually(ctx)
		require.NoError(t, err)
		assert.True(t, stopped)

		ok, err := service.IsLocalServerAvailable(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, service.ClearJobStoppedStatus(ctx))
		stopped, err = service.IsJobStoppedManually(ctx)
		require.NoError(t, err)
		assert.False(t, stopped)
	})

	t.Run("disabled", func(t *testing.T) {
		require.NoError(t, service.Disable(ctx, "host#1"))
		servers, err := service.AvailableServers(ctx)
		require.NoError(t, err)
		assert.Empty(t, servers)

		has, err := service.HasAvailableServers(ctx)
		require.NoError(t, err)
		assert.False(t, has)

		require.NoError(t, service.PersistOnline(ctx))
		registration, err := service.Registration(ctx, "host#1")
		require.NoError(t, err)
		assert.Equal(t, StatusDisabled, registration.Status)

		require.NoError(t, service.Enable(ctx, "host#1"))
		servers, err = service.AvailableServers(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"host#1"}, servers)
	})
}

func TestParseServerEvent(t *testing.T) {
	service := New(memory.New(), "testJob", "host#1", log.DiscardLogger)

	id, flag, ok := service.ParseServerEvent("/testJob/servers/host#2")
	require.True(t, ok)
	assert.Equal(t, "host#2", id)
	assert.Empty(t, flag)

	id, flag, ok = service.ParseServerEvent("/testJob/servers/host#2/disabled")
	require.True(t, ok)
	assert.Equal(t, "host#2", id)
	assert.Equal(t, "disabled", flag)

	_, _, ok = service.ParseServerEvent("/testJob/leader")
	assert.False(t, ok)
}
