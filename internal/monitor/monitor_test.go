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

package monitor

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travisjeffery/go-dynaport"
	"go.uber.org/goleak"

	"github.com/tochemey/elasticjob/internal/http"
	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
	"github.com/tochemey/elasticjob/store/memory"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))
}

func get(t *testing.T, url string, body any) int {
	t.Helper()
	client := http.NewClient(5 * time.Second)
	defer client.CloseIdleConnections()

	response, err := client.Get(url)
	require.NoError(t, err)
	defer response.Body.Close()
	require.NoError(t, json.NewDecoder(response.Body).Decode(body))
	return response.StatusCode
}

func TestMonitor(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	defer st.Close()

	path := jobpath.New("testJob")
	require.NoError(t, st.Create(ctx, path.Config(), []byte(`{"jobName":"testJob"}`), store.Persistent))
	require.NoError(t, st.Create(ctx, path.ShardingItem(0), []byte("host#a"), store.Persistent))
	require.NoError(t, st.Create(ctx, path.Leader(), []byte("host#a"), store.Ephemeral))

	port := dynaport.Get(1)[0]
	service := New(st, "testJob", "127.0.0.1", port, log.DiscardLogger)
	require.NoError(t, service.Listen(ctx))
	require.NoError(t, service.Listen(ctx))
	assert.NotEmpty(t, service.Address())

	var health map[string]string
	require.Equal(t, stdhttp.StatusOK, get(t, http.URL("127.0.0.1", port)+"/health", &health))
	assert.Equal(t, "ok", health["status"])

	var dump map[string]string
	require.Equal(t, stdhttp.StatusOK, get(t, http.URL("127.0.0.1", port)+"/dump", &dump))
	assert.Equal(t, map[string]string{
		path.Config():        `{"jobName":"testJob"}`,
		path.ShardingItem(0): "host#a",
		path.Leader():        "host#a",
	}, dump)

	require.NoError(t, service.Close(ctx))
	require.NoError(t, service.Close(ctx))
	assert.Empty(t, service.Address())
}

func TestMonitorDisabled(t *testing.T) {
	st := memory.New()
	defer st.Close()

	service := New(st, "testJob", "", 0, log.DiscardLogger)
	require.NoError(t, service.Listen(context.Background()))
	assert.Empty(t, service.Address())
	require.NoError(t, service.Close(context.Background()))
}

func TestMonitorPortInUse(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	defer st.Close()

	port := dynaport.Get(1)[0]
	first := New(st, "testJob", "127.0.0.1", port, log.DiscardLogger)
	require.NoError(t, first.Listen(ctx))
	defer first.Close(ctx)

	second := New(st, "testJob", "127.0.0.1", port, log.DiscardLogger)
	require.Error(t, second.Listen(ctx))
}
