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

package offset

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store/memory"
)

func TestOffsets(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	defer st.Close()

	service := New(st, "testJob", log.DiscardLogger)

	offsets, err := service.GetOffsets(ctx, []int{0, 1})
	require.NoError(t, err)
	assert.Empty(t, offsets)

	require.NoError(t, service.SetOffset(ctx, 0, "100"))
	require.NoError(t, service.SetOffset(ctx, 0, "200"))
	require.NoError(t, service.SetOffset(ctx, 2, "7"))

	offsets, err = service.GetOffsets(ctx, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "200", 2: "7"}, offsets)

	value, found, err := service.GetOffset(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)

	require.NoError(t, service.Remove(ctx, []int{0}))
	_, found, err = service.GetOffset(ctx, 0)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestConcurrentSetOffset(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewBackend()

	const writers = 8
	values := make(map[string]struct{}, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		client := backend.NewClient()
		t.Cleanup(func() { _ = client.Close() })
		service := New(client, "testJob", log.DiscardLogger)
		service.maxAttempts = 100

		value := fmt.Sprintf("offset-%d", i)
		values[value] = struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, service.SetOffset(ctx, 0, value))
		}()
	}
	wg.Wait()

	value, found, err := New(backend.NewClient(), "testJob", log.DiscardLogger).GetOffset(ctx, 0)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, values, value)
}

func TestCanceledContext(t *testing.T) {
	st := memory.New()
	defer st.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, New(st, "testJob", log.DiscardLogger).SetOffset(ctx, 0, "1"))
}
