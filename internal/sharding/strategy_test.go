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

package sharding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/job"
)

func TestStrategy(t *testing.T) {
	servers := []string{"host#a", "host#b", "host#c"}

	testCases := []struct {
		name     string
		strategy string
		servers  []string
		total    int
		expected map[string][]int
	}{
		{
			name:     "round-robin with remainder",
			strategy: job.RoundRobinStrategy,
			servers:  servers,
			total:    10,
			expected: map[string][]int{
				"host#a": {0, 3, 6, 9},
				"host#b": {1, 4, 7},
				"host#c": {2, 5, 8},
			},
		},
		{
			name:     "average with remainder",
			strategy: job.AverageStrategy,
			servers:  servers,
			total:    10,
			expected: map[string][]int{
				"host#a": {0, 1, 2, 3},
				"host#b": {4, 5, 6},
				"host#c": {7, 8, 9},
			},
		},
		{
			name:     "more servers than items",
			strategy: job.AverageStrategy,
			servers:  servers,
			total:    2,
			expected: map[string][]int{
				"host#a": {0},
				"host#b": {1},
				"host#c": {},
			},
		},
		{
			name:     "default strategy",
			strategy: "",
			servers:  servers[:2],
			total:    3,
			expected: map[string][]int{
				"host#a": {0, 2},
				"host#b": {1},
			},
		},
		{
			name:     "no server",
			strategy: job.RoundRobinStrategy,
			total:    3,
			expected: map[string][]int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			strategy, err := NewStrategy(tc.strategy, "testJob")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, strategy.Shard(tc.servers, tc.total))
		})
	}

	t.Run("unknown strategy", func(t *testing.T) {
		strategy, err := NewStrategy("random", "testJob")
		require.ErrorIs(t, err, gerrors.ErrUnknownShardingStrategy)
		assert.Nil(t, strategy)
	})
}

func TestStrategyBalance(t *testing.T) {
	strategies := []string{job.RoundRobinStrategy, job.AverageStrategy, job.RotateStrategy, job.OdevityStrategy}
	for _, name := range strategies {
		strategy, err := NewStrategy(name, "testJob")
		require.NoError(t, err)

		for k := 1; k <= 7; k++ {
			servers := make([]string, k)
			for i := range servers {
				servers[i] = string(rune('a' + i))
			}

			for total := 1; total <= 25; total++ {
				assignment := strategy.Shard(servers, total)
				seen := make(map[int]int)
				minimum, maximum := total, 0
				for _, items := range assignment {
					minimum = min(minimum, len(items))
					maximum = max(maximum, len(items))
					for _, item := range items {
						seen[item]++
					}
				}
				assert.LessOrEqual(t, maximum-minimum, 1, "strategy=%s servers=%d total=%d", name, k, total)
				assert.Len(t, seen, total)
				for item, count := range seen {
					assert.Equal(t, 1, count, "item %d assigned twice", item)
				}
				// deterministic
				assert.Equal(t, assignment, strategy.Shard(servers, total))
			}
		}
	}
}

type fixedHasher uint64

func (h fixedHasher) HashCode([]byte) uint64 {
	return uint64(h)
}

func TestJobNameStrategies(t *testing.T) {
	servers := []string{"host#a", "host#b", "host#c"}

	t.Run("rotate", func(t *testing.T) {
		strategy := Rotate{jobName: "testJob", hasher: fixedHasher(4)}
		assert.Equal(t, map[string][]int{
			"host#a": {2},
			"host#b": {0, 3},
			"host#c": {1},
		}, strategy.Shard(servers, 4))
	})

	t.Run("odevity with even hash", func(t *testing.T) {
		strategy := Odevity{jobName: "testJob", hasher: fixedHasher(2)}
		assert.Equal(t, map[string][]int{
			"host#a": {0, 1},
			"host#b": {2},
			"host#c": {3},
		}, strategy.Shard(servers, 4))
	})

	t.Run("odevity with odd hash", func(t *testing.T) {
		strategy := Odevity{jobName: "testJob", hasher: fixedHasher(3)}
		assert.Equal(t, map[string][]int{
			"host#a": {3},
			"host#b": {2},
			"host#c": {0, 1},
		}, strategy.Shard(servers, 4))
		// the input order is left untouched
		assert.Equal(t, []string{"host#a", "host#b", "host#c"}, servers)
	})

	t.Run("without server", func(t *testing.T) {
		strategy := Rotate{jobName: "testJob", hasher: fixedHasher(1)}
		assert.Empty(t, strategy.Shard(nil, 4))
	})
}
