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

package job

// ShardingItem is a shard this server must execute during a tick
type ShardingItem struct {
	Item      int
	Parameter string
	// Offset is the last persisted resume position of the shard
	Offset string
	// Misfire is true when the execution catches up a missed tick
	Misfire bool
}

// ShardingContext describes what this server executes during one tick
type ShardingContext struct {
	JobName            string
	TaskID             string
	ShardingTotalCount int
	JobParameter       string
	Items              []ShardingItem
}

// IsEmpty reports whether there is nothing to execute
func (c *ShardingContext) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// ItemIndexes returns the shard indexes of the context
func (c *ShardingContext) ItemIndexes() []int {
	if c == nil {
		return nil
	}
	indexes := make([]int, len(c.Items))
	for i, item := range c.Items {
		indexes[i] = item.Item
	}
	return indexes
}

// Item returns the sharding item for the given shard index
func (c *ShardingContext) Item(index int) (ShardingItem, bool) {
	if c == nil {
		return ShardingItem{}, false
	}
	for _, item := range c.Items {
		if item.Item == index {
			return item, true
		}
	}
	return ShardingItem{}, false
}
