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

import (
	"context"
	"time"
)

// OffsetWriter persists the resume position of a shard. Handlers call it as the
// last step of a successful unit of work.
type OffsetWriter interface {
	SetOffset(ctx context.Context, item int, value string) error
}

// ShardContext is handed to the Handler for a single shard
type ShardContext struct {
	JobName            string
	TaskID             string
	ShardingTotalCount int
	JobParameter       string
	Item               ShardingItem
	Offsets            OffsetWriter
}

// Handler is the user business logic executed for every shard of a tick
type Handler interface {
	Execute(ctx context.Context, shard ShardContext) error
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(ctx context.Context, shard ShardContext) error

// Execute calls f(ctx, shard)
func (f HandlerFunc) Execute(ctx context.Context, shard ShardContext) error {
	return f(ctx, shard)
}

// Listener observes the executions of a job on this server
type Listener interface {
	BeforeJobExecuted(ctx context.Context, shardingContext *ShardingContext) error
	AfterJobExecuted(ctx context.Context, shardingContext *ShardingContext) error
}

// DistributeOnceListener is invoked once across the whole fleet per tick:
// before the first shard starts and after the last shard completes.
// The timeouts bound how long a server waits for the others.
type DistributeOnceListener interface {
	DoBeforeJobExecutedAtLastStarted(ctx context.Context, shardingContext *ShardingContext) error
	DoAfterJobExecutedAtLastCompleted(ctx context.Context, shardingContext *ShardingContext) error
	StartedTimeout() time.Duration
	CompletedTimeout() time.Duration
}
