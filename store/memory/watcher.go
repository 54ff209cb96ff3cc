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
	"strings"
	"sync"

	"github.com/tochemey/elasticjob/store"
)

// watcher buffers events without bound so that the backend never blocks
// on a slow consumer while holding its lock
type watcher struct {
	path      string
	prefix    string
	recursive bool

	mu      sync.Mutex
	pending []store.Event
	signal  chan struct{}
	stop    chan struct{}
	once    sync.Once
}

func newWatcher(path string, recursive bool) *watcher {
	return &watcher{
		path:      path,
		prefix:    childPrefix(path),
		recursive: recursive,
		signal:    make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
}

func (w *watcher) matches(path string) bool {
	if path == w.path {
		return true
	}
	return w.recursive && strings.HasPrefix(path, w.prefix)
}

func (w *watcher) enqueue(event store.Event) {
	w.mu.Lock()
	w.pending = append(w.pending, event)
	w.mu.Unlock()
	select {
	case w.signal <- struct{}{}:
	default:
	}
}

func (w *watcher) drain() []store.Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	events := w.pending
	w.pending = nil
	return events
}

func (w *watcher) close() {
	w.once.Do(func() { close(w.stop) })
}

// pump forwards buffered events to out until ctx is done or the watcher is closed
func (w *watcher) pump(ctx context.Context, out chan<- store.Event, release func()) {
	defer close(out)
	defer release()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-w.signal:
			for _, event := range w.drain() {
				select {
				case out <- event:
				case <-ctx.Done():
					return
				case <-w.stop:
					return
				}
			}
		}
	}
}
