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

// Package ticker delivers ticks at a fixed interval and drops them when
// nobody is receiving.
package ticker

import (
	"sync"
	"time"
)

// Ticker defines time ticker that delivers ticks at intervals
type Ticker struct {
	Ticks    chan time.Time
	interval time.Duration
	mutex    sync.Mutex
	ticking  bool
	stop     chan struct{}
}

// New creates an instance of Ticker that ticks every interval.
// Ticks are dropped while the receiver is busy.
func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		panic("interval must be greater than zero")
	}
	return &Ticker{
		Ticks:    make(chan time.Time),
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start the ticker. Ticks are delivered on the ticker's
// channel until Stop is called
func (t *Ticker) Start() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if !t.ticking {
		go t.loop()
		t.ticking = true
	}
}

// Stop stops the ticker. No ticks will be delivered on ticker's channel
// after Stop returns and before Start is call again
func (t *Ticker) Stop() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.ticking {
		t.ticking = false
		t.stop <- struct{}{}
	}
}

// Ticking returns true when the ticker is ticking
// and false when it is stopped
func (t *Ticker) Ticking() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.ticking
}

func (t *Ticker) loop() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case tick := <-ticker.C:
			select {
			case t.Ticks <- tick:
			default:
			}
		case <-t.stop:
			return
		}
	}
}
