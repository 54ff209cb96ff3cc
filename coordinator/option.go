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

package coordinator

import (
	"time"

	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
)

// Option configures the Coordinator
type Option interface {
	// Apply sets the Option value of a config.
	Apply(*options)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*options)

// Apply applies the options to the coordinator
func (f OptionFunc) Apply(o *options) {
	f(o)
}

type options struct {
	logger             log.Logger
	listeners          []job.Listener
	onceListeners      []job.DistributeOnceListener
	serverID           string
	monitorHost        string
	monitorPort        int
	statisticsInterval time.Duration
	meterProvider      otelmetric.MeterProvider
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger: log.DefaultLogger,
	}
	for _, opt := range opts {
		opt.Apply(o)
	}
	return o
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	})
}

// WithListeners registers listeners called around every execution
func WithListeners(listeners ...job.Listener) Option {
	return OptionFunc(func(o *options) {
		o.listeners = append(o.listeners, listeners...)
	})
}

// WithDistributeOnceListeners registers listeners whose hooks run once per
// execution across all the servers
func WithDistributeOnceListeners(listeners ...job.DistributeOnceListener) Option {
	return OptionFunc(func(o *options) {
		o.onceListeners = append(o.onceListeners, listeners...)
	})
}

// WithServerID overrides the identifier of the local server. Used by NewFromStore.
func WithServerID(serverID string) Option {
	return OptionFunc(func(o *options) {
		o.serverID = serverID
	})
}

// WithMonitor enables the monitor endpoint on the given address. Used by NewFromStore.
func WithMonitor(host string, port int) Option {
	return OptionFunc(func(o *options) {
		o.monitorHost = host
		o.monitorPort = port
	})
}

// WithStatisticsInterval sets how often the processed counts are persisted. Used by NewFromStore.
func WithStatisticsInterval(interval time.Duration) Option {
	return OptionFunc(func(o *options) {
		o.statisticsInterval = interval
	})
}

// WithMeterProvider sets the OpenTelemetry meter provider. Used by NewFromStore.
func WithMeterProvider(meterProvider otelmetric.MeterProvider) Option {
	return OptionFunc(func(o *options) {
		o.meterProvider = meterProvider
	})
}
