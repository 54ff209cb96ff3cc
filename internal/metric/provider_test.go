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

package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// namedMeterProvider records the instrumentation names it hands meters to
type namedMeterProvider struct {
	noop.MeterProvider
	names []string
}

func (p *namedMeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	p.names = append(p.names, name)
	return p.MeterProvider.Meter(name, opts...)
}

func TestNewProvider(t *testing.T) {
	global := new(namedMeterProvider)
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(global)
	t.Cleanup(func() { otel.SetMeterProvider(previous) })

	t.Run("global provider by default", func(t *testing.T) {
		global.names = nil
		provider := NewProvider()
		assert.Same(t, global, provider.meterProvider)
		assert.NotNil(t, provider.Meter())
		assert.Equal(t, []string{instrumentationName}, global.names)
	})

	t.Run("nil override keeps the global provider", func(t *testing.T) {
		global.names = nil
		provider := NewProvider(WithMeterProvider(nil))
		assert.Same(t, global, provider.meterProvider)
		assert.Len(t, global.names, 1)
	})

	t.Run("custom provider", func(t *testing.T) {
		global.names = nil
		custom := new(namedMeterProvider)
		provider := NewProvider(WithMeterProvider(custom))
		assert.Same(t, custom, provider.meterProvider)
		assert.Equal(t, []string{instrumentationName}, custom.names)
		assert.Empty(t, global.names)
	})
}
