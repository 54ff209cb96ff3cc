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

package errorschain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestChain(t *testing.T) {
	errMonitor := errors.New("monitor close failed")
	errStatistics := errors.New("statistics flush failed")

	t.Run("without error", func(t *testing.T) {
		require.NoError(t, New().AddError(nil).AddErrorFn(func() error { return nil }).Error())
	})

	t.Run("ReturnAll runs every step", func(t *testing.T) {
		var steps []string
		err := New(ReturnAll()).
			AddErrorFn(func() error { steps = append(steps, "monitor"); return errMonitor }).
			AddErrorFn(func() error { steps = append(steps, "statistics"); return errStatistics }).
			AddErrorFn(func() error { steps = append(steps, "leader"); return nil }).
			Error()

		require.ErrorIs(t, err, errMonitor)
		require.ErrorIs(t, err, errStatistics)
		assert.Len(t, multierr.Errors(err), 2)
		assert.Equal(t, []string{"monitor", "statistics", "leader"}, steps)
	})

	t.Run("ReturnFirst skips the steps after a failure", func(t *testing.T) {
		var steps []string
		err := New(ReturnFirst()).
			AddErrorFns(
				func() error { steps = append(steps, "monitor"); return nil },
				func() error { steps = append(steps, "statistics"); return errStatistics },
				func() error { steps = append(steps, "leader"); return errMonitor },
			).
			Error()

		require.Equal(t, errStatistics, err)
		assert.Equal(t, []string{"monitor", "statistics"}, steps)
	})

	t.Run("steps run when Error is called", func(t *testing.T) {
		called := false
		chain := New().AddErrorFn(func() error { called = true; return nil })
		assert.False(t, called)
		require.NoError(t, chain.Error())
		assert.True(t, called)
	})

	t.Run("computed errors keep their order", func(t *testing.T) {
		err := New().AddErrors(errMonitor, nil, errStatistics).Error()
		assert.Equal(t, []error{errMonitor, errStatistics}, multierr.Errors(err))

		err = New(ReturnFirst()).AddErrors(nil, errStatistics, errMonitor).Error()
		assert.Equal(t, errStatistics, err)
	})
}
