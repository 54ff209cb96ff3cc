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

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger(t *testing.T) {
	buffer := new(bytes.Buffer)
	// an unknown level falls back to debug
	logger := NewZap(7, buffer)
	require.Equal(t, DebugLevel, logger.LogLevel())

	logger.Debug("test debug")
	require.NoError(t, logger.Flush())

	entry := decodeEntry(t, buffer.Bytes())
	assert.Equal(t, "test debug", entry["msg"])
	assert.Equal(t, DebugLevel.String(), entry["level"])
}

func TestLevels(t *testing.T) {
	testCases := []struct {
		name     string
		level    Level
		write    func(Logger)
		expected string
		written  bool
	}{
		{name: "info at info", level: InfoLevel, write: func(l Logger) { l.Info("msg") }, expected: "info", written: true},
		{name: "infof at info", level: InfoLevel, write: func(l Logger) { l.Infof("%s", "msg") }, expected: "info", written: true},
		{name: "debug at info", level: InfoLevel, write: func(l Logger) { l.Debug("msg") }},
		{name: "warn at info", level: InfoLevel, write: func(l Logger) { l.Warnf("%s", "msg") }, expected: "warn", written: true},
		{name: "warn at error", level: ErrorLevel, write: func(l Logger) { l.Warn("msg") }},
		{name: "error at error", level: ErrorLevel, write: func(l Logger) { l.Errorf("%s", "msg") }, expected: "error", written: true},
		{name: "debugf at debug", level: DebugLevel, write: func(l Logger) { l.Debugf("%s", "msg") }, expected: "debug", written: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buffer := new(bytes.Buffer)
			logger := NewZap(tc.level, buffer)
			tc.write(logger)
			if !tc.written {
				assert.Empty(t, buffer.String())
				return
			}
			entry := decodeEntry(t, buffer.Bytes())
			assert.Equal(t, "msg", entry["msg"])
			assert.Equal(t, tc.expected, entry["level"])
		})
	}
}

func TestLogWith(t *testing.T) {
	t.Run("adds structured fields", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.With("job", "billing", "item", 3, "elapsed", time.Second, "cause", errors.New("boom")).Info("sharding done")

		entry := decodeEntry(t, buffer.Bytes())
		assert.Equal(t, "billing", entry["job"])
		assert.EqualValues(t, 3, entry["item"])
		assert.Equal(t, "1s", entry["elapsed"])
		assert.Equal(t, "boom", entry["cause"])
	})

	t.Run("returns same logger without fields", func(t *testing.T) {
		logger := NewZap(InfoLevel, new(bytes.Buffer))
		assert.Equal(t, logger, logger.With())
		assert.Equal(t, logger, logger.With(1, 2))
	})

	t.Run("records orphan value", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.With("a", true, "orphan").Info("msg")
		entry := decodeEntry(t, buffer.Bytes())
		assert.Equal(t, true, entry["a"])
		assert.Equal(t, "orphan", entry["_"])
	})
}

func TestPanic(t *testing.T) {
	logger := NewZap(DebugLevel, new(bytes.Buffer))
	assert.Panics(t, func() { logger.Panic("panic") })
	assert.Panics(t, func() { logger.Panicf("panic %d", 1) })
}

func TestLogOutputAndStdLogger(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)
	require.Len(t, logger.LogOutput(), 1)

	std := logger.StdLogger()
	require.NotNil(t, std)
	std.Print("from std")
	entry := decodeEntry(t, buffer.Bytes())
	assert.Equal(t, "from std", entry["msg"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarningLevel, ParseLevel("WARN"))
	assert.Equal(t, WarningLevel, ParseLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLevel("Error"))
	assert.Equal(t, InvalidLevel, ParseLevel("verbose"))
	assert.Empty(t, InvalidLevel.String())
}

func decodeEntry(t *testing.T, out []byte) map[string]any {
	t.Helper()
	line := bytes.SplitN(bytes.TrimSpace(out), []byte("\n"), 2)[0]
	entry := make(map[string]any)
	require.NoError(t, json.Unmarshal(line, &entry))
	return entry
}
