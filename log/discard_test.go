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
	"io"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger.With("job", "billing", "server", "host#1")
	assert.Equal(t, DiscardLogger, logger)

	logger.Debugf("job=(%s) tick skipped", "billing")
	logger.Infof("job=(%s) scheduled", "billing")
	logger.Warnf("job=(%s) tick still running", "billing")
	logger.Errorf("job=(%s) tick failed: %v", "billing", io.EOF)
	logger.StdLogger().Print("dropped")

	assert.Equal(t, InfoLevel, logger.LogLevel())
	assert.Equal(t, []io.Writer{io.Discard}, logger.LogOutput())
	require.NoError(t, logger.Flush())

	assert.PanicsWithValue(t, "shard 2 lost", func() { logger.Panicf("shard %d lost", 2) })
	assert.PanicsWithValue(t, "leader lost", func() { logger.Panic("leader lost") })
}

func TestDiscardLoggerFatal(t *testing.T) {
	if os.Getenv("ELASTICJOB_DISCARD_FATAL") == "1" {
		DiscardLogger.Fatalf("job=(%s) cannot start", "billing")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestDiscardLoggerFatal$")
	cmd.Env = append(os.Environ(), "ELASTICJOB_DISCARD_FATAL=1")

	output, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.NotContains(t, string(output), "cannot start")
}
