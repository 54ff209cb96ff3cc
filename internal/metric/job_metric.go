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
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// JobMetric defines the job instrumentation
type JobMetric struct {
	// Specifies the total number of items processed successfully
	successCount metric.Int64Counter
	// Specifies the total number of items whose processing failed
	failureCount metric.Int64Counter
	// Specifies the duration of an execution
	// This is expressed in milliseconds
	executionDuration metric.Int64Histogram
	// Specifies the total number of misfired ticks
	misfireCount metric.Int64Counter
}

// NewJobMetric creates an instance of JobMetric
func NewJobMetric(meter metric.Meter) (*JobMetric, error) {
	jobMetric := new(JobMetric)
	var err error
	if jobMetric.successCount, err = meter.Int64Counter(
		"elasticjob_processed_success_count",
		metric.WithDescription("Total number of items processed successfully"),
	); err != nil {
		return nil, fmt.Errorf("failed to create successCount instrument, %w", err)
	}

	if jobMetric.failureCount, err = meter.Int64Counter(
		"elasticjob_processed_failure_count",
		metric.WithDescription("Total number of items whose processing failed"),
	); err != nil {
		return nil, fmt.Errorf("failed to create failureCount instrument, %w", err)
	}

	if jobMetric.executionDuration, err = meter.Int64Histogram(
		"elasticjob_execution_duration",
		metric.WithDescription("The latency of an execution in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to create executionDuration instrument, %w", err)
	}

	if jobMetric.misfireCount, err = meter.Int64Counter(
		"elasticjob_misfire_count",
		metric.WithDescription("Total number of ticks fired while an execution was still running"),
	); err != nil {
		return nil, fmt.Errorf("failed to create misfireCount instrument, %w", err)
	}

	return jobMetric, nil
}

// SuccessCount returns the counter of items processed successfully
func (x *JobMetric) SuccessCount() metric.Int64Counter {
	return x.successCount
}

// FailureCount returns the counter of items whose processing failed
func (x *JobMetric) FailureCount() metric.Int64Counter {
	return x.failureCount
}

// ExecutionDuration returns the execution latency in milliseconds
func (x *JobMetric) ExecutionDuration() metric.Int64Histogram {
	return x.executionDuration
}

// MisfireCount returns the counter of misfired ticks
func (x *JobMetric) MisfireCount() metric.Int64Counter {
	return x.misfireCount
}
