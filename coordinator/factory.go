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
	"context"
	"errors"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/internal/config"
	"github.com/tochemey/elasticjob/internal/election"
	"github.com/tochemey/elasticjob/internal/execution"
	"github.com/tochemey/elasticjob/internal/failover"
	"github.com/tochemey/elasticjob/internal/guarantee"
	"github.com/tochemey/elasticjob/internal/listener"
	"github.com/tochemey/elasticjob/internal/metric"
	"github.com/tochemey/elasticjob/internal/monitor"
	"github.com/tochemey/elasticjob/internal/offset"
	"github.com/tochemey/elasticjob/internal/server"
	"github.com/tochemey/elasticjob/internal/sharding"
	"github.com/tochemey/elasticjob/internal/statistics"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/store"
)

// NewFromStore creates a Coordinator whose services share the given store
func NewFromStore(st store.Store, jobConfig *job.Config, opts ...Option) (*Coordinator, error) {
	if st == nil {
		return nil, errors.New("coordinator: store is required")
	}
	if jobConfig == nil {
		return nil, gerrors.NewErrInvalidConfig("", errors.New("configuration is required"))
	}
	jobConfig.Sanitize()
	if err := jobConfig.Validate(); err != nil {
		return nil, err
	}

	o := newOptions(opts...)
	serverID := o.serverID
	if serverID == "" {
		serverID = server.LocalServerID()
	}

	jobName := jobConfig.JobName
	logger := o.logger.With("job", jobName, "server", serverID)

	configs := config.New(st, jobName, logger)
	servers := server.New(st, jobName, serverID, logger)
	leadership := election.New(st, jobName, serverID, servers, logger)
	executions := execution.New(st, jobName, serverID, configs, servers, logger)
	shards := sharding.New(st, jobName, serverID, configs, leadership, servers, executions, logger)
	failovers := failover.New(st, jobName, serverID, configs, leadership, servers, executions, shards, logger)
	offsets := offset.New(st, jobName, logger)

	jobMetric, err := metric.NewJobMetric(metric.NewProvider(metric.WithMeterProvider(o.meterProvider)).Meter())
	if err != nil {
		return nil, err
	}

	var coordinator *Coordinator
	manager := listener.New(st, jobName, listener.Services{
		Config:   configs,
		Servers:  servers,
		Election: leadership,
		Sharding: shards,
		Failover: failovers,
	}, logger, listener.WithReconnectHandler(func(ctx context.Context) error {
		return coordinator.ResumeCrashedJobInfo(ctx)
	}))

	coordinator, err = New(jobConfig, Services{
		Config:           configs,
		Election:         leadership,
		Server:           servers,
		Sharding:         shards,
		ExecutionContext: execution.NewContextService(configs, shards, failovers, offsets, executions, logger),
		Execution:        executions,
		Failover:         failovers,
		Offset:           offsets,
		Statistics:       statistics.New(st, jobName, serverID, o.statisticsInterval, jobMetric, logger),
		Monitor:          monitor.New(st, jobName, o.monitorHost, o.monitorPort, logger),
		Listeners:        manager,
		Guarantee:        guarantee.New(st, jobName, serverID, logger),
	}, append(opts[:len(opts):len(opts)], WithLogger(logger))...)
	if err != nil {
		return nil, err
	}
	return coordinator, nil
}
