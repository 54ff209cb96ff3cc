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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tochemey/elasticjob/coordinator"
	"github.com/tochemey/elasticjob/job"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/scheduler"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the job on this server",
	Long: `Run registers this server for the job and executes its shards on every
cron tick until the process receives SIGINT or SIGTERM. The demo handler logs
every shard and records the time of the tick as the shard offset.`,
	RunE: runJob,
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.String("job.cron", viper.GetString("job.cron"), "cron expression with seconds")
	flags.Int("job.sharding_total_count", viper.GetInt("job.sharding_total_count"), "number of shards")
	flags.String("job.sharding_item_parameters", viper.GetString("job.sharding_item_parameters"), "per shard parameters, e.g. 0=a,1=b")
	flags.Bool("job.failover", viper.GetBool("job.failover"), "take over the shards of crashed servers")
	flags.Bool("job.overwrite", viper.GetBool("job.overwrite"), "replace the persisted configuration")
	flags.String("server.id", viper.GetString("server.id"), "identifier of this server, defaults to host#pid")
	flags.Int("monitor.port", viper.GetInt("monitor.port"), "port of the monitor endpoint, 0 disables it")

	_ = viper.BindPFlags(flags)
}

func jobConfig() *job.Config {
	opts := []job.Option{
		job.WithShardingItemParameters(viper.GetString("job.sharding_item_parameters")),
		job.WithJobParameter(viper.GetString("job.parameter")),
		job.WithMisfire(viper.GetBool("job.misfire")),
		job.WithFailover(viper.GetBool("job.failover")),
		job.WithMonitorExecution(viper.GetBool("job.monitor_execution")),
		job.WithShardingStrategy(viper.GetString("job.sharding_strategy")),
	}
	if viper.GetBool("job.overwrite") {
		opts = append(opts, job.WithOverwrite())
	}

	return job.NewConfig(
		viper.GetString("job.name"),
		viper.GetString("job.handler"),
		viper.GetInt("job.sharding_total_count"),
		viper.GetString("job.cron"),
		opts...)
}

func runJob(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Flush() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := newEtcdStore(context.WithoutCancel(ctx), logger)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	coord, err := coordinator.NewFromStore(st, jobConfig(),
		coordinator.WithLogger(logger),
		coordinator.WithServerID(viper.GetString("server.id")),
		coordinator.WithMonitor(viper.GetString("monitor.host"), viper.GetInt("monitor.port")),
		coordinator.WithStatisticsInterval(viper.GetDuration("statistics.interval")))
	if err != nil {
		return err
	}

	jobScheduler, err := scheduler.New(coord, demoHandler(logger), scheduler.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := jobScheduler.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Infof("job=(%s) shutting down...", coord.JobName())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), durationOr("shutdown_timeout", 30*time.Second))
	defer cancel()
	return jobScheduler.Shutdown(shutdownCtx)
}

func demoHandler(logger log.Logger) job.Handler {
	return job.HandlerFunc(func(ctx context.Context, shard job.ShardContext) error {
		logger.Infof("job=(%s) task=(%s) item=(%d/%d) parameter=(%s) offset=(%s) misfire=(%t)",
			shard.JobName, shard.TaskID, shard.Item.Item, shard.ShardingTotalCount,
			shard.Item.Parameter, shard.Item.Offset, shard.Item.Misfire)
		return shard.Offsets.SetOffset(ctx, shard.Item.Item, time.Now().UTC().Format(time.RFC3339))
	})
}
