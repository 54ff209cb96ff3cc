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
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store/etcd"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "elasticjob",
	Short: "Shard-aware distributed job coordination",
	Long: `elasticjob runs cron jobs whose work is split into shards spread over
every server of the job. Servers coordinate through etcd.

Examples:
  elasticjob run --job.name=demo --job.cron="0/5 * * * * ?" --job.sharding_total_count=3
  elasticjob dump --monitor.port=9888
  elasticjob server disable host#1234 --job.name=demo`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initConfig()
	},
}

func init() {
	setDefaults()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "configuration file (yaml, json or toml)")
	flags.StringSlice("etcd.endpoints", viper.GetStringSlice("etcd.endpoints"), "etcd endpoints")
	flags.String("etcd.namespace", viper.GetString("etcd.namespace"), "key prefix of the coordination data")
	flags.String("job.name", viper.GetString("job.name"), "name of the job")
	flags.String("logging.level", viper.GetString("logging.level"), "log level (debug, info, warn, error)")

	_ = viper.BindPFlags(flags)
}

func setDefaults() {
	viper.SetDefault("etcd.endpoints", []string{"127.0.0.1:2379"})
	viper.SetDefault("etcd.namespace", "/elasticjob")
	viper.SetDefault("etcd.dial_timeout", "5s")
	viper.SetDefault("etcd.timeout", "5s")
	viper.SetDefault("etcd.ttl", "10s")

	viper.SetDefault("job.name", "demo")
	viper.SetDefault("job.handler", "log")
	viper.SetDefault("job.cron", "0/5 * * * * ?")
	viper.SetDefault("job.sharding_total_count", 3)
	viper.SetDefault("job.sharding_item_parameters", "")
	viper.SetDefault("job.parameter", "")
	viper.SetDefault("job.misfire", true)
	viper.SetDefault("job.failover", false)
	viper.SetDefault("job.monitor_execution", true)
	viper.SetDefault("job.sharding_strategy", "round-robin")
	viper.SetDefault("job.overwrite", false)

	viper.SetDefault("server.id", "")
	viper.SetDefault("monitor.host", "127.0.0.1")
	viper.SetDefault("monitor.port", 0)
	viper.SetDefault("statistics.interval", "1m")
	viper.SetDefault("shutdown_timeout", "30s")

	viper.SetDefault("logging.level", "info")
}

func initConfig() error {
	viper.SetEnvPrefix("ELASTICJOB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read the configuration file %s: %w", configFile, err)
	}
	return nil
}

func newLogger() (log.Logger, error) {
	level := log.ParseLevel(viper.GetString("logging.level"))
	if level == log.InvalidLevel {
		return nil, fmt.Errorf("unknown log level %q", viper.GetString("logging.level"))
	}
	return log.NewZap(level, os.Stdout), nil
}

func newEtcdStore(ctx context.Context, logger log.Logger) (*etcd.Store, error) {
	return etcd.New(&etcd.Config{
		Context:     ctx,
		Endpoints:   viper.GetStringSlice("etcd.endpoints"),
		Namespace:   viper.GetString("etcd.namespace"),
		DialTimeout: viper.GetDuration("etcd.dial_timeout"),
		Timeout:     viper.GetDuration("etcd.timeout"),
		TTL:         viper.GetDuration("etcd.ttl"),
		Logger:      logger,
	})
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if value := viper.GetDuration(key); value > 0 {
		return value
	}
	return fallback
}
