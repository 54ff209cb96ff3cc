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

package job

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/reugn/go-quartz/quartz"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/internal/validation"
)

const (
	// RoundRobinStrategy assigns shard i to the i-th server modulo the number of servers
	RoundRobinStrategy = "round-robin"
	// AverageStrategy assigns contiguous blocks of shards to the servers
	AverageStrategy = "average"
	// RotateStrategy rotates the servers by the hash of the job name before a round-robin assignment
	RotateStrategy = "rotate"
	// OdevityStrategy orders the servers by the parity of the job name hash before an average assignment
	OdevityStrategy = "odevity"
)

var strategies = []string{RoundRobinStrategy, AverageStrategy, RotateStrategy, OdevityStrategy}

// Config defines a job. The job name is the identity of the job in the
// coordination store: it is immutable once persisted.
type Config struct {
	JobName     string `json:"jobName"`
	HandlerType string `json:"handlerType"`
	// ShardingTotalCount is the number of shards the work is split into
	ShardingTotalCount int `json:"shardingTotalCount"`
	// Cron is a Quartz cron expression with seconds
	Cron string `json:"cron"`
	// ShardingItemParameters maps shard indexes to parameters, e.g. "0=a,1=b"
	ShardingItemParameters string `json:"shardingItemParameters,omitempty"`
	JobParameter           string `json:"jobParameter,omitempty"`
	// Misfire fires the missed executions right after the running one instead of skipping them
	Misfire bool `json:"misfire"`
	// Failover lets live servers take over the shards of crashed servers
	Failover bool `json:"failover"`
	// MonitorExecution records running markers for every shard
	MonitorExecution bool   `json:"monitorExecution"`
	ShardingStrategy string `json:"shardingStrategy,omitempty"`
	Description      string `json:"description,omitempty"`
	// Overwrite replaces the persisted configuration with the local one at startup
	Overwrite bool `json:"-"`
}

// Option configures a job Config
type Option func(*Config)

// WithShardingItemParameters sets the per shard parameters
func WithShardingItemParameters(parameters string) Option {
	return func(c *Config) { c.ShardingItemParameters = parameters }
}

// WithJobParameter sets the job wide parameter
func WithJobParameter(parameter string) Option {
	return func(c *Config) { c.JobParameter = parameter }
}

// WithMisfire sets the misfire policy
func WithMisfire(enabled bool) Option {
	return func(c *Config) { c.Misfire = enabled }
}

// WithFailover enables or disables failover
func WithFailover(enabled bool) Option {
	return func(c *Config) { c.Failover = enabled }
}

// WithMonitorExecution enables or disables running markers
func WithMonitorExecution(enabled bool) Option {
	return func(c *Config) { c.MonitorExecution = enabled }
}

// WithShardingStrategy sets the sharding strategy name
func WithShardingStrategy(strategy string) Option {
	return func(c *Config) { c.ShardingStrategy = strategy }
}

// WithDescription sets the job description
func WithDescription(description string) Option {
	return func(c *Config) { c.Description = description }
}

// WithOverwrite makes the local configuration replace the persisted one
func WithOverwrite() Option {
	return func(c *Config) { c.Overwrite = true }
}

// NewConfig creates a job Config. Misfire and monitor execution are enabled by default.
func NewConfig(jobName, handlerType string, shardingTotalCount int, cron string, opts ...Option) *Config {
	config := &Config{
		JobName:            jobName,
		HandlerType:        handlerType,
		ShardingTotalCount: shardingTotalCount,
		Cron:               cron,
		Misfire:            true,
		MonitorExecution:   true,
		ShardingStrategy:   RoundRobinStrategy,
	}

	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Sanitize trims the textual fields and sets the default strategy
func (c *Config) Sanitize() {
	c.JobName = strings.TrimSpace(c.JobName)
	c.HandlerType = strings.TrimSpace(c.HandlerType)
	c.Cron = strings.TrimSpace(c.Cron)
	c.ShardingStrategy = strings.TrimSpace(c.ShardingStrategy)
	if c.ShardingStrategy == "" {
		c.ShardingStrategy = RoundRobinStrategy
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	err := validation.New(validation.AllErrors()).
		AddValidator(validation.NewNameValidator("JobName", c.JobName)).
		AddValidator(validation.NewEmptyStringValidator("HandlerType", c.HandlerType)).
		AddAssertion(c.ShardingTotalCount > 0, "the [ShardingTotalCount] must be greater than zero").
		AddValidator(cronValidator(c.Cron)).
		AddAssertion(c.ShardingStrategy == "" || slices.Contains(strategies, c.ShardingStrategy), fmt.Sprintf("the [ShardingStrategy] %q is unknown", c.ShardingStrategy)).
		AddValidator(validation.Func(func() error {
			_, err := c.ShardingParameters()
			return err
		})).
		Validate()
	if err != nil {
		return gerrors.NewErrInvalidConfig(c.JobName, err)
	}
	return nil
}

// ShardingParameters parses ShardingItemParameters. Items outside
// 0..ShardingTotalCount-1 are rejected.
func (c *Config) ShardingParameters() (map[int]string, error) {
	parameters := make(map[int]string)
	if strings.TrimSpace(c.ShardingItemParameters) == "" {
		return parameters, nil
	}

	for _, pair := range strings.Split(c.ShardingItemParameters, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("pair=(%s) %w", pair, gerrors.ErrInvalidShardingParameters)
		}

		item, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("pair=(%s) %w", pair, gerrors.ErrInvalidShardingParameters)
		}

		if item < 0 || item >= c.ShardingTotalCount {
			return nil, gerrors.NewErrInvalidShardingItem(item, c.ShardingTotalCount)
		}
		parameters[item] = strings.TrimSpace(value)
	}
	return parameters, nil
}

// Items returns 0..ShardingTotalCount-1
func (c *Config) Items() []int {
	items := make([]int, c.ShardingTotalCount)
	for i := range items {
		items[i] = i
	}
	return items
}

// Equal reports whether both configurations describe the same job setup
func (c *Config) Equal(other *Config) bool {
	if other == nil {
		return false
	}
	left, right := *c, *other
	left.Overwrite, right.Overwrite = false, false
	return left == right
}

// Marshal encodes the configuration as persisted in the store
func (c *Config) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// UnmarshalConfig decodes a persisted configuration
func UnmarshalConfig(data []byte) (*Config, error) {
	config := new(Config)
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("job: failed to decode configuration: %w", err)
	}
	return config, nil
}

// SortedItems returns the given items sorted in ascending order without duplicates
func SortedItems(items []int) []int {
	seen := make(map[int]struct{}, len(items))
	sorted := make([]int, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		sorted = append(sorted, item)
	}
	sort.Ints(sorted)
	return sorted
}

func cronValidator(expression string) validation.Validator {
	return validation.Func(func() error {
		if expression == "" {
			return fmt.Errorf("the [Cron] is required")
		}
		if _, err := quartz.NewCronTrigger(expression); err != nil {
			return gerrors.NewErrInvalidCron(expression, err)
		}
		return nil
	})
}
