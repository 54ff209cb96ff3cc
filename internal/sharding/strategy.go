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

package sharding

import (
	"slices"

	gerrors "github.com/tochemey/elasticjob/errors"
	"github.com/tochemey/elasticjob/internal/hash"
	"github.com/tochemey/elasticjob/job"
)

// Strategy distributes the shards 0..total-1 over the servers.
// servers is sorted; the result holds an entry for every server.
type Strategy interface {
	Shard(servers []string, total int) map[string][]int
}

// NewStrategy returns the strategy registered under the given name for the
// given job. The empty name selects round-robin.
func NewStrategy(name, jobName string) (Strategy, error) {
	switch name {
	case "", job.RoundRobinStrategy:
		return RoundRobin{}, nil
	case job.AverageStrategy:
		return Average{}, nil
	case job.RotateStrategy:
		return Rotate{jobName: jobName, hasher: hash.DefaultHasher()}, nil
	case job.OdevityStrategy:
		return Odevity{jobName: jobName, hasher: hash.DefaultHasher()}, nil
	default:
		return nil, gerrors.NewErrUnknownShardingStrategy(name)
	}
}

// RoundRobin assigns shard i to servers[i mod k]
type RoundRobin struct{}

// Shard implements Strategy
func (RoundRobin) Shard(servers []string, total int) map[string][]int {
	result := emptyAssignment(servers)
	if len(servers) == 0 {
		return result
	}
	for item := 0; item < total; item++ {
		server := servers[item%len(servers)]
		result[server] = append(result[server], item)
	}
	return result
}

// Average assigns contiguous blocks of total/k shards, the remainder going
// one by one to the earliest servers
type Average struct{}

// Shard implements Strategy
func (Average) Shard(servers []string, total int) map[string][]int {
	result := emptyAssignment(servers)
	if len(servers) == 0 {
		return result
	}

	size := total / len(servers)
	remainder := total % len(servers)
	item := 0
	for index, server := range servers {
		count := size
		if index < remainder {
			count++
		}
		for i := 0; i < count; i++ {
			result[server] = append(result[server], item)
			item++
		}
	}
	return result
}

// Rotate shifts the servers by the hash of the job name before the
// round-robin assignment. Jobs with fewer shards than servers then land on
// different servers.
type Rotate struct {
	jobName string
	hasher  hash.Hasher
}

// Shard implements Strategy
func (r Rotate) Shard(servers []string, total int) map[string][]int {
	if len(servers) == 0 {
		return emptyAssignment(servers)
	}

	offset := int(r.hasher.HashCode([]byte(r.jobName)) % uint64(len(servers)))
	rotated := make([]string, 0, len(servers))
	rotated = append(rotated, servers[offset:]...)
	rotated = append(rotated, servers[:offset]...)
	return RoundRobin{}.Shard(rotated, total)
}

// Odevity reverses the servers of the jobs whose name hashes to an odd code
// before the average assignment
type Odevity struct {
	jobName string
	hasher  hash.Hasher
}

// Shard implements Strategy
func (o Odevity) Shard(servers []string, total int) map[string][]int {
	if o.hasher.HashCode([]byte(o.jobName))%2 == 0 {
		return Average{}.Shard(servers, total)
	}

	reversed := slices.Clone(servers)
	slices.Reverse(reversed)
	return Average{}.Shard(reversed, total)
}

func emptyAssignment(servers []string) map[string][]int {
	result := make(map[string][]int, len(servers))
	for _, server := range servers {
		result[server] = []int{}
	}
	return result
}
