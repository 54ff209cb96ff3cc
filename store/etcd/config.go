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

package etcd

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/tochemey/elasticjob/internal/validation"
	"github.com/tochemey/elasticjob/log"
)

const (
	defaultNamespace   = "/elasticjob"
	defaultDialTimeout = 5 * time.Second
	defaultTimeout     = 5 * time.Second
	defaultTTL         = 10 * time.Second
	defaultMaxRetries  = 5
)

// Config defines the etcd store settings
type Config struct {
	// Context is the parent context of the etcd client and the session.
	Context context.Context
	// Endpoints lists the etcd endpoints.
	Endpoints []string
	// DialTimeout bounds the connection to etcd.
	DialTimeout time.Duration
	// Timeout bounds every single store operation.
	Timeout time.Duration
	// TTL is the session lease time-to-live. Ephemeral nodes disappear at most
	// TTL after the process lost its connection.
	TTL time.Duration
	// MaxRetries bounds the retries of idempotent operations on transient failures.
	MaxRetries int
	// Namespace prefixes every key written by the store.
	Namespace string
	Username  string
	Password  string
	TLS       *tls.Config
	Logger    log.Logger
}

// Sanitize sets the defaults of unset fields
func (c *Config) Sanitize() {
	if c.Context == nil {
		c.Context = context.Background()
	}
	if strings.TrimSpace(c.Namespace) == "" {
		c.Namespace = defaultNamespace
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = defaultDialTimeout
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.TTL <= 0 {
		c.TTL = defaultTTL
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.Logger == nil {
		c.Logger = log.DiscardLogger
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	return validation.New(validation.AllErrors()).
		AddAssertion(len(c.Endpoints) > 0, "the [Endpoints] is required").
		AddAssertion(c.TTL >= time.Second, "the [TTL] must be at least one second").
		AddAssertion(c.Timeout > 0, "the [Timeout] must be greater than zero").
		AddAssertion(c.DialTimeout > 0, "the [DialTimeout] must be greater than zero").
		AddValidator(validation.NewEmptyStringValidator("Namespace", c.Namespace)).
		Validate()
}

// normalizeNamespace returns the namespace with a leading slash and no trailing slash
func normalizeNamespace(namespace string) string {
	trimmed := strings.Trim(strings.TrimSpace(namespace), "/")
	if trimmed == "" {
		trimmed = strings.Trim(defaultNamespace, "/")
	}
	return "/" + trimmed
}
