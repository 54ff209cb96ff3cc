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

// Package server publishes the presence of the local server and exposes the
// servers of a job. A server is live while its ephemeral registration exists
// and available when it is live and neither disabled nor stopped manually.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

const (
	// StatusOnline is the status of an enabled server
	StatusOnline = "online"
	// StatusDisabled is the status of a server excluded from sharding
	StatusDisabled = "disabled"

	separator = "#"
)

// Registration is the payload of /{job}/servers/{id}
type Registration struct {
	ID           string    `json:"id"`
	Host         string    `json:"host"`
	Instance     string    `json:"instance"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// NewServerID builds the server identifier from the host and the instance
func NewServerID(host, instance string) string {
	return host + separator + instance
}

// LocalServerID builds the identifier of this process: hostname#pid
func LocalServerID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return NewServerID(host, fmt.Sprint(os.Getpid()))
}

// Service manages the server registrations of one job
type Service struct {
	store    store.Store
	path     jobpath.Path
	serverID string
	logger   log.Logger
}

// New creates an instance of Service
func New(st store.Store, jobName, serverID string, logger log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Service{
		store:    st,
		path:     jobpath.New(jobName),
		serverID: serverID,
		logger:   logger,
	}
}

// ServerID returns the identifier of the local server
func (s *Service) ServerID() string {
	return s.serverID
}

// PersistOnline publishes the ephemeral registration of the local server
func (s *Service) PersistOnline(ctx context.Context) error {
	disabled, err := s.store.Exists(ctx, s.path.ServerDisabled(s.serverID))
	if err != nil {
		return fmt.Errorf("server: failed to read disabled flag: %w", err)
	}

	host, instance, _ := strings.Cut(s.serverID, separator)
	registration := Registration{
		ID:           s.serverID,
		Host:         host,
		Instance:     instance,
		Status:       StatusOnline,
		RegisteredAt: time.Now().UTC(),
	}
	if disabled {
		registration.Status = StatusDisabled
	}

	data, err := json.Marshal(registration)
	if err != nil {
		return fmt.Errorf("server: failed to encode registration: %w", err)
	}

	if _, err := s.store.Put(ctx, s.path.Server(s.serverID), data, store.Ephemeral); err != nil {
		return fmt.Errorf("server: failed to register %s: %w", s.serverID, err)
	}
	s.logger.Debugf("job=(%s) server=(%s) is online", s.path.JobName(), s.serverID)
	return nil
}

// ClearJobStoppedStatus removes the manually-stopped flag of the local server
func (s *Service) ClearJobStoppedStatus(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.path.ServerStopped(s.serverID)); err != nil {
		return fmt.Errorf("server: failed to clear stopped flag: %w", err)
	}
	return nil
}

// IsJobStoppedManually checks the manually-stopped flag of the local server
func (s *Service) IsJobStoppedManually(ctx context.Context) (bool, error) {
	ok, err := s.store.Exists(ctx, s.path.ServerStopped(s.serverID))
	if err != nil {
		return false, fmt.Errorf("server: failed to read stopped flag: %w", err)
	}
	return ok, nil
}

// StopJob sets the manually-stopped flag of the given server
func (s *Service) StopJob(ctx context.Context, serverID string) error {
	if _, err := s.store.Put(ctx, s.path.ServerStopped(serverID), nil, store.Persistent); err != nil {
		return fmt.Errorf("server: failed to stop %s: %w", serverID, err)
	}
	return nil
}

// Disable excludes the given server from sharding
func (s *Service) Disable(ctx context.Context, serverID string) error {
	if _, err := s.store.Put(ctx, s.path.ServerDisabled(serverID), nil, store.Persistent); err != nil {
		return fmt.Errorf("server: failed to disable %s: %w", serverID, err)
	}
	return nil
}

// Enable includes the given server in sharding again
func (s *Service) Enable(ctx context.Context, serverID string) error {
	if err := s.store.Delete(ctx, s.path.ServerDisabled(serverID)); err != nil {
		return fmt.Errorf("server: failed to enable %s: %w", serverID, err)
	}
	return nil
}

// Registration returns the registration of the given server
func (s *Service) Registration(ctx context.Context, serverID string) (*Registration, error) {
	node, err := s.store.Get(ctx, s.path.Server(serverID))
	if err != nil {
		return nil, err
	}

	registration := new(Registration)
	if err := json.Unmarshal(node.Value, registration); err != nil {
		return nil, fmt.Errorf("server: failed to decode registration of %s: %w", serverID, err)
	}
	return registration, nil
}

// IsLive reports whether the given server holds its registration
func (s *Service) IsLive(ctx context.Context, serverID string) (bool, error) {
	if serverID == "" {
		return false, nil
	}
	ok, err := s.store.Exists(ctx, s.path.Server(serverID))
	if err != nil {
		return false, fmt.Errorf("server: failed to check %s: %w", serverID, err)
	}
	return ok, nil
}

// IsAvailable reports whether the given server is live, enabled and not stopped
func (s *Service) IsAvailable(ctx context.Context, serverID string) (bool, error) {
	live, err := s.IsLive(ctx, serverID)
	if err != nil || !live {
		return false, err
	}

	for _, flag := range []string{s.path.ServerDisabled(serverID), s.path.ServerStopped(serverID)} {
		ok, err := s.store.Exists(ctx, flag)
		if err != nil {
			return false, fmt.Errorf("server: failed to check %s: %w", serverID, err)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

// IsLocalServerAvailable reports whether the local server is available
func (s *Service) IsLocalServerAvailable(ctx context.Context) (bool, error) {
	return s.IsAvailable(ctx, s.serverID)
}

// LiveServers returns the sorted identifiers of the registered servers
func (s *Service) LiveServers(ctx context.Context) ([]string, error) {
	return s.filter(ctx, s.IsLive)
}

// AvailableServers returns the sorted identifiers of the available servers
func (s *Service) AvailableServers(ctx context.Context) ([]string, error) {
	return s.filter(ctx, s.IsAvailable)
}

// HasAvailableServers reports whether at least one server is available
func (s *Service) HasAvailableServers(ctx context.Context) (bool, error) {
	servers, err := s.AvailableServers(ctx)
	if err != nil {
		return false, err
	}
	return len(servers) > 0, nil
}

// ParseServerEvent extracts the server identifier from a path below /{job}/servers.
// The flag is "" for a registration, or the name of the flag node.
func (s *Service) ParseServerEvent(path string) (serverID, flag string, ok bool) {
	if !store.IsDescendant(s.path.Servers(), path) {
		return "", "", false
	}
	rest := strings.TrimPrefix(path, s.path.Servers()+"/")
	serverID, flag, _ = strings.Cut(rest, "/")
	return serverID, flag, serverID != ""
}

func (s *Service) filter(ctx context.Context, keep func(context.Context, string) (bool, error)) ([]string, error) {
	// children also lists servers that only left persistent flags behind
	ids, err := s.store.Children(ctx, s.path.Servers())
	if err != nil {
		return nil, fmt.Errorf("server: failed to list servers: %w", err)
	}

	servers := make([]string, 0, len(ids))
	for _, id := range ids {
		ok, err := keep(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNodeNotFound) {
				continue
			}
			return nil, err
		}
		if ok {
			servers = append(servers, id)
		}
	}
	return servers, nil
}
