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

// Package monitor exposes a small HTTP endpoint to inspect a job: a health
// check and a dump of the job namespace.
package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	stdhttp "net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tochemey/elasticjob/internal/http"
	"github.com/tochemey/elasticjob/internal/jobpath"
	"github.com/tochemey/elasticjob/internal/validation"
	"github.com/tochemey/elasticjob/log"
	"github.com/tochemey/elasticjob/store"
)

// Service serves the monitor endpoints of one job
type Service struct {
	store  store.Store
	path   jobpath.Path
	host   string
	port   int
	logger log.Logger

	mu       sync.Mutex
	server   *stdhttp.Server
	listener net.Listener
	done     chan struct{}
}

// New creates an instance of Service. A port less or equal to zero disables the monitor.
func New(st store.Store, jobName, host string, port int, logger log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger
	}
	if host == "" {
		host = "127.0.0.1"
	}
	return &Service{
		store:  st,
		path:   jobpath.New(jobName),
		host:   host,
		port:   port,
		logger: logger,
	}
}

// Listen starts serving
func (s *Service) Listen(ctx context.Context) error {
	if s.port <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server != nil {
		return nil
	}

	address := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	if err := validation.NewTCPAddressValidator(address).Validate(); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("monitor: failed to listen on %s: %w", address, err)
	}

	server := http.NewServer(s.router())
	server.BaseContext = func(net.Listener) context.Context { return context.WithoutCancel(ctx) }

	s.server = server
	s.listener = listener
	s.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		if err := server.Serve(listener); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			s.logger.Errorf("job=(%s) monitor stopped: %v", s.path.JobName(), err)
		}
	}(s.done)

	s.logger.Infof("job=(%s) monitor listening on %s", s.path.JobName(), listener.Addr().String())
	return nil
}

// Address returns the address the monitor listens on, empty when not listening
func (s *Service) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Close stops serving
func (s *Service) Close(ctx context.Context) error {
	s.mu.Lock()
	server, done := s.server, s.done
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if server == nil {
		return nil
	}

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("monitor: failed to shutdown: %w", err)
	}
	<-done
	return nil
}

func (s *Service) router() stdhttp.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/health", s.health)
	router.Get("/dump", s.dump)
	return router
}

func (s *Service) health(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	writeJSON(w, stdhttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) dump(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	nodes := make(map[string]string)
	if err := s.walk(r.Context(), s.path.Root(), nodes); err != nil {
		s.logger.Errorf("job=(%s) failed to dump: %v", s.path.JobName(), err)
		writeJSON(w, stdhttp.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, stdhttp.StatusOK, nodes)
}

func (s *Service) walk(ctx context.Context, path string, nodes map[string]string) error {
	node, err := s.store.Get(ctx, path)
	switch {
	case err == nil:
		nodes[path] = string(node.Value)
	case !errors.Is(err, store.ErrNodeNotFound):
		return err
	}

	children, err := s.store.Children(ctx, path)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.walk(ctx, store.Join(path, child), nodes); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w stdhttp.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
