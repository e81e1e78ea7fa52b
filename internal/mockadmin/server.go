// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 hlxtools authors

// Package mockadmin is a test harness that stubs admin-service HTTP
// responses with fixture bodies. Tests register fixtures per route and
// point an admin client at the harness URL; the harness records request
// counts so tests can assert how often a route was hit.
package mockadmin

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fixture struct {
	status int
	body   []byte
}

// Server is a fixture-backed fake admin service. Unstubbed routes
// answer 404, matching the admin service's behavior for projects
// without a custom configuration.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	fixtures map[string]fixture
	counts   map[string]int
}

// New starts a mock admin server and registers its shutdown with the
// test's cleanup.
func New(tb testing.TB) *Server {
	tb.Helper()

	s := &Server{
		fixtures: make(map[string]fixture),
		counts:   make(map[string]int),
	}

	router := chi.NewRouter()
	router.Get("/sidekick/{owner}/{repo}/{ref}/config.json", s.serveConfig)
	router.Get(DevConfigPath, s.serveDevConfig)
	// Routes stubbed via the generic Stub helper have no pattern known
	// up front; they are dispatched from the fixture map instead.
	router.NotFound(s.serveOther)
	router.MethodNotAllowed(s.serveOther)

	s.srv = httptest.NewServer(router)
	tb.Cleanup(s.srv.Close)

	return s
}

// URL returns the base URL of the mock server, suitable for the admin
// client's BaseURL setting or as a dev origin.
func (s *Server) URL() string {
	return s.srv.URL
}

// Stub registers a fixture response for the given method and path.
func (s *Server) Stub(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixtures[routeKey(method, path)] = fixture{status: status, body: []byte(body)}
}

// StubFile registers a fixture response read from a file.
func (s *Server) StubFile(tb testing.TB, method, path string, status int, fixturePath string) {
	tb.Helper()
	body, err := os.ReadFile(fixturePath)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", fixturePath, err)
	}
	s.Stub(method, path, status, string(body))
}

// StubConfig registers a fixture for the production configuration route
// of the given project.
func (s *Server) StubConfig(owner, repo, ref string, status int, body string) {
	s.Stub(http.MethodGet, ConfigPath(owner, repo, ref), status, body)
}

// StubDevConfig registers a fixture for the local development
// configuration route.
func (s *Server) StubDevConfig(status int, body string) {
	s.Stub(http.MethodGet, DevConfigPath, status, body)
}

// Requests reports how many requests the server has received for the
// given method and path, stubbed or not.
func (s *Server) Requests(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[routeKey(method, path)]
}

// serveConfig handles the parameterized production configuration
// route, rebuilding the canonical fixture key from the project identity
// segments.
func (s *Server) serveConfig(w http.ResponseWriter, r *http.Request) {
	path := ConfigPath(
		chi.URLParam(r, "owner"),
		chi.URLParam(r, "repo"),
		chi.URLParam(r, "ref"),
	)
	s.deliver(w, r, routeKey(r.Method, path))
}

func (s *Server) serveDevConfig(w http.ResponseWriter, r *http.Request) {
	s.deliver(w, r, routeKey(r.Method, DevConfigPath))
}

func (s *Server) serveOther(w http.ResponseWriter, r *http.Request) {
	s.deliver(w, r, routeKey(r.Method, r.URL.Path))
}

func (s *Server) deliver(w http.ResponseWriter, r *http.Request, key string) {
	s.mu.Lock()
	s.counts[key]++
	fix, ok := s.fixtures[key]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(fix.status)
	_, _ = w.Write(fix.body)
}

// DevConfigPath is the local development configuration route.
const DevConfigPath = "/tools/sidekick/config.json"

// ConfigPath returns the production configuration route for a project.
func ConfigPath(owner, repo, ref string) string {
	return fmt.Sprintf("/sidekick/%s/%s/%s/config.json",
		url.PathEscape(owner),
		url.PathEscape(repo),
		url.PathEscape(ref),
	)
}

func routeKey(method, path string) string {
	return method + " " + path
}
