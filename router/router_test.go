// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/coinchanger/cache"
	"github.com/danielhkuo/coinchanger/metrics"
	"github.com/danielhkuo/coinchanger/models"
	"github.com/danielhkuo/coinchanger/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux, solveCache := NewRouter(db, cfg)
	defer solveCache.Close()

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp models.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Database != "sqlite" {
		t.Errorf("Unexpected health response: %+v", resp)
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux, solveCache := NewRouter(db, cfg)
	defer solveCache.Close()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "coinchanger API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux, solveCache := NewRouter(db, cfg)
	defer solveCache.Close()

	// Every route must reach its handler; 400 and 401 are valid answers
	// for empty requests, 404 means the route is missing.
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/health"},
		{"GET", "/metrics"},

		{"POST", "/api/coin-change/solve"},
		{"POST", "/api/coin-change/compare"},
		{"GET", "/api/coin-change/series"},

		{"POST", "/api/auth/signup"},
		{"POST", "/api/auth/login"},
		{"GET", "/api/auth/verify"},

		{"POST", "/api/calculations/save"},
		{"GET", "/api/calculations/history"},

		{"GET", "/api/admin/users"},
		{"GET", "/api/admin/calculations"},
		{"GET", "/api/admin/stats"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusNotFound {
				t.Errorf("Route %s %s returned 404, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestUnknownRoutes(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux, solveCache := NewRouter(db, cfg)
	defer solveCache.Close()

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/nope"},
		{"GET", "/health"},
		{"POST", "/api/health"},            // Only GET is defined
		{"GET", "/api/coin-change/solve"}, // Only POST is defined
		{"DELETE", "/api/admin/users"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Fatalf("Expected 404 for %s %s, got %d", tc.method, tc.path, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Message != "Route not found" {
				t.Errorf("Expected message 'Route not found', got '%s'", resp.Message)
			}
		})
	}
}

func TestProtectedRoutes(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux, solveCache := NewRouter(db, cfg)
	defer solveCache.Close()

	user := testutil.CreateTestUser(t, db, "Alice", "alice@example.com", models.RoleUser)
	userHeaders := testutil.AuthHeader(t, cfg, user)

	testCases := []struct {
		name           string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{"history without token", "/api/calculations/history", nil, http.StatusUnauthorized},
		{"history with token", "/api/calculations/history", userHeaders, http.StatusOK},
		{"admin without token", "/api/admin/stats", nil, http.StatusUnauthorized},
		{"admin as regular user", "/api/admin/stats", userHeaders, http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", tc.path, nil, tc.headers)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}

func TestSolveCachedAcrossRequests(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	solveCache := cache.NewMemory(16, 0)
	m := metrics.New()
	mux := NewRouterWith(db, cfg, solveCache, m)

	body := `{"amount":63,"coins":[1,5,10,25],"algorithm":"greedy"}`
	var bodies []string
	for range 2 {
		req := testutil.MakeRequest("POST", "/api/coin-change/solve", body, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		bodies = append(bodies, w.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Errorf("Cached response differs:\n%s\n%s", bodies[0], bodies[1])
	}
	if solveCache.Len() != 1 {
		t.Errorf("Expected 1 cached entry, got %d", solveCache.Len())
	}

	// The metrics endpoint reflects the hit
	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `coinchanger_cache_lookups_total{result="hit"} 1`) {
		t.Errorf("Expected one cache hit in metrics output")
	}
}

func TestNewCache(t *testing.T) {
	cfg := testutil.GetTestConfig()

	if _, ok := NewCache(cfg).(*cache.Memory); !ok {
		t.Error("Expected memory cache without a redis address")
	}

	// Nothing listens on port 1, the cache is still returned
	cfg.RedisAddr = "127.0.0.1:1"
	c := NewCache(cfg)
	if _, ok := c.(*cache.Redis); !ok {
		t.Fatalf("Expected redis cache, got %T", c)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Expected first close to succeed, got %v", err)
	}
	if err := c.Close(); err == nil {
		t.Error("Expected closing twice to fail")
	}
}
