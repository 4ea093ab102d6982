// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/coinchanger/auth"
	"github.com/danielhkuo/coinchanger/cache"
	"github.com/danielhkuo/coinchanger/cliparse"
	"github.com/danielhkuo/coinchanger/handlers"
	"github.com/danielhkuo/coinchanger/metrics"
	"github.com/danielhkuo/coinchanger/middleware"
)

// NewRouter builds the API mux with a fresh metrics registry and a cache
// chosen from cfg: Redis when RedisAddr is set, memory otherwise. The caller
// owns the returned cache and closes it on shutdown.
func NewRouter(db *sql.DB, cfg cliparse.Config) (*http.ServeMux, cache.Cache) {
	solveCache := NewCache(cfg)
	return NewRouterWith(db, cfg, solveCache, metrics.New()), solveCache
}

// NewCache picks the solve cache for cfg
func NewCache(cfg cliparse.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemory(cache.DefaultCapacity, cfg.CacheTTL)
	}

	rdb := cache.NewRedis(cfg.RedisAddr, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx); err != nil {
		slog.Warn("redis unreachable, solves will not be cached until it is", "addr", cfg.RedisAddr, "error", err)
	} else {
		slog.Info("using redis solve cache", "addr", cfg.RedisAddr)
	}
	return rdb
}

// NewRouterWith is NewRouter with explicit cache and metrics
func NewRouterWith(db *sql.DB, cfg cliparse.Config, solveCache cache.Cache, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	tokens := auth.NewTokenService(cfg.JWTSecret, auth.Issuer, cfg.TokenTTL)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	solveHandler := handlers.NewSolveHandler(cfg, solveCache, m)
	authHandler := handlers.NewAuthHandler(db, tokens, m)
	calcHandler := handlers.NewCalculationHandler(db, cfg, m)
	adminHandler := handlers.NewAdminHandler(db)

	// Health check and metrics
	mux.HandleFunc("GET /api/health", middleware.WithLogging(healthHandler.Health))
	mux.Handle("GET /metrics", m.Handler())

	// Solver (public)
	mux.HandleFunc("POST /api/coin-change/solve", middleware.WithLogging(solveHandler.Solve))
	mux.HandleFunc("POST /api/coin-change/compare", middleware.WithLogging(solveHandler.Compare))
	mux.HandleFunc("GET /api/coin-change/series", middleware.WithLogging(solveHandler.Series))

	// Accounts
	mux.HandleFunc("POST /api/auth/signup", middleware.WithLogging(authHandler.Signup))
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /api/auth/verify", middleware.WithLogging(middleware.RequireAuth(tokens, authHandler.Verify)))

	// Saved calculations (bearer token)
	mux.HandleFunc("POST /api/calculations/save", middleware.WithLogging(middleware.RequireAuth(tokens, calcHandler.Save)))
	mux.HandleFunc("GET /api/calculations/history", middleware.WithLogging(middleware.RequireAuth(tokens, calcHandler.History)))

	// Admin dashboard (admin role)
	mux.HandleFunc("GET /api/admin/users", middleware.WithLogging(middleware.RequireAdmin(tokens, adminHandler.Users)))
	mux.HandleFunc("GET /api/admin/calculations", middleware.WithLogging(middleware.RequireAdmin(tokens, adminHandler.Calculations)))
	mux.HandleFunc("GET /api/admin/stats", middleware.WithLogging(middleware.RequireAdmin(tokens, adminHandler.Stats)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("coinchanger API v1"))
	})

	// Everything else
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Route not found")
	})

	return mux
}
