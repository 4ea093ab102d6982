// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/coinchanger/cliparse"
	"github.com/danielhkuo/coinchanger/middleware"
	"github.com/danielhkuo/coinchanger/models"
)

type HealthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewHealthHandler(conn *sql.DB, cfg cliparse.Config) *HealthHandler {
	return &HealthHandler{db: conn, cfg: cfg}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		middleware.JSONResponse(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status:   "error",
			Message:  "Database unavailable",
			Database: h.cfg.DatabaseType,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Message:  "Server is running",
		Database: h.cfg.DatabaseType,
	})
}
