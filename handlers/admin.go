// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/coinchanger/db"
	"github.com/danielhkuo/coinchanger/middleware"
	"github.com/danielhkuo/coinchanger/models"
)

// AdminHandler serves the admin dashboard. Every route requires RequireAdmin.
type AdminHandler struct {
	db *sql.DB
}

func NewAdminHandler(conn *sql.DB) *AdminHandler {
	return &AdminHandler{db: conn}
}

// Users handles GET /api/admin/users
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := db.ListUsers(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	for i := range users {
		users[i].CreatedAgo = humanize.Time(users[i].CreatedAt)
	}

	slog.Info("admin viewed users", "total", len(users))

	middleware.JSONResponse(w, http.StatusOK, models.AdminUsersResponse{
		Message: "Users retrieved successfully",
		Total:   len(users),
		Users:   users,
	})
}

// Calculations handles GET /api/admin/calculations
func (h *AdminHandler) Calculations(w http.ResponseWriter, r *http.Request) {
	calcs, err := db.ListCalculations(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to list calculations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching calculations")
		return
	}
	for i := range calcs {
		calcs[i].CreatedAgo = humanize.Time(calcs[i].CreatedAt)
	}

	slog.Info("admin viewed calculations", "total", len(calcs))

	middleware.JSONResponse(w, http.StatusOK, models.AdminCalculationsResponse{
		Message:      "Calculations retrieved successfully",
		Total:        len(calcs),
		Calculations: calcs,
	})
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalUsers, err := db.CountUsers(ctx, h.db)
	if err != nil {
		slog.Error("failed to count users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching stats")
		return
	}
	admins, err := db.CountUsersByRole(ctx, h.db, models.RoleAdmin)
	if err != nil {
		slog.Error("failed to count admins", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching stats")
		return
	}
	totalCalcs, err := db.CountCalculations(ctx, h.db)
	if err != nil {
		slog.Error("failed to count calculations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching stats")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		TotalUsers:        totalUsers,
		Admins:            admins,
		RegularUsers:      totalUsers - admins,
		TotalCalculations: totalCalcs,
	})
}
