// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/coinchanger/changer"
	"github.com/danielhkuo/coinchanger/cliparse"
	"github.com/danielhkuo/coinchanger/db"
	"github.com/danielhkuo/coinchanger/metrics"
	"github.com/danielhkuo/coinchanger/middleware"
	"github.com/danielhkuo/coinchanger/models"
)

type CalculationHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

func NewCalculationHandler(conn *sql.DB, cfg cliparse.Config, m *metrics.Metrics) *CalculationHandler {
	return &CalculationHandler{db: conn, cfg: cfg, metrics: m}
}

// Save handles POST /api/calculations/save (requires RequireAuth)
func (h *CalculationHandler) Save(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req models.SaveCalculationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Amount == nil || len(req.Coins) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := changer.ValidateAmount(*req.Amount); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, err)
		return
	}
	coins, err := changer.FilterCoins(req.Coins)
	if err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, err)
		return
	}
	if h.cfg.MaxAmount > 0 && *req.Amount > h.cfg.MaxAmount {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("Amount must not exceed %d", h.cfg.MaxAmount))
		return
	}
	if h.cfg.MaxCoins > 0 && len(coins) > h.cfg.MaxCoins {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("At most %d coin denominations are allowed", h.cfg.MaxCoins))
		return
	}

	// Fill in whatever the client left out from a fresh comparison
	result := req.Result
	if len(result) == 0 || string(result) == "null" || req.MinCoins == nil {
		cmp := changer.Compare(*req.Amount, coins)
		if len(result) == 0 || string(result) == "null" {
			result, err = json.Marshal(cmp)
			if err != nil {
				slog.Error("failed to encode comparison", "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save calculation")
				return
			}
		}
		if req.MinCoins == nil {
			minCoins := cmp.Dynamic.TotalCoins
			req.MinCoins = &minCoins
		}
	}

	id, err := db.SaveCalculation(r.Context(), h.db, models.Calculation{
		UserID:    claims.UserID,
		UserName:  claims.Name,
		UserEmail: claims.Email,
		Amount:    *req.Amount,
		Coins:     coins,
		Result:    result,
		MinCoins:  *req.MinCoins,
	})
	if err != nil {
		slog.Error("failed to save calculation", "user_id", claims.UserID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save calculation")
		return
	}

	h.metrics.Calculations.Inc()
	slog.Info("calculation saved", "id", id, "user_id", claims.UserID, "amount", *req.Amount)

	middleware.JSONResponse(w, http.StatusCreated, models.SaveCalculationResponse{
		Message: "Calculation saved successfully",
		ID:      id,
	})
}

// History handles GET /api/calculations/history (requires RequireAuth)
func (h *CalculationHandler) History(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No token provided")
		return
	}

	calcs, err := db.ListCalculationsByUser(r.Context(), h.db, claims.UserID)
	if err != nil {
		slog.Error("failed to list calculations", "user_id", claims.UserID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get calculations")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{Calculations: calcs})
}
