// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/coinchanger/cache"
	"github.com/danielhkuo/coinchanger/changer"
	"github.com/danielhkuo/coinchanger/cliparse"
	"github.com/danielhkuo/coinchanger/metrics"
	"github.com/danielhkuo/coinchanger/middleware"
	"github.com/danielhkuo/coinchanger/models"
)

// DefaultSeriesMax is used when the series request has no max parameter.
const DefaultSeriesMax = 100

type SolveHandler struct {
	cfg     cliparse.Config
	cache   cache.Cache
	metrics *metrics.Metrics
}

func NewSolveHandler(cfg cliparse.Config, c cache.Cache, m *metrics.Metrics) *SolveHandler {
	return &SolveHandler{cfg: cfg, cache: c, metrics: m}
}

// Solve handles POST /api/coin-change/solve
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req models.SolveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.respond(w, r, req, changer.ParseMode(req.Algorithm))
}

// Compare handles POST /api/coin-change/compare
func (h *SolveHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req models.SolveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.respond(w, r, req, changer.ModeBoth)
}

func (h *SolveHandler) respond(w http.ResponseWriter, r *http.Request, req models.SolveRequest, mode changer.Mode) {
	amount, coins, err := changer.DecodeInput(req.Amount, req.Coins)
	if err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, err)
		return
	}
	if !h.withinLimits(w, amount, coins) {
		return
	}

	// Coin order is part of the key: it decides ties in the dynamic solver
	key := fmt.Sprintf("%s:%d:%s", mode, amount, changer.FormatDenominations(coins))
	if body, ok := h.cache.Get(r.Context(), key); ok {
		h.metrics.ObserveCache(true)
		middleware.JSONResponse(w, http.StatusOK, json.RawMessage(body))
		return
	}
	h.metrics.ObserveCache(false)

	start := time.Now()
	outcome := changer.Solve(amount, coins, mode)
	h.metrics.ObserveSolve(string(mode), outcomeLabel(outcome), time.Since(start))

	body, err := json.Marshal(outcome)
	if err != nil {
		slog.Error("failed to encode solve outcome", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to solve")
		return
	}
	if err := h.cache.Set(r.Context(), key, body); err != nil {
		slog.Warn("failed to cache solve outcome", "key", key, "error", err)
	}

	slog.Debug("solved", "mode", mode, "amount", amount, "coins", coins, "success", outcome.Success())

	middleware.JSONResponse(w, http.StatusOK, json.RawMessage(body))
}

// Series handles GET /api/coin-change/series?coins=1,3,4&max=200
func (h *SolveHandler) Series(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	coins := changer.ParseDenominations(query.Get("coins"))

	maxAmount := DefaultSeriesMax
	if raw := query.Get("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			middleware.JSONResponse(w, http.StatusBadRequest, changer.ErrInvalidAmount)
			return
		}
		maxAmount = n
	}

	capped := false
	if h.cfg.MaxSeries > 0 && maxAmount > h.cfg.MaxSeries {
		maxAmount = h.cfg.MaxSeries
		capped = true
	}
	if !h.withinLimits(w, 0, coins) {
		return
	}

	start := time.Now()
	series, err := changer.NewSeries(maxAmount, coins)
	if err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, err)
		return
	}
	h.metrics.ObserveSolve("series", "success", time.Since(start))

	middleware.JSONResponse(w, http.StatusOK, models.SeriesResponse{
		Series:     series,
		Max:        maxAmount,
		Capped:     capped,
		Suboptimal: nonNil(series.Suboptimal()),
	})
}

// withinLimits enforces the configured input ceilings, writing 422 when
// either is exceeded.
func (h *SolveHandler) withinLimits(w http.ResponseWriter, amount int, coins []int) bool {
	if h.cfg.MaxAmount > 0 && amount > h.cfg.MaxAmount {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("Amount must not exceed %d", h.cfg.MaxAmount))
		return false
	}
	if h.cfg.MaxCoins > 0 && len(coins) > h.cfg.MaxCoins {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("At most %d coin denominations are allowed", h.cfg.MaxCoins))
		return false
	}
	return true
}

func outcomeLabel(o changer.Outcome) string {
	if o.Success() {
		return "success"
	}
	return "infeasible"
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
