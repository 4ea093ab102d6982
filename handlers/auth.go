// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/coinchanger/auth"
	"github.com/danielhkuo/coinchanger/db"
	"github.com/danielhkuo/coinchanger/metrics"
	"github.com/danielhkuo/coinchanger/middleware"
	"github.com/danielhkuo/coinchanger/models"
)

type AuthHandler struct {
	db      *sql.DB
	tokens  *auth.TokenService
	metrics *metrics.Metrics
}

func NewAuthHandler(conn *sql.DB, tokens *auth.TokenService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{db: conn, tokens: tokens, metrics: m}
}

// NormalizeEmail lowercases and trims an email address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	email := NormalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if len(req.Password) < models.MinPasswordLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Password is too long")
		return
	}
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	user, err := db.CreateUser(r.Context(), h.db, name, email, hash, models.RoleUser)
	if errors.Is(err, db.ErrEmailTaken) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		slog.Error("failed to issue token", "user_id", user.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	h.metrics.Signups.Inc()
	slog.Info("user registered", "user_id", user.ID, "email", email)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    user,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := db.FindUserByEmail(r.Context(), h.db, email)
	if errors.Is(err, db.ErrNotFound) {
		h.metrics.ObserveLogin(false)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error logging in")
		return
	}

	if err := auth.CheckPassword(req.Password, user.PasswordHash); err != nil {
		h.metrics.ObserveLogin(false)
		slog.Warn("failed login", "email", email)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		slog.Error("failed to issue token", "user_id", user.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error logging in")
		return
	}

	h.metrics.ObserveLogin(true)
	slog.Info("user logged in", "user_id", user.ID, "email", email)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// Verify handles GET /api/auth/verify (requires RequireAuth)
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No token provided")
		return
	}

	user, err := db.FindUserByID(r.Context(), h.db, claims.UserID)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "user_id", claims.UserID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VerifyResponse{User: user})
}
