// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# CORS Middleware

Enable cross-origin requests for the calculator frontend:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
	}

With an empty allowlist every origin is echoed back. Allows methods
GET, POST, PUT, DELETE, OPTIONS with headers Content-Type, Authorization.

# Authentication

RequireAuth checks the "Authorization: Bearer <token>" header and stores
the token claims in the request context:

	mux.HandleFunc("GET /api/calculations/history",
		middleware.WithLogging(middleware.RequireAuth(tokens, h.History)))

	claims, _ := middleware.ClaimsFromContext(r.Context())

RequireAdmin additionally rejects non-admin tokens with 403.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
