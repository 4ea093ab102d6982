// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the coinchanger API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux, solveCache := router.NewRouter(db, cfg)
	defer solveCache.Close()

It owns a fresh Prometheus registry and picks the solve cache from cfg
(Redis when RedisAddr is set, in-memory otherwise). The caller closes the
returned cache. Tests that need to inspect either use NewRouterWith.

# Endpoints

Health and metrics:

	GET /api/health
	GET /metrics

Solver (public):

	POST /api/coin-change/solve   - {amount, coins, algorithm}
	POST /api/coin-change/compare - {amount, coins}
	GET  /api/coin-change/series  - ?coins=1,3,4&max=200

Accounts:

	POST /api/auth/signup
	POST /api/auth/login
	GET  /api/auth/verify - requires bearer token

Saved calculations (bearer token):

	POST /api/calculations/save
	GET  /api/calculations/history

Admin dashboard (bearer token with admin role):

	GET /api/admin/users
	GET /api/admin/calculations
	GET /api/admin/stats

Any other path or method gets 404 {"message":"Route not found"}.
*/
package router
