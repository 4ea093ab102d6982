// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the coinchanger API.

# Handler Types

Each handler is a struct holding only the dependencies it uses:

  - SolveHandler: solve, compare and series (config, cache, metrics)
  - AuthHandler: signup, login, token verification (db, tokens, metrics)
  - CalculationHandler: saving and listing a user's calculations
  - AdminHandler: dashboard listings and stats
  - HealthHandler: liveness with a database ping

Handlers are created via constructor functions:

	solveHandler := handlers.NewSolveHandler(cfg, cache, metrics)
	authHandler := handlers.NewAuthHandler(db, tokens, metrics)

# Solving

Request bodies carry amount and coins as raw JSON so the solver's own
validation decides what is acceptable:

	POST /api/coin-change/solve   {"amount": 63, "coins": [1,5,10,25], "algorithm": "greedy"}
	POST /api/coin-change/compare {"amount": 6, "coins": [1,3,4]}

Invalid input is answered with 400 and {"success": false, "message": ...}.
An amount that cannot be made exactly is a valid answer (200, success false).
Inputs over MaxAmount or MaxCoins get 422. Outcomes are cached by mode,
amount and coins; the coin order is kept in the key because it breaks ties
between equally short decompositions.

# Authentication

Signup and login return an AuthResponse with a bearer token. Routes behind
middleware.RequireAuth read the caller from middleware.ClaimsFromContext.
Emails are lowercased before storage and lookup.

# Saved Calculations

POST /api/calculations/save accepts {amount, coins, result, minCoins}.
When result or minCoins are omitted the server computes a comparison and
uses the dynamic programming count.
*/
package handlers
