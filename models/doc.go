// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

Solver results are not defined here; handlers return changer.Outcome,
changer.Comparison and changer.Series directly.

# Request Types

  - SolveRequest: amount, coins (raw JSON), algorithm
  - SignupRequest: name, email, password
  - LoginRequest: email, password
  - SaveCalculationRequest: amount, coins, result, min_coins

# Response Types

  - AuthResponse: message, token, user
  - VerifyResponse: user
  - SaveCalculationResponse: message, id
  - HistoryResponse: calculations
  - AdminUsersResponse, AdminCalculationsResponse: message, total, rows
  - StatsResponse: total_users, admins, regular_users, total_calculations
  - HealthResponse: status, message, database
  - ErrorResponse: error, message

# Domain Types

  - User: account with role; the password hash never leaves the server
  - Calculation: a saved solve with its result payload

# Constants

Roles:

	RoleUser  = "user"
	RoleAdmin = "admin"
*/
package models
