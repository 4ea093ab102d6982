// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"

	"github.com/danielhkuo/coinchanger/changer"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6

// Request types

// SolveRequest carries raw amount and coins so the solver can apply its own
// validation to whatever the client sent.
type SolveRequest struct {
	Amount    json.RawMessage `json:"amount"`
	Coins     json.RawMessage `json:"coins"`
	Algorithm string          `json:"algorithm,omitempty"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SaveCalculationRequest stores a calculation for the caller. When Result is
// omitted the server solves the input itself.
type SaveCalculationRequest struct {
	Amount   *int            `json:"amount"`
	Coins    []int           `json:"coins"`
	Result   json.RawMessage `json:"result,omitempty"`
	MinCoins *int            `json:"minCoins,omitempty"`
}

// Response types

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type VerifyResponse struct {
	User User `json:"user"`
}

type SaveCalculationResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// SeriesResponse is chart data for amounts 1..Max.
type SeriesResponse struct {
	changer.Series
	Max        int   `json:"max"`
	Capped     bool  `json:"capped"`
	Suboptimal []int `json:"suboptimal"`
}

type HistoryResponse struct {
	Calculations []Calculation `json:"calculations"`
}

type AdminUsersResponse struct {
	Message string `json:"message"`
	Total   int    `json:"total"`
	Users   []User `json:"users"`
}

type AdminCalculationsResponse struct {
	Message      string        `json:"message"`
	Total        int           `json:"total"`
	Calculations []Calculation `json:"calculations"`
}

type StatsResponse struct {
	TotalUsers        int `json:"totalUsers"`
	Admins            int `json:"admins"`
	RegularUsers      int `json:"regularUsers"`
	TotalCalculations int `json:"totalCalculations"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedAgo   string    `json:"created_ago,omitempty"`
}

type Calculation struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name,omitempty"`
	UserEmail  string          `json:"user_email,omitempty"`
	Amount     int             `json:"amount"`
	Coins      []int           `json:"coins"`
	Result     json.RawMessage `json:"result"`
	MinCoins   int             `json:"min_coins"`
	CreatedAt  time.Time       `json:"created_at"`
	CreatedAgo string          `json:"created_ago,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
