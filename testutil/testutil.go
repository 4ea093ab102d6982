// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/coinchanger/auth"
	"github.com/danielhkuo/coinchanger/cliparse"
	"github.com/danielhkuo/coinchanger/db"
	"github.com/danielhkuo/coinchanger/models"
)

// TestPassword is the password of every user created by CreateTestUser
const TestPassword = "password123"

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: db.TypeSQLite,
		JWTSecret:    "test-jwt-secret",
		TokenTTL:     cliparse.DefaultTokenTTL,
		AdminEmail:   cliparse.DefaultAdminEmail,
		CacheTTL:     cliparse.DefaultCacheTTL,
		MaxAmount:    cliparse.DefaultMaxAmount,
		MaxCoins:     cliparse.DefaultMaxCoins,
		MaxSeries:    cliparse.DefaultMaxSeries,
	}
}

// NewTokenService returns the token service matching cfg
func NewTokenService(cfg cliparse.Config) *auth.TokenService {
	return auth.NewTokenService(cfg.JWTSecret, auth.Issuer, cfg.TokenTTL)
}

// CreateTestUser inserts a user with TestPassword and the given role
func CreateTestUser(t *testing.T, conn *sql.DB, name, email, role string) models.User {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user, err := db.CreateUser(context.Background(), conn, name, email, hash, role)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// AuthHeader issues a token for user and returns it as request headers
func AuthHeader(t *testing.T, cfg cliparse.Config, user models.User) map[string]string {
	t.Helper()

	token, err := NewTokenService(cfg).Issue(user)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	return map[string]string{"Authorization": "Bearer " + token}
}

// SaveTestCalculation stores a calculation for user and returns its ID
func SaveTestCalculation(t *testing.T, conn *sql.DB, user models.User, amount int, coins []int, minCoins int) string {
	t.Helper()

	id, err := db.SaveCalculation(context.Background(), conn, models.Calculation{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		Amount:    amount,
		Coins:     coins,
		Result:    json.RawMessage(`{}`),
		MinCoins:  minCoins,
	})
	if err != nil {
		t.Fatalf("Failed to save test calculation: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var jsonBody []byte
		if raw, ok := body.(string); ok {
			jsonBody = []byte(raw)
		} else {
			jsonBody, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
