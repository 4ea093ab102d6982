// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/coinchanger/changer"
	"github.com/danielhkuo/coinchanger/metrics"
	"github.com/danielhkuo/coinchanger/middleware"
	"github.com/danielhkuo/coinchanger/models"
	tu "github.com/danielhkuo/coinchanger/testutil"
)

func intPtr(n int) *int { return &n }

func TestSaveCalculation(t *testing.T) {
	db := tu.SetupTestDB(t)
	cfg := tu.GetTestConfig()
	tokens := tu.NewTokenService(cfg)
	calcHandler := NewCalculationHandler(db, cfg, metrics.New())
	save := middleware.RequireAuth(tokens, calcHandler.Save)
	history := middleware.RequireAuth(tokens, calcHandler.History)

	user := tu.CreateTestUser(t, db, "Alice", "alice@example.com", models.RoleUser)
	headers := tu.AuthHeader(t, cfg, user)

	testCases := []struct {
		name           string
		body           any
		expectedStatus int
	}{
		{
			name:           "client supplied result",
			body:           models.SaveCalculationRequest{Amount: intPtr(6), Coins: []int{1, 3, 4}, Result: json.RawMessage(`{"note":"mine"}`), MinCoins: intPtr(2)},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "server computes result",
			body:           models.SaveCalculationRequest{Amount: intPtr(63), Coins: []int{1, 5, 10, 25}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "zero amount is allowed",
			body:           models.SaveCalculationRequest{Amount: intPtr(0), Coins: []int{1}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing amount",
			body:           models.SaveCalculationRequest{Coins: []int{1}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing coins",
			body:           models.SaveCalculationRequest{Amount: intPtr(5)},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative amount",
			body:           models.SaveCalculationRequest{Amount: intPtr(-5), Coins: []int{1}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no valid coins",
			body:           models.SaveCalculationRequest{Amount: intPtr(5), Coins: []int{0, -1}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "amount over limit",
			body:           models.SaveCalculationRequest{Amount: intPtr(cfg.MaxAmount + 1), Coins: []int{1}},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	created := 0
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := tu.MakeRequest("POST", "/api/calculations/save", tc.body, headers)
			w := httptest.NewRecorder()

			save(w, req)

			tu.AssertStatus(t, w, tc.expectedStatus)

			if tc.expectedStatus == http.StatusCreated {
				created++
				var resp models.SaveCalculationResponse
				tu.AssertJSON(t, w, &resp)
				if resp.ID == "" {
					t.Error("Expected calculation ID")
				}
			}
		})
	}

	t.Run("history lists saved calculations", func(t *testing.T) {
		req := tu.MakeRequest("GET", "/api/calculations/history", nil, headers)
		w := httptest.NewRecorder()

		history(w, req)

		tu.AssertStatus(t, w, http.StatusOK)

		var resp models.HistoryResponse
		tu.AssertJSON(t, w, &resp)

		if len(resp.Calculations) != created {
			t.Fatalf("Expected %d calculations, got %d", created, len(resp.Calculations))
		}

		byAmount := map[int]models.Calculation{}
		for _, c := range resp.Calculations {
			if c.UserID != user.ID {
				t.Errorf("Calculation %s belongs to %s", c.ID, c.UserID)
			}
			byAmount[c.Amount] = c
		}

		mine := byAmount[6]
		if string(mine.Result) != `{"note":"mine"}` || mine.MinCoins != 2 {
			t.Errorf("Client result not stored as sent: %s min=%d", mine.Result, mine.MinCoins)
		}

		computed := byAmount[63]
		if computed.MinCoins != 6 {
			t.Errorf("Expected min_coins 6 for 63, got %d", computed.MinCoins)
		}
		var cmp changer.Comparison
		if err := json.Unmarshal(computed.Result, &cmp); err != nil {
			t.Fatalf("Computed result is not a comparison: %v", err)
		}
		if !cmp.Summary.GreedyIsOptimal {
			t.Error("Greedy is optimal for US coins")
		}
	})
}

func TestSaveCalculation_RequiresToken(t *testing.T) {
	db := tu.SetupTestDB(t)
	cfg := tu.GetTestConfig()
	save := middleware.RequireAuth(tu.NewTokenService(cfg), NewCalculationHandler(db, cfg, metrics.New()).Save)

	body := models.SaveCalculationRequest{Amount: intPtr(6), Coins: []int{1, 3, 4}}
	req := tu.MakeRequest("POST", "/api/calculations/save", body, nil)
	w := httptest.NewRecorder()

	save(w, req)

	tu.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestHistory_OnlyOwnCalculations(t *testing.T) {
	db := tu.SetupTestDB(t)
	cfg := tu.GetTestConfig()
	history := middleware.RequireAuth(tu.NewTokenService(cfg), NewCalculationHandler(db, cfg, metrics.New()).History)

	alice := tu.CreateTestUser(t, db, "Alice", "alice@example.com", models.RoleUser)
	bob := tu.CreateTestUser(t, db, "Bob", "bob@example.com", models.RoleUser)
	tu.SaveTestCalculation(t, db, alice, 10, []int{1, 5}, 2)
	tu.SaveTestCalculation(t, db, bob, 7, []int{1, 2}, 4)
	tu.SaveTestCalculation(t, db, bob, 8, []int{1, 2}, 4)

	testCases := []struct {
		user     models.User
		expected int
	}{
		{alice, 1},
		{bob, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.user.Name, func(t *testing.T) {
			req := tu.MakeRequest("GET", "/api/calculations/history", nil, tu.AuthHeader(t, cfg, tc.user))
			w := httptest.NewRecorder()

			history(w, req)

			tu.AssertStatus(t, w, http.StatusOK)

			var resp models.HistoryResponse
			tu.AssertJSON(t, w, &resp)
			if len(resp.Calculations) != tc.expected {
				t.Errorf("Expected %d calculations, got %d", tc.expected, len(resp.Calculations))
			}
		})
	}

	t.Run("empty history is an empty list", func(t *testing.T) {
		carol := tu.CreateTestUser(t, db, "Carol", "carol@example.com", models.RoleUser)
		req := tu.MakeRequest("GET", "/api/calculations/history", nil, tu.AuthHeader(t, cfg, carol))
		w := httptest.NewRecorder()

		history(w, req)

		tu.AssertStatus(t, w, http.StatusOK)
		if got := w.Body.String(); got != "{\"calculations\":[]}\n" {
			t.Errorf("Expected empty list, got %s", got)
		}
	})
}
