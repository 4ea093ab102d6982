// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielhkuo/coinchanger/auth"
	"github.com/danielhkuo/coinchanger/models"
)

const calculationColumns = `id, user_id, user_name, user_email, amount, coins, result, min_coins, created_at`

// SaveCalculation stores a calculation and returns its ID.
// Coins and Result are stored as JSON text.
func SaveCalculation(ctx context.Context, db *sql.DB, calc models.Calculation) (string, error) {
	id, err := auth.GenerateID(16)
	if err != nil {
		return "", err
	}

	coins, err := json.Marshal(calc.Coins)
	if err != nil {
		return "", fmt.Errorf("failed to encode coins: %w", err)
	}
	result := calc.Result
	if len(result) == 0 {
		result = json.RawMessage("null")
	}

	createdAt := calc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO calculations (id, user_id, user_name, user_email, amount, coins, result, min_coins, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, calc.UserID, calc.UserName, calc.UserEmail, calc.Amount, string(coins), string(result), calc.MinCoins, createdAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert calculation: %w", err)
	}

	return id, nil
}

// ListCalculations returns every saved calculation, newest first.
func ListCalculations(ctx context.Context, db *sql.DB) ([]models.Calculation, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+calculationColumns+`
		FROM calculations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	return scanCalculations(rows)
}

// ListCalculationsByUser returns the user's calculations, newest first.
func ListCalculationsByUser(ctx context.Context, db *sql.DB, userID string) ([]models.Calculation, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+calculationColumns+`
		FROM calculations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	return scanCalculations(rows)
}

// CountCalculations returns the number of saved calculations.
func CountCalculations(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM calculations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count calculations: %w", err)
	}
	return n, nil
}

func scanCalculations(rows *sql.Rows) ([]models.Calculation, error) {
	defer rows.Close()

	calcs := []models.Calculation{}
	for rows.Next() {
		var calc models.Calculation
		var coins, result string
		if err := rows.Scan(
			&calc.ID,
			&calc.UserID,
			&calc.UserName,
			&calc.UserEmail,
			&calc.Amount,
			&coins,
			&result,
			&calc.MinCoins,
			&calc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}

		if err := json.Unmarshal([]byte(coins), &calc.Coins); err != nil {
			return nil, fmt.Errorf("failed to decode coins for calculation %s: %w", calc.ID, err)
		}
		calc.Result = json.RawMessage(result)

		calcs = append(calcs, calc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calculations: %w", err)
	}

	return calcs, nil
}
