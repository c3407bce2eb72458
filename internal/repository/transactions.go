package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketly/wallet-service/internal/models"
)

// InsertTransaction appends a ledger entry. Entries are never updated or
// deleted afterwards.
func (r *Repository) InsertTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, user_id, description, amount, kind, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		tx.ID, tx.UserID, tx.Description, tx.Amount, tx.Kind, tx.Category).
		Scan(&tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// ListTransactions retrieves the user's ledger, newest first
func (r *Repository) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, description, amount, kind, category, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.Kind, &t.Category, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// MonthlyIncomeExpense sums income and expense entries for the given month
func (r *Repository) MonthlyIncomeExpense(ctx context.Context, userID string, year int, month int) (*models.IncomeExpenseStats, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0)
		FROM transactions
		WHERE user_id = $1
		  AND EXTRACT(YEAR FROM created_at) = $2
		  AND EXTRACT(MONTH FROM created_at) = $3`
	stats := &models.IncomeExpenseStats{}
	err := r.db.QueryRowContext(ctx, query, userID, year, month).
		Scan(&stats.Income, &stats.Expense)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly stats: %w", err)
	}
	stats.NetBalance = stats.Income.Sub(stats.Expense)
	return stats, nil
}
