package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketly/wallet-service/internal/models"
)

// CreateInvestment creates a new investment holding in the database
func (r *Repository) CreateInvestment(ctx context.Context, inv *models.Investment) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO investments (id, user_id, name, symbol, quantity, current_value)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.UserID, inv.Name, inv.Symbol, inv.Quantity, inv.CurrentValue)
	if err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

// ListInvestments retrieves all investments owned by the given user
func (r *Repository) ListInvestments(ctx context.Context, userID string) ([]models.Investment, error) {
	query := `
		SELECT id, user_id, name, symbol, quantity, current_value
		FROM investments
		WHERE user_id = $1
		ORDER BY symbol`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()
	return scanInvestments(rows)
}

// ListAllInvestments retrieves every investment row, used by the
// quote-refresh job which revalues holdings across all users.
func (r *Repository) ListAllInvestments(ctx context.Context) ([]models.Investment, error) {
	query := `
		SELECT id, user_id, name, symbol, quantity, current_value
		FROM investments
		ORDER BY symbol`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()
	return scanInvestments(rows)
}

// UpdateInvestmentValue stores a fresh valuation for a holding
func (r *Repository) UpdateInvestmentValue(ctx context.Context, id string, value decimal.Decimal) error {
	query := `
		UPDATE investments
		SET current_value = $1
		WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("failed to update investment value: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("investment not found")
	}
	return nil
}

func scanInvestments(rows *sql.Rows) ([]models.Investment, error) {
	var invs []models.Investment
	for rows.Next() {
		var inv models.Investment
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.Name, &inv.Symbol, &inv.Quantity, &inv.CurrentValue); err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}
