package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketly/wallet-service/internal/models"
)

// CreateWallet creates a new wallet in the database
func (r *Repository) CreateWallet(ctx context.Context, wallet *models.Wallet) error {
	if wallet.ID == "" {
		wallet.ID = uuid.New().String()
	}
	query := `
		INSERT INTO wallets (id, user_id, name, kind, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		wallet.ID, wallet.UserID, wallet.Name, wallet.Kind, wallet.Balance).
		Scan(&wallet.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// FindWalletByID retrieves a wallet owned by the given user
func (r *Repository) FindWalletByID(ctx context.Context, userID, walletID string) (*models.Wallet, error) {
	wallet := &models.Wallet{}
	query := `
		SELECT id, user_id, name, kind, balance, created_at
		FROM wallets
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, walletID, userID).
		Scan(&wallet.ID, &wallet.UserID, &wallet.Name, &wallet.Kind, &wallet.Balance, &wallet.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("wallet not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}
	return wallet, nil
}

// ListWallets retrieves all wallets owned by the given user
func (r *Repository) ListWallets(ctx context.Context, userID string) ([]models.Wallet, error) {
	query := `
		SELECT id, user_id, name, kind, balance, created_at
		FROM wallets
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []models.Wallet
	for rows.Next() {
		var w models.Wallet
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Kind, &w.Balance, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}

// AdjustWalletBalance applies a signed delta to a wallet balance as a single
// row update. The store does not reject a negative result; the transfer
// coordinator is the only guard against overdrawing.
func (r *Repository) AdjustWalletBalance(ctx context.Context, userID, walletID string, delta decimal.Decimal) error {
	query := `
		UPDATE wallets
		SET balance = balance + $1
		WHERE id = $2 AND user_id = $3`
	result, err := r.db.ExecContext(ctx, query, delta, walletID, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust wallet balance: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("wallet not found")
	}
	return nil
}
