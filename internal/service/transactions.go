package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketly/wallet-service/internal/models"
)

// RecordTransaction appends an income or expense entry to the ledger and,
// when a wallet is given, posts the amount against its balance. The two
// writes are independent rows, same as the transfer path.
func (s *Service) RecordTransaction(ctx context.Context, description, amountText string, kind models.TransactionKind, category, walletID string) (*models.Transaction, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if kind != models.TransactionIncome && kind != models.TransactionExpense {
		return nil, &ValidationError{Reason: "transaction kind must be income or expense"}
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(amountText))
	if err != nil {
		return nil, &ValidationError{Reason: "amount must be a number"}
	}
	if !amount.IsPositive() {
		return nil, &ValidationError{Reason: "amount must be greater than zero"}
	}

	tx := &models.Transaction{
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
	}
	if err := s.store.InsertTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if walletID != "" {
		delta := amount
		if kind == models.TransactionExpense {
			delta = amount.Neg()
		}
		if err := s.store.AdjustWalletBalance(ctx, userID, walletID, delta); err != nil {
			// Ledger entry already written; surface the same partial-failure
			// shape as the transfer path.
			return nil, &PartialFailure{Applied: []string{writeLedgerEntry}, Err: err}
		}
	}

	s.log.Infof("Transaction recorded for user %s: %s %s", userID, kind, amount.String())
	return tx, nil
}

// ListTransactions returns the authenticated user's ledger, newest first
func (s *Service) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTransactions(ctx, userID)
}
