package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/pocketly/wallet-service/internal/models"
)

// transferStore is the slice of the datastore the transfer coordinator
// writes through. Each method is a single-row remote write; the store
// offers no atomicity across calls.
type transferStore interface {
	AdjustWalletBalance(ctx context.Context, userID, walletID string, delta decimal.Decimal) error
	AddGoalProgress(ctx context.Context, userID, goalID string, amount decimal.Decimal) error
	InsertTransaction(ctx context.Context, tx *models.Transaction) error
}

// Names of the three writes, in issue order, as reported by PartialFailure.
const (
	writeWalletDebit = "wallet_debit"
	writeGoalCredit  = "goal_credit"
	writeLedgerEntry = "ledger_entry"
)

// TransferCoordinator moves money from a wallet into a savings goal and
// records the movement in the transaction ledger.
type TransferCoordinator struct {
	store transferStore
	log   *logrus.Logger
}

// NewTransferCoordinator initializes a new transfer coordinator
func NewTransferCoordinator(store transferStore, log *logrus.Logger) *TransferCoordinator {
	return &TransferCoordinator{store: store, log: log}
}

// Transfer debits the wallet, credits the goal and appends one transfer
// entry to the ledger. On success it returns the amount it parsed from
// amountText so callers never re-parse user input.
//
// Validation happens locally before any write: amountText must parse to a
// strictly positive decimal and the wallet snapshot must cover it. A
// violation returns *ValidationError and touches no remote state.
//
// The three writes are issued sequentially (wallet debit, goal credit,
// ledger insert) but the store only guarantees atomicity per single row.
// A failure mid-sequence leaves the earlier writes applied: the returned
// *PartialFailure lists them and nothing is rolled back. Callers must
// re-fetch wallet, goal and transaction state after any outcome.
func (c *TransferCoordinator) Transfer(ctx context.Context, goal *models.Goal, wallet *models.Wallet, amountText string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(amountText))
	if err != nil {
		return decimal.Zero, &ValidationError{Reason: "amount must be a number"}
	}
	if !amount.IsPositive() {
		return decimal.Zero, &ValidationError{Reason: "amount must be greater than zero"}
	}
	if wallet.Balance.LessThan(amount) {
		return decimal.Zero, &ValidationError{Reason: "insufficient wallet balance"}
	}

	var applied []string
	if err := c.store.AdjustWalletBalance(ctx, wallet.UserID, wallet.ID, amount.Neg()); err != nil {
		return decimal.Zero, &PartialFailure{Applied: applied, Err: err}
	}
	applied = append(applied, writeWalletDebit)

	if err := c.store.AddGoalProgress(ctx, goal.UserID, goal.ID, amount); err != nil {
		return decimal.Zero, &PartialFailure{Applied: applied, Err: err}
	}
	applied = append(applied, writeGoalCredit)

	entry := &models.Transaction{
		UserID:      wallet.UserID,
		Description: fmt.Sprintf("Transfer to %s", goal.Name),
		Amount:      amount,
		Kind:        models.TransactionTransfer,
		Category:    "Goals",
	}
	if err := c.store.InsertTransaction(ctx, entry); err != nil {
		return decimal.Zero, &PartialFailure{Applied: applied, Err: err}
	}

	c.log.Infof("Transferred %s from wallet %s to goal %s", amount.String(), wallet.ID, goal.ID)
	return amount, nil
}
