package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	TransactionIncome   TransactionKind = "income"
	TransactionExpense  TransactionKind = "expense"
	TransactionTransfer TransactionKind = "transfer"
)

// Transaction represents an append-only ledger entry of money movement
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        TransactionKind `json:"kind"`
	Category    string          `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
