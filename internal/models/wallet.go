package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletKind distinguishes everyday spending wallets from savings buckets.
type WalletKind string

const (
	WalletSpending WalletKind = "spending"
	WalletSavings  WalletKind = "savings"
)

// Wallet represents a named balance bucket owned by a user
type Wallet struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Kind      WalletKind      `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
