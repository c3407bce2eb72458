package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a savings target with a running funded amount
type Goal struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	Emoji         string          `json:"emoji"`
	Color         string          `json:"color"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
