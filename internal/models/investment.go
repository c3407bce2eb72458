package models

import "github.com/shopspring/decimal"

// Investment represents a holding tracked by symbol
type Investment struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	Quantity     decimal.Decimal `json:"quantity"`
	CurrentValue decimal.Decimal `json:"current_value"`
}
