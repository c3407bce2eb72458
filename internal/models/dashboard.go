package models

import "github.com/shopspring/decimal"

// DashboardSummary represents the derived figures shown on the dashboard
type DashboardSummary struct {
	TotalBalance   decimal.Decimal    `json:"total_balance"`
	PortfolioValue decimal.Decimal    `json:"portfolio_value"`
	Goals          []GoalProgressItem `json:"goals"`
	ThisMonth      IncomeExpenseStats `json:"this_month"`
}

// GoalProgressItem represents funding progress for a single goal
type GoalProgressItem struct {
	GoalID  string  `json:"goal_id"`
	Name    string  `json:"name"`
	Percent float64 `json:"percent"` // clamped to [0, 100]
}

// IncomeExpenseStats represents monthly income and expense statistics
type IncomeExpenseStats struct {
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	NetBalance decimal.Decimal `json:"net_balance"`
}
