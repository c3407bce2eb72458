package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketly/wallet-service/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// TotalBalance sums the balances of the given wallets
func TotalBalance(wallets []models.Wallet) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(w.Balance)
	}
	return total
}

// PortfolioValue sums the current values of the given investments
func PortfolioValue(investments []models.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(inv.CurrentValue)
	}
	return total
}

// GoalProgress returns the funded percentage of a goal, clamped to
// [0, 100]. A non-positive target yields 0; such goals are rejected at
// creation, so this only guards rows written outside the service.
func GoalProgress(goal models.Goal) float64 {
	if !goal.TargetAmount.IsPositive() {
		return 0
	}
	percent := goal.CurrentAmount.Div(goal.TargetAmount).Mul(oneHundred)
	if percent.GreaterThan(oneHundred) {
		return 100
	}
	if percent.IsNegative() {
		return 0
	}
	return percent.InexactFloat64()
}

// Dashboard computes the derived figures for the authenticated user from
// fresh snapshots: total wallet balance, portfolio value, per-goal
// progress and the current month's income/expense totals.
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	wallets, err := s.repo.ListWallets(ctx, userID)
	if err != nil {
		return nil, err
	}
	investments, err := s.repo.ListInvestments(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthly, err := s.repo.MonthlyIncomeExpense(ctx, userID, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		TotalBalance:   TotalBalance(wallets),
		PortfolioValue: PortfolioValue(investments),
		ThisMonth:      *monthly,
	}
	for _, g := range goals {
		summary.Goals = append(summary.Goals, models.GoalProgressItem{
			GoalID:  g.ID,
			Name:    g.Name,
			Percent: GoalProgress(g),
		})
	}
	return summary, nil
}
