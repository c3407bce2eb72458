package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pocketly/wallet-service/internal/models"
)

func TestGoalProgress(t *testing.T) {
	t.Parallel()

	progress := func(current, target int64) float64 {
		return GoalProgress(models.Goal{
			CurrentAmount: decimal.NewFromInt(current),
			TargetAmount:  decimal.NewFromInt(target),
		})
	}

	require.InDelta(t, 25, progress(50, 200), 0.0001)
	require.InDelta(t, 100, progress(200, 200), 0.0001)
	require.Equal(t, float64(100), progress(250, 200), "overfunded goals clamp to 100")
	require.Equal(t, float64(0), progress(50, 0), "non-positive target yields 0, never a division")
	require.Equal(t, float64(0), progress(50, -10))
	require.Equal(t, float64(0), progress(-5, 200))
}

func TestTotalBalance(t *testing.T) {
	t.Parallel()

	require.True(t, TotalBalance(nil).IsZero())

	wallets := []models.Wallet{
		{Balance: decimal.RequireFromString("100.25")},
		{Balance: decimal.RequireFromString("49.75")},
		{Balance: decimal.Zero},
	}
	require.True(t, TotalBalance(wallets).Equal(decimal.NewFromInt(150)))
}

func TestPortfolioValue(t *testing.T) {
	t.Parallel()

	require.True(t, PortfolioValue(nil).IsZero())

	investments := []models.Investment{
		{CurrentValue: decimal.RequireFromString("1200.50")},
		{CurrentValue: decimal.RequireFromString("799.50")},
	}
	require.True(t, PortfolioValue(investments).Equal(decimal.NewFromInt(2000)))
}
