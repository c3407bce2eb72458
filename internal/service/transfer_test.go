package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/pocketly/wallet-service/internal/models"
)

// fakeTransferStore records the row writes the coordinator issues and can
// fail any one of them to exercise the partial-failure contract.
type fakeTransferStore struct {
	walletDeltas []decimal.Decimal
	goalCredits  []decimal.Decimal
	ledger       []models.Transaction

	failWallet error
	failGoal   error
	failLedger error
}

func (f *fakeTransferStore) AdjustWalletBalance(_ context.Context, _, _ string, delta decimal.Decimal) error {
	if f.failWallet != nil {
		return f.failWallet
	}
	f.walletDeltas = append(f.walletDeltas, delta)
	return nil
}

func (f *fakeTransferStore) AddGoalProgress(_ context.Context, _, _ string, amount decimal.Decimal) error {
	if f.failGoal != nil {
		return f.failGoal
	}
	f.goalCredits = append(f.goalCredits, amount)
	return nil
}

func (f *fakeTransferStore) InsertTransaction(_ context.Context, tx *models.Transaction) error {
	if f.failLedger != nil {
		return f.failLedger
	}
	f.ledger = append(f.ledger, *tx)
	return nil
}

func newTestCoordinator(store *fakeTransferStore) *TransferCoordinator {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewTransferCoordinator(store, logger)
}

func testGoal() *models.Goal {
	return &models.Goal{
		ID:            "goal-1",
		UserID:        "user-1",
		Name:          "Holiday",
		TargetAmount:  decimal.NewFromInt(200),
		CurrentAmount: decimal.Zero,
	}
}

func testWallet(balance string) *models.Wallet {
	return &models.Wallet{
		ID:      "wallet-1",
		UserID:  "user-1",
		Name:    "Everyday",
		Kind:    models.WalletSpending,
		Balance: decimal.RequireFromString(balance),
	}
}

func TestTransferSuccess(t *testing.T) {
	t.Parallel()

	store := &fakeTransferStore{}
	c := newTestCoordinator(store)

	amount := decimal.RequireFromString("25.50")
	got, err := c.Transfer(context.Background(), testGoal(), testWallet("100.00"), "25.50")
	require.NoError(t, err)
	require.True(t, got.Equal(amount), "coordinator returns the parsed amount")
	require.Len(t, store.walletDeltas, 1)
	require.True(t, store.walletDeltas[0].Equal(amount.Neg()), "wallet must be debited by the amount")
	require.Len(t, store.goalCredits, 1)
	require.True(t, store.goalCredits[0].Equal(amount), "goal must be credited by the amount")

	require.Len(t, store.ledger, 1)
	entry := store.ledger[0]
	require.Equal(t, models.TransactionTransfer, entry.Kind)
	require.Equal(t, "Goals", entry.Category)
	require.Equal(t, "Transfer to Holiday", entry.Description)
	require.Equal(t, "user-1", entry.UserID)
	require.True(t, entry.Amount.Equal(amount))
}

func TestTransferInsufficientBalance(t *testing.T) {
	t.Parallel()

	store := &fakeTransferStore{}
	c := newTestCoordinator(store)

	_, err := c.Transfer(context.Background(), testGoal(), testWallet("100.00"), "150.00")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Empty(t, store.walletDeltas, "rejected transfer must issue no writes")
	require.Empty(t, store.goalCredits)
	require.Empty(t, store.ledger)
}

func TestTransferRejectsMalformedAmounts(t *testing.T) {
	t.Parallel()

	for _, amountText := range []string{"abc", "0", "-5", "", "12.3.4"} {
		store := &fakeTransferStore{}
		c := newTestCoordinator(store)

		_, err := c.Transfer(context.Background(), testGoal(), testWallet("100.00"), amountText)

		var validation *ValidationError
		require.ErrorAs(t, err, &validation, "amount %q must be rejected", amountText)
		require.Empty(t, store.walletDeltas, "amount %q must issue no writes", amountText)
		require.Empty(t, store.goalCredits)
		require.Empty(t, store.ledger)
	}
}

func TestTransferGoalWriteFailureLeavesWalletDebited(t *testing.T) {
	t.Parallel()

	store := &fakeTransferStore{failGoal: errors.New("remote update failed")}
	c := newTestCoordinator(store)

	_, err := c.Transfer(context.Background(), testGoal(), testWallet("100.00"), "40.00")

	var partial *PartialFailure
	require.ErrorAs(t, err, &partial)
	require.Equal(t, []string{"wallet_debit"}, partial.Applied)

	// The documented inconsistency: wallet debited, goal untouched, no
	// ledger entry, and nothing rolled back.
	require.Len(t, store.walletDeltas, 1)
	require.True(t, store.walletDeltas[0].Equal(decimal.RequireFromString("-40.00")))
	require.Empty(t, store.goalCredits)
	require.Empty(t, store.ledger)
}

func TestTransferLedgerWriteFailureLeavesBalancesMoved(t *testing.T) {
	t.Parallel()

	store := &fakeTransferStore{failLedger: errors.New("insert failed")}
	c := newTestCoordinator(store)

	_, err := c.Transfer(context.Background(), testGoal(), testWallet("100.00"), "40.00")

	var partial *PartialFailure
	require.ErrorAs(t, err, &partial)
	require.Equal(t, []string{"wallet_debit", "goal_credit"}, partial.Applied)
	require.Len(t, store.walletDeltas, 1)
	require.Len(t, store.goalCredits, 1)
	require.Empty(t, store.ledger)
}

func TestTransferWalletWriteFailureAppliesNothing(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	store := &fakeTransferStore{failWallet: cause}
	c := newTestCoordinator(store)

	_, err := c.Transfer(context.Background(), testGoal(), testWallet("100.00"), "40.00")

	var partial *PartialFailure
	require.ErrorAs(t, err, &partial)
	require.Empty(t, partial.Applied)
	require.ErrorIs(t, err, cause)
	require.Empty(t, store.goalCredits)
	require.Empty(t, store.ledger)
}

func TestTransferTwiceIsNotIdempotent(t *testing.T) {
	t.Parallel()

	store := &fakeTransferStore{}
	c := newTestCoordinator(store)

	for i := 0; i < 2; i++ {
		amount, err := c.Transfer(context.Background(), testGoal(), testWallet("100.00"), "30.00")
		require.NoError(t, err)
		require.True(t, amount.Equal(decimal.NewFromInt(30)))
	}

	require.Len(t, store.ledger, 2, "each invocation appends its own ledger entry")
	require.Len(t, store.walletDeltas, 2)
	require.Len(t, store.goalCredits, 2)
}
