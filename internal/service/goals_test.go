package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/pocketly/wallet-service/internal/middleware"
	"github.com/pocketly/wallet-service/internal/models"
)

// fakeFinanceStore extends the coordinator fake with the snapshot lookups
// FundGoal reads before transferring.
type fakeFinanceStore struct {
	fakeTransferStore

	goal       *models.Goal
	wallet     *models.Wallet
	profile    *models.Profile
	profileErr error
}

func (f *fakeFinanceStore) FindGoalByID(_ context.Context, _, _ string) (*models.Goal, error) {
	return f.goal, nil
}

func (f *fakeFinanceStore) FindWalletByID(_ context.Context, _, _ string) (*models.Wallet, error) {
	return f.wallet, nil
}

func (f *fakeFinanceStore) FindProfileByID(_ context.Context, _ string) (*models.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

type fakeNotifier struct {
	sent []string
	fail error
}

func (f *fakeNotifier) SendGoalReached(_, _, goalName string, _ decimal.Decimal) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, goalName)
	return nil
}

func newTestService(store *fakeFinanceStore, notifier *fakeNotifier) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := &Service{
		store:     store,
		log:       logger,
		transfers: NewTransferCoordinator(store, logger),
	}
	if notifier != nil {
		svc.mail = notifier
	}
	return svc
}

func fundingStore(current string) *fakeFinanceStore {
	return &fakeFinanceStore{
		goal: &models.Goal{
			ID:            "goal-1",
			UserID:        "user-1",
			Name:          "Holiday",
			TargetAmount:  decimal.NewFromInt(200),
			CurrentAmount: decimal.RequireFromString(current),
		},
		wallet: testWallet("500.00"),
		profile: &models.Profile{
			ID:                   "user-1",
			Email:                "user@example.com",
			FullName:             "Test User",
			NotificationsEnabled: true,
		},
	}
}

func userCtx() context.Context {
	return middleware.WithUserID(context.Background(), "user-1")
}

func TestFundGoalSendsNotificationWhenTargetReached(t *testing.T) {
	t.Parallel()

	store := fundingStore("150.00")
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	require.NoError(t, svc.FundGoal(userCtx(), "goal-1", "wallet-1", "50.00"))

	require.Equal(t, []string{"Holiday"}, notifier.sent, "crossing the target sends exactly one notification")
	require.Len(t, store.ledger, 1)
}

func TestFundGoalNoNotificationBelowTarget(t *testing.T) {
	t.Parallel()

	store := fundingStore("150.00")
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	require.NoError(t, svc.FundGoal(userCtx(), "goal-1", "wallet-1", "10.00"))

	require.Empty(t, notifier.sent)
}

func TestFundGoalNoNotificationWhenAlreadyComplete(t *testing.T) {
	t.Parallel()

	store := fundingStore("200.00")
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	require.NoError(t, svc.FundGoal(userCtx(), "goal-1", "wallet-1", "10.00"))

	require.Empty(t, notifier.sent, "a goal funded past its target does not re-notify")
	require.Len(t, store.goalCredits, 1, "overfunding itself is still allowed")
}

func TestFundGoalNoNotificationWhenDisabled(t *testing.T) {
	t.Parallel()

	store := fundingStore("150.00")
	store.profile.NotificationsEnabled = false
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	require.NoError(t, svc.FundGoal(userCtx(), "goal-1", "wallet-1", "50.00"))

	require.Empty(t, notifier.sent)
}

func TestFundGoalSendFailureDoesNotFailTransfer(t *testing.T) {
	t.Parallel()

	store := fundingStore("150.00")
	notifier := &fakeNotifier{fail: errors.New("smtp unavailable")}
	svc := newTestService(store, notifier)

	require.NoError(t, svc.FundGoal(userCtx(), "goal-1", "wallet-1", "50.00"),
		"notification delivery is best effort")

	require.Len(t, store.walletDeltas, 1)
	require.Len(t, store.goalCredits, 1)
	require.Len(t, store.ledger, 1)
}

func TestFundGoalProfileLookupFailureDoesNotFailTransfer(t *testing.T) {
	t.Parallel()

	store := fundingStore("150.00")
	store.profileErr = errors.New("profile query failed")
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	require.NoError(t, svc.FundGoal(userCtx(), "goal-1", "wallet-1", "50.00"))

	require.Empty(t, notifier.sent)
	require.Len(t, store.ledger, 1)
}

func TestFundGoalPartialFailurePropagates(t *testing.T) {
	t.Parallel()

	store := fundingStore("150.00")
	store.failGoal = errors.New("remote update failed")
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	err := svc.FundGoal(userCtx(), "goal-1", "wallet-1", "50.00")

	var partial *PartialFailure
	require.ErrorAs(t, err, &partial)
	require.Equal(t, []string{"wallet_debit"}, partial.Applied)
	require.Empty(t, notifier.sent, "an incomplete transfer never notifies")
}
