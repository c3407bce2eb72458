package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pocketly/wallet-service/internal/models"
)

// CreateWallet creates a new wallet for the authenticated user
func (s *Service) CreateWallet(ctx context.Context, name string, kind models.WalletKind) (*models.Wallet, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, &ValidationError{Reason: "wallet name is required"}
	}
	if kind != models.WalletSpending && kind != models.WalletSavings {
		return nil, &ValidationError{Reason: "wallet kind must be spending or savings"}
	}

	wallet := &models.Wallet{
		UserID:  userID,
		Name:    name,
		Kind:    kind,
		Balance: decimal.Zero,
	}

	if err := s.repo.CreateWallet(ctx, wallet); err != nil {
		return nil, err
	}

	s.log.Infof("Wallet created for user %s: %s", userID, wallet.Name)
	return wallet, nil
}

// ListWallets returns all wallets of the authenticated user
func (s *Service) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListWallets(ctx, userID)
}
