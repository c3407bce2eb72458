package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketly/wallet-service/internal/models"
)

// CreateInvestment creates a new investment holding for the authenticated user
func (s *Service) CreateInvestment(ctx context.Context, name, symbol, quantityText string) (*models.Investment, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, &ValidationError{Reason: "symbol is required"}
	}
	quantity, err := decimal.NewFromString(strings.TrimSpace(quantityText))
	if err != nil {
		return nil, &ValidationError{Reason: "quantity must be a number"}
	}
	if !quantity.IsPositive() {
		return nil, &ValidationError{Reason: "quantity must be greater than zero"}
	}

	inv := &models.Investment{
		UserID:       userID,
		Name:         name,
		Symbol:       symbol,
		Quantity:     quantity,
		CurrentValue: decimal.Zero,
	}
	if err := s.repo.CreateInvestment(ctx, inv); err != nil {
		return nil, err
	}

	s.log.Infof("Investment created for user %s: %s", userID, inv.Symbol)
	return inv, nil
}

// ListInvestments returns all investments of the authenticated user
func (s *Service) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListInvestments(ctx, userID)
}

// RefreshInvestmentValues revalues every holding from the quote feed.
// Feed failures are logged and skipped; valuations simply stay stale until
// the next run.
func (s *Service) RefreshInvestmentValues(ctx context.Context) {
	if s.quotes == nil {
		return
	}

	investments, err := s.repo.ListAllInvestments(ctx)
	if err != nil {
		s.log.Errorf("Failed to list investments for revaluation: %v", err)
		return
	}

	prices := make(map[string]decimal.Decimal)
	updated := 0
	for _, inv := range investments {
		price, ok := prices[inv.Symbol]
		if !ok {
			price, err = s.quotes.GetQuote(inv.Symbol)
			if err != nil {
				s.log.Warnf("No quote for %s: %v", inv.Symbol, err)
				continue
			}
			prices[inv.Symbol] = price
		}

		value := inv.Quantity.Mul(price)
		if err := s.repo.UpdateInvestmentValue(ctx, inv.ID, value); err != nil {
			s.log.Warnf("Failed to revalue investment %s: %v", inv.ID, err)
			continue
		}
		updated++
	}

	s.log.Infof("Revalued %d of %d investments", updated, len(investments))
}
