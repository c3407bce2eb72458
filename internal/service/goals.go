package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketly/wallet-service/internal/models"
)

// CreateGoal creates a new savings goal for the authenticated user
func (s *Service) CreateGoal(ctx context.Context, name, emoji, color, targetText string, deadline *time.Time) (*models.Goal, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, &ValidationError{Reason: "goal name is required"}
	}
	target, err := decimal.NewFromString(strings.TrimSpace(targetText))
	if err != nil {
		return nil, &ValidationError{Reason: "target amount must be a number"}
	}
	if !target.IsPositive() {
		return nil, &ValidationError{Reason: "target amount must be greater than zero"}
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          name,
		Emoji:         emoji,
		Color:         color,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
	}

	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}

	s.log.Infof("Goal created for user %s: %s", userID, goal.Name)
	return goal, nil
}

// ListGoals returns all goals of the authenticated user
func (s *Service) ListGoals(ctx context.Context) ([]models.Goal, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListGoals(ctx, userID)
}

// FundGoal moves the given amount from one of the user's wallets into one
// of their goals. Fresh snapshots are read before the transfer; see
// TransferCoordinator.Transfer for the write and failure semantics.
func (s *Service) FundGoal(ctx context.Context, goalID, walletID, amountText string) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	goal, err := s.store.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		return err
	}
	wallet, err := s.store.FindWalletByID(ctx, userID, walletID)
	if err != nil {
		return err
	}

	before := goal.CurrentAmount
	amount, err := s.transfers.Transfer(ctx, goal, wallet, amountText)
	if err != nil {
		return err
	}

	if before.LessThan(goal.TargetAmount) && before.Add(amount).GreaterThanOrEqual(goal.TargetAmount) {
		s.notifyGoalReached(ctx, userID, goal)
	}
	return nil
}

// notifyGoalReached sends the goal-completed email if the owner opted in.
// Best effort: a delivery failure never fails the transfer that caused it.
func (s *Service) notifyGoalReached(ctx context.Context, userID string, goal *models.Goal) {
	if s.mail == nil {
		return
	}
	profile, err := s.store.FindProfileByID(ctx, userID)
	if err != nil {
		s.log.Warnf("Goal reached but profile lookup failed for user %s: %v", userID, err)
		return
	}
	if !profile.NotificationsEnabled {
		return
	}
	if err := s.mail.SendGoalReached(profile.Email, profile.FullName, goal.Name, goal.TargetAmount); err != nil {
		s.log.Warnf("Failed to send goal-reached notification to %s: %v", profile.Email, err)
	}
}
