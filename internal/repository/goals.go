package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketly/wallet-service/internal/models"
)

// CreateGoal creates a new savings goal in the database
func (r *Repository) CreateGoal(ctx context.Context, goal *models.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	query := `
		INSERT INTO goals (id, user_id, name, emoji, color, target_amount, current_amount, deadline, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		goal.ID, goal.UserID, goal.Name, goal.Emoji, goal.Color,
		goal.TargetAmount, goal.CurrentAmount, goal.Deadline).
		Scan(&goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// FindGoalByID retrieves a goal owned by the given user
func (r *Repository) FindGoalByID(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	goal := &models.Goal{}
	query := `
		SELECT id, user_id, name, emoji, color, target_amount, current_amount, deadline, created_at
		FROM goals
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, goalID, userID).
		Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.Emoji, &goal.Color,
			&goal.TargetAmount, &goal.CurrentAmount, &goal.Deadline, &goal.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goal not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return goal, nil
}

// ListGoals retrieves all goals owned by the given user
func (r *Repository) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, name, emoji, color, target_amount, current_amount, deadline, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.Emoji, &g.Color,
			&g.TargetAmount, &g.CurrentAmount, &g.Deadline, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// AddGoalProgress credits a funded amount to a goal as a single row update
func (r *Repository) AddGoalProgress(ctx context.Context, userID, goalID string, amount decimal.Decimal) error {
	query := `
		UPDATE goals
		SET current_amount = current_amount + $1
		WHERE id = $2 AND user_id = $3`
	result, err := r.db.ExecContext(ctx, query, amount, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to add goal progress: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("goal not found")
	}
	return nil
}
