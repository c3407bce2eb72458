package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketly/wallet-service/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateProfile creates a new profile in the database
func (r *Repository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	query := `
		INSERT INTO profiles (id, email, full_name, avatar_url, notifications_enabled, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		profile.ID, profile.Email, profile.FullName, profile.AvatarURL,
		profile.NotificationsEnabled, profile.PasswordHash).
		Scan(&profile.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// FindProfileByEmail retrieves a profile by email
func (r *Repository) FindProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, email, full_name, avatar_url, notifications_enabled, password_hash, created_at
		FROM profiles
		WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&profile.ID, &profile.Email, &profile.FullName, &profile.AvatarURL,
			&profile.NotificationsEnabled, &profile.PasswordHash, &profile.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

// FindProfileByID retrieves a profile by its identity
func (r *Repository) FindProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, email, full_name, avatar_url, notifications_enabled, password_hash, created_at
		FROM profiles
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&profile.ID, &profile.Email, &profile.FullName, &profile.AvatarURL,
			&profile.NotificationsEnabled, &profile.PasswordHash, &profile.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile updates the mutable profile settings
func (r *Repository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET full_name = $1, avatar_url = $2, notifications_enabled = $3
		WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query,
		profile.FullName, profile.AvatarURL, profile.NotificationsEnabled, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}
