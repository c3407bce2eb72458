package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/pocketly/wallet-service/internal/config"
	"github.com/pocketly/wallet-service/internal/middleware"
	"github.com/pocketly/wallet-service/internal/models"
	"github.com/pocketly/wallet-service/internal/repository"
)

// quoteSource provides the latest market price per symbol.
type quoteSource interface {
	GetQuote(symbol string) (decimal.Decimal, error)
}

// financeStore is the slice of the datastore the money-movement paths read
// and write through: the coordinator's per-row writes plus the snapshot
// lookups goal funding and the notification gate need.
type financeStore interface {
	transferStore
	FindGoalByID(ctx context.Context, userID, goalID string) (*models.Goal, error)
	FindWalletByID(ctx context.Context, userID, walletID string) (*models.Wallet, error)
	FindProfileByID(ctx context.Context, userID string) (*models.Profile, error)
}

// goalNotifier delivers the goal-completed notification.
type goalNotifier interface {
	SendGoalReached(to, fullName, goalName string, target decimal.Decimal) error
}

// Service handles business logic
type Service struct {
	repo      *repository.Repository
	store     financeStore
	log       *logrus.Logger
	config    *config.Config
	quotes    quoteSource
	mail      goalNotifier
	transfers *TransferCoordinator
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, quotes quoteSource, mail goalNotifier) *Service {
	return &Service{
		repo:      repo,
		store:     repo,
		log:       log,
		config:    cfg,
		quotes:    quotes,
		mail:      mail,
		transfers: NewTransferCoordinator(repo, log),
	}
}

// Register creates a new profile with a hashed password
func (s *Service) Register(ctx context.Context, email, password, fullName string) (*models.Profile, error) {
	if !strings.Contains(email, "@") {
		return nil, &ValidationError{Reason: "invalid email address"}
	}
	if len(password) < 8 {
		return nil, &ValidationError{Reason: "password must be at least 8 characters"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &models.Profile{
		Email:                email,
		FullName:             fullName,
		NotificationsEnabled: true,
		PasswordHash:         string(hashedPassword),
	}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.log.Infof("Profile registered: %s", profile.Email)
	return profile, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	profile, err := s.repo.FindProfileByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   profile.ID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", profile.Email)
	return tokenString, nil
}

// Profile returns the authenticated user's profile
func (s *Service) Profile(ctx context.Context) (*models.Profile, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindProfileByID(ctx, userID)
}

// UpdateProfile updates the authenticated user's profile settings
func (s *Service) UpdateProfile(ctx context.Context, fullName, avatarURL string, notificationsEnabled bool) (*models.Profile, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.FindProfileByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.FullName = fullName
	profile.AvatarURL = avatarURL
	profile.NotificationsEnabled = notificationsEnabled

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// currentUser extracts the authenticated identity set by the auth middleware
func currentUser(ctx context.Context) (string, error) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return "", fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}
