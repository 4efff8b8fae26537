package account

import (
	"context"
	"time"

	profileRepo "servana/database/repository/profile"
	"servana/models"

	"go.uber.org/zap"
)

// TokenTTL is how long issued auth tokens stay valid.
const TokenTTL = 72 * time.Hour

// AuthResponse is returned after a successful registration or sign-in.
type AuthResponse struct {
	Profile *models.Profile `json:"profile"`
	Token   string          `json:"token"`
}

// AccountService owns registration, authentication and profile management for
// both customers and providers.
type AccountService interface {
	Register(ctx context.Context, profile *models.Profile) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, profileID string) error
	GetProfile(ctx context.Context, profileID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, req models.ProfileUpdateRequest) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	// ListProviders returns the provider directory as public cards, optionally
	// filtered by skill tag (empty tag means all providers).
	ListProviders(ctx context.Context, skillTag string) ([]models.ProviderCard, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo   profileRepo.ProfileRepository
	Logger *zap.Logger
}
