package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"servana/models"
	"servana/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a profile for the given role, hashes the password, issues a
// token and stores its hash for revocation checks.
func (s *DefaultAccountService) Register(ctx context.Context, profile *models.Profile) (*AuthResponse, error) {
	if profile.Email == "" || profile.Password == "" || profile.Name == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if profile.Role != models.RoleCustomer && profile.Role != models.RoleProvider {
		return nil, fmt.Errorf("role must be %q or %q", models.RoleCustomer, models.RoleProvider)
	}
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))

	existing, err := s.Repo.GetByEmail(profile.Email)
	if err != nil {
		s.Logger.Error("Register: failed to check for existing profile", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile.ID = uuid.New().String()
	profile.PasswordHash = string(hashed)
	profile.Password = ""
	if profile.Role == models.RoleProvider {
		profile.Available = true
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt

	token, err := utils.GenerateToken(profile.ID, profile.Email, profile.Role, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	profile.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(profile); err != nil {
		s.Logger.Error("Register: failed to persist profile", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.Logger.Info("profile registered",
		zap.String("profileID", profile.ID), zap.String("role", profile.Role))
	return &AuthResponse{Profile: profile, Token: token}, nil
}

// Authenticate verifies credentials and issues a fresh token, rotating the
// stored token hash.
func (s *DefaultAccountService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	profile, err := s.Repo.GetByEmail(email)
	if err != nil {
		s.Logger.Error("Authenticate: failed to fetch profile", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(profile.ID, profile.Email, profile.Role, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(profile.ID, tokenHash); err != nil {
		s.Logger.Error("Authenticate: failed to rotate token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	profile.TokenHash = tokenHash

	return &AuthResponse{Profile: profile, Token: token}, nil
}

// SignOut clears the stored token hash and evicts the cached auth entry, so
// the current token fails validation everywhere.
func (s *DefaultAccountService) SignOut(ctx context.Context, profileID string) error {
	if err := s.Repo.UpdateTokenHash(profileID, ""); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+profileID)
	return nil
}

// GetProfile fetches a profile by id.
func (s *DefaultAccountService) GetProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	profile, err := s.Repo.GetByID(profileID)
	if err != nil || profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfile applies a partial update. An empty request is rejected rather
// than writing a no-op.
func (s *DefaultAccountService) UpdateProfile(ctx context.Context, profileID string, req models.ProfileUpdateRequest) (*models.Profile, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Availability != nil {
		fields["availability"] = *req.Availability
	}
	if req.HourlyRate != nil {
		fields["hourlyRate"] = *req.HourlyRate
	}
	if req.SkillTags != nil {
		fields["skillTags"] = req.SkillTags
	}
	if req.Location != nil {
		fields["location"] = req.Location
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	fields["updatedAt"] = time.Now()

	updated, err := s.Repo.UpdateFields(profileID, fields)
	if err != nil {
		s.Logger.Error("UpdateProfile: failed to update profile",
			zap.String("profileID", profileID), zap.Error(err))
		return nil, ErrProfileNotFound
	}
	return updated, nil
}

// ListProfiles returns all profiles.
func (s *DefaultAccountService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	return profiles, nil
}

// ListProviders returns the provider directory as public cards.
func (s *DefaultAccountService) ListProviders(ctx context.Context, skillTag string) ([]models.ProviderCard, error) {
	providers, err := s.Repo.ListProviderCards(skillTag)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch providers: %w", err)
	}
	return providers, nil
}
