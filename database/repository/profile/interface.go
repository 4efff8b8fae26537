package profileRepo

import (
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfileRepository abstracts persistence for customer and provider profiles.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	Update(profile *models.Profile) error
	UpdateFields(id string, fields bson.M) (*models.Profile, error)
	UpdateTokenHash(id, tokenHash string) error
	GetByID(id string) (*models.Profile, error)
	// GetByEmail returns (nil, nil) when no profile matches.
	GetByEmail(email string) (*models.Profile, error)
	GetAll() ([]models.Profile, error)
	ListByRole(role string) ([]models.Profile, error)
	// ListProviderCards returns the public card view of available providers,
	// optionally filtered by skill tag (empty tag means all providers).
	ListProviderCards(skillTag string) ([]models.ProviderCard, error)
}
