package matching

import (
	"context"

	"servana/models"
)

// MatchingService ranks providers for a service category.
type MatchingService interface {
	Match(ctx context.Context, categoryID string, spec map[string]any, location *models.Location) (models.MatchResult, error)
}

// ProviderSource supplies provider cards, optionally filtered by skill tag.
// The Mongo profile repository satisfies this.
type ProviderSource interface {
	ListProviderCards(skillTag string) ([]models.ProviderCard, error)
}
