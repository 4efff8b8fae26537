package matching

import (
	"context"
	"fmt"
	"sort"

	"servana/models"
	"servana/services/catalog"

	"go.uber.org/zap"
)

// MaxMatches caps how many providers a match returns.
const MaxMatches = 5

// DefaultMatchingService implements MatchingService against a provider source.
type DefaultMatchingService struct {
	Providers ProviderSource
	Catalog   *catalog.Catalog
	Logger    *zap.Logger
}

// Match filters the provider set to those carrying the category's skill tag,
// sorts by rating descending (stable, so equal ratings keep source order) and
// truncates to MaxMatches. The request spec and location are echoed back but do not
// influence ranking yet; distance-aware ranking is a stated extension point.
// An empty match is a valid result, not an error.
func (s *DefaultMatchingService) Match(ctx context.Context, categoryID string, spec map[string]any, location *models.Location) (models.MatchResult, error) {
	tag := s.Catalog.SkillTagFor(categoryID)

	cards, err := s.Providers.ListProviderCards(tag)
	if err != nil {
		return models.MatchResult{}, fmt.Errorf("failed to list providers for %q: %w", categoryID, err)
	}

	// The source already filters by tag, but fakes and future sources may
	// not; enforce the contract here.
	matched := make([]models.ProviderCard, 0, len(cards))
	for _, card := range cards {
		if card.HasSkillTag(tag) {
			matched = append(matched, card)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})

	total := len(matched)
	if total == 0 && s.Logger != nil {
		s.Logger.Info("no providers matched", zap.String("categoryID", categoryID))
	}
	if len(matched) > MaxMatches {
		matched = matched[:MaxMatches]
	}

	return models.MatchResult{
		CategoryID:   categoryID,
		Providers:    matched,
		TotalMatches: total,
		Spec:         spec,
		Location:     location,
	}, nil
}
