package matching

import (
	"context"
	"testing"

	"servana/models"
	"servana/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource returns its cards regardless of tag, leaving filtering to the
// service under test.
type fakeSource struct {
	cards []models.ProviderCard
}

func (f *fakeSource) ListProviderCards(skillTag string) ([]models.ProviderCard, error) {
	return f.cards, nil
}

func card(id string, rating float64, tags ...string) models.ProviderCard {
	return models.ProviderCard{ID: id, Name: id, Rating: rating, SkillTags: tags}
}

func newService(cards ...models.ProviderCard) *DefaultMatchingService {
	return &DefaultMatchingService{
		Providers: &fakeSource{cards: cards},
		Catalog:   catalog.Default(),
	}
}

func TestMatchFiltersByTag(t *testing.T) {
	svc := newService(
		card("p1", 4.8, "home_cleaning"),
		card("p2", 4.9, "plumbing"),
		card("p3", 4.1, "home_cleaning", "gardening"),
	)

	result, err := svc.Match(context.Background(), "home_cleaning", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalMatches)
	for _, p := range result.Providers {
		assert.Contains(t, p.SkillTags, "home_cleaning")
	}
}

func TestMatchSortsByRatingDescending(t *testing.T) {
	svc := newService(
		card("low", 3.9, "plumbing"),
		card("high", 4.9, "plumbing"),
		card("mid", 4.4, "plumbing"),
	)

	result, err := svc.Match(context.Background(), "plumbing", nil, nil)
	require.NoError(t, err)

	require.Len(t, result.Providers, 3)
	assert.Equal(t, "high", result.Providers[0].ID)
	assert.Equal(t, "mid", result.Providers[1].ID)
	assert.Equal(t, "low", result.Providers[2].ID)
}

func TestMatchStableOnEqualRatings(t *testing.T) {
	svc := newService(
		card("first", 4.5, "gardening"),
		card("second", 4.5, "gardening"),
		card("third", 4.5, "gardening"),
	)

	result, err := svc.Match(context.Background(), "gardening", nil, nil)
	require.NoError(t, err)

	require.Len(t, result.Providers, 3)
	assert.Equal(t, "first", result.Providers[0].ID)
	assert.Equal(t, "second", result.Providers[1].ID)
	assert.Equal(t, "third", result.Providers[2].ID)
}

func TestMatchTruncatesToFive(t *testing.T) {
	cards := make([]models.ProviderCard, 0, 8)
	for i := 0; i < 8; i++ {
		cards = append(cards, card(string(rune('a'+i)), float64(i), "electrical"))
	}
	svc := newService(cards...)

	result, err := svc.Match(context.Background(), "electrical", nil, nil)
	require.NoError(t, err)

	assert.Len(t, result.Providers, 5)
	assert.Equal(t, 8, result.TotalMatches)
}

func TestMatchEmptyResult(t *testing.T) {
	svc := newService(
		card("cleaner", 4.8, "home_cleaning"),
	)

	result, err := svc.Match(context.Background(), "plumbing", map[string]any{}, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Providers)
	assert.Equal(t, 0, result.TotalMatches)
}

func TestMatchEchoesSpecAndLocation(t *testing.T) {
	svc := newService(card("p", 4.0, "massage"))

	spec := map[string]any{"duration": "60 min"}
	loc := &models.Location{Lat: 40.75, Lng: -73.99}

	result, err := svc.Match(context.Background(), "massage", spec, loc)
	require.NoError(t, err)

	assert.Equal(t, spec, result.Spec)
	assert.Equal(t, loc, result.Location)
}
