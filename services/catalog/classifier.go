package catalog

import (
	"context"
	"strings"

	"servana/models"
)

// FallbackConfidence is reported when no category keyword matches.
const FallbackConfidence = 0.5

// Classifier maps free text onto the service taxonomy. Implementations must
// always return a category from the catalog; a hosted language model can be
// substituted here without touching callers.
type Classifier interface {
	Classify(ctx context.Context, text string) (models.Classification, error)
}

// KeywordClassifier scores text by counting keyword occurrences per category.
type KeywordClassifier struct {
	Catalog *Catalog
}

// NewKeywordClassifier builds the default keyword-based classifier.
func NewKeywordClassifier(c *Catalog) *KeywordClassifier {
	return &KeywordClassifier{Catalog: c}
}

// Classify lower-cases the input and counts, per category, how many keywords
// appear as substrings. The strictly highest count wins; ties keep the first
// category in catalog order. Confidence is matches/keyword-count capped at
// 1.0. Zero matches everywhere yields the fallback category at 0.5.
func (k *KeywordClassifier) Classify(_ context.Context, text string) (models.Classification, error) {
	lower := strings.ToLower(text)

	var best *models.ServiceCategory
	bestScore := 0
	bestConfidence := 0.0

	for _, cat := range k.Catalog.Categories() {
		score := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			c := cat
			best = &c
			bestScore = score
			bestConfidence = float64(score) / float64(len(cat.Keywords))
			if bestConfidence > 1.0 {
				bestConfidence = 1.0
			}
		}
	}

	if best == nil {
		fb := k.Catalog.Fallback()
		return models.Classification{
			CategoryID:  fb.ID,
			DisplayName: fb.DisplayName,
			Description: fb.Description,
			Confidence:  FallbackConfidence,
		}, nil
	}

	return models.Classification{
		CategoryID:  best.ID,
		DisplayName: best.DisplayName,
		Description: best.Description,
		Confidence:  bestConfidence,
	}, nil
}
