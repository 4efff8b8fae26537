package intelligence

import (
	"context"
	"fmt"
	"strings"

	"servana/models"
	"servana/services/catalog"

	"go.uber.org/zap"
)

// modelConfidence is assigned when the model names a known category. The
// model gives no usable score, so a fixed high confidence stands in.
const modelConfidence = 0.9

// LLMClassifier asks a text model to pick a category and validates the answer
// against the catalog. Any model failure or unrecognized answer falls back to
// the keyword classifier, so classification never errors out.
type LLMClassifier struct {
	Model    TextModel
	Catalog  *catalog.Catalog
	Fallback *catalog.KeywordClassifier
	Logger   *zap.Logger
}

// NewLLMClassifier wires a model-backed classifier with a keyword fallback
// over the same catalog.
func NewLLMClassifier(model TextModel, cat *catalog.Catalog, logger *zap.Logger) *LLMClassifier {
	return &LLMClassifier{
		Model:    model,
		Catalog:  cat,
		Fallback: &catalog.KeywordClassifier{Catalog: cat},
		Logger:   logger,
	}
}

// Classify prompts the model for a category id.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (models.Classification, error) {
	answer, err := c.Model.Generate(ctx, c.buildPrompt(text))
	if err != nil {
		c.Logger.Warn("llm classify failed, falling back to keywords", zap.Error(err))
		return c.Fallback.Classify(ctx, text)
	}

	categoryID := strings.ToLower(strings.TrimSpace(answer))
	categoryID = strings.Trim(categoryID, "\"'.`")
	cat, ok := c.Catalog.Lookup(categoryID)
	if !ok {
		c.Logger.Warn("llm returned unknown category, falling back to keywords",
			zap.String("answer", answer))
		return c.Fallback.Classify(ctx, text)
	}

	return models.Classification{
		CategoryID:  cat.ID,
		DisplayName: cat.DisplayName,
		Description: cat.Description,
		Confidence:  modelConfidence,
	}, nil
}

func (c *LLMClassifier) buildPrompt(text string) string {
	var ids []string
	for _, cat := range c.Catalog.Categories() {
		ids = append(ids, cat.ID)
	}
	return fmt.Sprintf(
		"You route service requests to categories. Reply with exactly one category id from this list, nothing else: %s.\n\nRequest: %s",
		strings.Join(ids, ", "), text)
}
