package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHouseCleaning(t *testing.T) {
	clf := NewKeywordClassifier(Default())

	result, err := clf.Classify(context.Background(), "I need someone to clean my house this weekend")
	require.NoError(t, err)

	assert.Equal(t, "home_cleaning", result.CategoryID)
	assert.Equal(t, "Home Cleaning", result.DisplayName)
	assert.Greater(t, result.Confidence, 0.0)
}

func TestClassifyConfidenceBounds(t *testing.T) {
	clf := NewKeywordClassifier(Default())

	inputs := []string{
		"",
		"my sink is leaking and the faucet drips",
		"the light switch and outlet stopped working",
		"clean clean clean house home vacuum mop dust tidy organize cleaning",
		"qwertyuiop",
		"I want a relaxing massage at the spa",
		"mow the lawn and trim the trees in my yard",
	}
	for _, text := range inputs {
		result, err := clf.Classify(context.Background(), text)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "input %q", text)
		assert.LessOrEqual(t, result.Confidence, 1.0, "input %q", text)
	}
}

func TestClassifyFallback(t *testing.T) {
	clf := NewKeywordClassifier(Default())

	for _, text := range []string{"", "   ", "zzz nothing relevant here"} {
		result, err := clf.Classify(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, "general", result.CategoryID, "input %q", text)
		assert.Equal(t, 0.5, result.Confidence, "input %q", text)
	}
}

func TestClassifyPlumbing(t *testing.T) {
	clf := NewKeywordClassifier(Default())

	result, err := clf.Classify(context.Background(), "my toilet is clogged and the drain pipe leaks water")
	require.NoError(t, err)
	assert.Equal(t, "plumbing", result.CategoryID)
}

func TestClassifyTieKeepsCatalogOrder(t *testing.T) {
	// "repair" and "fix" hit appliance_repair twice; no other category scores
	// higher, so the first category reaching that count must win.
	clf := NewKeywordClassifier(Default())

	result, err := clf.Classify(context.Background(), "repair and fix")
	require.NoError(t, err)
	assert.Equal(t, "appliance_repair", result.CategoryID)
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	clf := NewKeywordClassifier(Default())

	lower, err := clf.Classify(context.Background(), "deep clean my house")
	require.NoError(t, err)
	upper, err := clf.Classify(context.Background(), "DEEP CLEAN MY HOUSE")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}
