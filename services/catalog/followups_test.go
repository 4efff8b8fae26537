package catalog

import (
	"testing"

	"servana/models"

	"github.com/stretchr/testify/assert"
)

func TestFollowUpsDeterministic(t *testing.T) {
	c := Default()

	first := c.FollowUps("plumbing", nil)
	second := c.FollowUps("plumbing", nil)

	assert.Equal(t, first.Questions, second.Questions)
	assert.NotEmpty(t, first.Questions)
}

func TestFollowUpsUnknownCategory(t *testing.T) {
	c := Default()

	result := c.FollowUps("submarine_repair", nil)

	assert.Equal(t, "submarine_repair", result.CategoryID)
	assert.Len(t, result.Questions, 3)
	assert.Equal(t, models.NextStepMoreQuestions, result.NextStep)
}

func TestFollowUpsNextStepThreshold(t *testing.T) {
	c := Default()

	cases := []struct {
		answers  map[string]any
		nextStep string
	}{
		{nil, models.NextStepMoreQuestions},
		{map[string]any{"rooms": "All rooms"}, models.NextStepMoreQuestions},
		{map[string]any{"rooms": "All rooms", "frequency": "Weekly"}, models.NextStepMatching},
		{map[string]any{"a": 1, "b": 2, "c": 3}, models.NextStepMatching},
	}
	for _, tc := range cases {
		result := c.FollowUps("home_cleaning", tc.answers)
		assert.Equal(t, tc.nextStep, result.NextStep, "answers %v", tc.answers)
	}
}

func TestFollowUpsEchoesAnswers(t *testing.T) {
	c := Default()

	answers := map[string]any{"rooms": "Kitchen only"}
	result := c.FollowUps("home_cleaning", answers)

	assert.Equal(t, answers, result.Answers)
}

func TestFallbackCategoryUsesGenericQuestions(t *testing.T) {
	c := Default()

	result := c.FollowUps("general", nil)
	assert.Len(t, result.Questions, 3)
}
