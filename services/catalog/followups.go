package catalog

import "servana/models"

// AnswerThreshold is how many follow-up answers must be collected before the
// client is routed to provider matching.
const AnswerThreshold = 2

// FollowUps returns the fixed question list for a category. Unknown ids get
// the generic question list. The answers are echoed back untouched; whether
// they correspond to the listed questions is not validated. The question list
// does not depend on answers, so repeated calls are deterministic.
func (c *Catalog) FollowUps(categoryID string, answers map[string]any) models.FollowUpResult {
	if answers == nil {
		answers = map[string]any{}
	}

	questions := c.generic
	if cat, ok := c.byID[categoryID]; ok && len(cat.FollowUps) > 0 {
		questions = cat.FollowUps
	}

	nextStep := models.NextStepMoreQuestions
	if len(answers) >= AnswerThreshold {
		nextStep = models.NextStepMatching
	}

	qs := make([]models.FollowUpQuestion, len(questions))
	copy(qs, questions)

	return models.FollowUpResult{
		CategoryID: categoryID,
		Questions:  qs,
		Answers:    answers,
		NextStep:   nextStep,
	}
}
