package models

// AnswerType enumerates how a follow-up question is answered.
type AnswerType string

const (
	AnswerSingleSelect AnswerType = "single-select"
	AnswerShortText    AnswerType = "short-text"
	AnswerLongText     AnswerType = "long-text"
)

// FollowUpQuestion is one clarifying question attached to a service category.
type FollowUpQuestion struct {
	ID      string     `json:"id"`
	Prompt  string     `json:"prompt"`
	Type    AnswerType `json:"type"`
	Options []string   `json:"options,omitempty"` // only for single-select
}

// ServiceCategory is one fixed entry of the service taxonomy.
type ServiceCategory struct {
	ID          string             `json:"id"`
	DisplayName string             `json:"display_name"`
	Description string             `json:"description"`
	Keywords    []string           `json:"keywords"`
	FollowUps   []FollowUpQuestion `json:"follow_ups"`
	SkillTag    string             `json:"skill_tag"`
}

// Classification is the result of mapping free text onto the taxonomy.
type Classification struct {
	CategoryID  string  `json:"category_id"`
	DisplayName string  `json:"display_name"`
	Description string  `json:"description,omitempty"`
	Confidence  float64 `json:"confidence"`
}

// FollowUpResult bundles the question list with the routing hint for the client.
type FollowUpResult struct {
	CategoryID string             `json:"category_id"`
	Questions  []FollowUpQuestion `json:"questions"`
	Answers    map[string]any     `json:"answers"`
	NextStep   string             `json:"next_step"` // "provider_matching" or "more_questions"
}

// NextStep values returned by the follow-up selector.
const (
	NextStepMatching      = "provider_matching"
	NextStepMoreQuestions = "more_questions"
)
