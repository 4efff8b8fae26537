package models

// ProviderCard is the public slice of a provider profile used for matching
// and directory listings.
type ProviderCard struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	SkillTags       []string  `json:"skill_tags"`
	Rating          float64   `json:"rating"`
	HourlyRate      float64   `json:"hourly_rate"`
	Location        *Location `json:"location,omitempty"`
	ServiceRadiusKm float64   `json:"service_radius_km,omitempty"`
	Reliability     float64   `json:"reliability,omitempty"`
	Bio             string    `json:"bio,omitempty"`
}

// HasSkillTag reports whether the card carries the given skill tag.
func (p ProviderCard) HasSkillTag(tag string) bool {
	for _, t := range p.SkillTags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchResult is the ranked, truncated provider list for a category.
type MatchResult struct {
	CategoryID   string         `json:"category_id"`
	Providers    []ProviderCard `json:"providers"`
	TotalMatches int            `json:"total_matches"`
	Spec         map[string]any `json:"spec,omitempty"`
	Location     *Location      `json:"location,omitempty"`
}
