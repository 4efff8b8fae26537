package catalog

import "servana/models"

// Catalog is the immutable service taxonomy. It is constructed once at startup
// and passed into every component that needs it; category iteration order is
// the construction order, which is what breaks classifier ties.
type Catalog struct {
	categories []models.ServiceCategory
	byID       map[string]models.ServiceCategory
	fallback   models.ServiceCategory
	generic    []models.FollowUpQuestion
}

// New builds a catalog from an ordered category list, a fallback category and
// the generic follow-up list used for unknown categories.
func New(categories []models.ServiceCategory, fallback models.ServiceCategory, generic []models.FollowUpQuestion) *Catalog {
	byID := make(map[string]models.ServiceCategory, len(categories)+1)
	for _, cat := range categories {
		byID[cat.ID] = cat
	}
	byID[fallback.ID] = fallback
	return &Catalog{
		categories: categories,
		byID:       byID,
		fallback:   fallback,
		generic:    generic,
	}
}

// Categories returns the taxonomy in iteration order.
func (c *Catalog) Categories() []models.ServiceCategory {
	out := make([]models.ServiceCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

// Lookup returns the category with the given id, including the fallback.
func (c *Catalog) Lookup(id string) (models.ServiceCategory, bool) {
	cat, ok := c.byID[id]
	return cat, ok
}

// Fallback returns the category used when nothing in the taxonomy matches.
func (c *Catalog) Fallback() models.ServiceCategory {
	return c.fallback
}

// SkillTagFor resolves the provider skill tag to match against for a category.
// Unknown ids fall through to the raw id so a caller can still match on it.
func (c *Catalog) SkillTagFor(categoryID string) string {
	if cat, ok := c.byID[categoryID]; ok && cat.SkillTag != "" {
		return cat.SkillTag
	}
	return categoryID
}

func selectQ(id, prompt string, options ...string) models.FollowUpQuestion {
	return models.FollowUpQuestion{ID: id, Prompt: prompt, Type: models.AnswerSingleSelect, Options: options}
}

func shortQ(id, prompt string) models.FollowUpQuestion {
	return models.FollowUpQuestion{ID: id, Prompt: prompt, Type: models.AnswerShortText}
}

func longQ(id, prompt string) models.FollowUpQuestion {
	return models.FollowUpQuestion{ID: id, Prompt: prompt, Type: models.AnswerLongText}
}

// Default returns the fixed production taxonomy.
func Default() *Catalog {
	categories := []models.ServiceCategory{
		{
			ID:          "home_cleaning",
			DisplayName: "Home Cleaning",
			Description: "Professional house cleaning services",
			Keywords:    []string{"clean", "cleaning", "house", "home", "vacuum", "mop", "dust", "tidy", "organize"},
			SkillTag:    "home_cleaning",
			FollowUps: []models.FollowUpQuestion{
				selectQ("rooms", "Which rooms need cleaning?", "All rooms", "Kitchen only", "Bathrooms only", "Bedrooms only"),
				selectQ("frequency", "How often?", "One-time", "Weekly", "Bi-weekly", "Monthly"),
				shortQ("concerns", "Do you have any specific areas of concern?"),
			},
		},
		{
			ID:          "plumbing",
			DisplayName: "Plumbing",
			Description: "Plumbing repairs and installations",
			Keywords:    []string{"plumber", "plumbing", "pipe", "leak", "faucet", "toilet", "drain", "water", "sink"},
			SkillTag:    "plumbing",
			FollowUps: []models.FollowUpQuestion{
				shortQ("issue", "What type of plumbing issue are you experiencing?"),
				selectQ("urgency", "Is this an emergency or can it wait?", "Emergency", "This week", "Flexible"),
				shortQ("started", "When did the problem start?"),
			},
		},
		{
			ID:          "electrical",
			DisplayName: "Electrical",
			Description: "Electrical repairs and installations",
			Keywords:    []string{"electrician", "electrical", "wiring", "outlet", "switch", "light", "power", "circuit"},
			SkillTag:    "electrical",
			FollowUps: []models.FollowUpQuestion{
				shortQ("work", "What electrical work do you need?"),
				selectQ("context", "Is this new construction or existing wiring?", "New construction", "Existing wiring"),
				shortQ("timeline", "What's your timeline for completion?"),
			},
		},
		{
			ID:          "appliance_repair",
			DisplayName: "Appliance Repair",
			Description: "Home appliance repair services",
			Keywords:    []string{"repair", "fix", "appliance", "broken", "not working", "refrigerator", "washing machine", "ac"},
			SkillTag:    "appliance_repair",
			FollowUps: []models.FollowUpQuestion{
				selectQ("appliance", "Which appliance?", "Refrigerator", "Washing Machine", "AC", "Microwave", "Other"),
				shortQ("symptoms", "What symptoms are you experiencing?"),
				shortQ("age", "How old is the appliance?"),
			},
		},
		{
			ID:          "handyman",
			DisplayName: "Handyman",
			Description: "General handyman services",
			Keywords:    []string{"handyman", "repair", "fix", "install", "mount", "assemble", "build", "maintenance"},
			SkillTag:    "handyman",
			FollowUps: []models.FollowUpQuestion{
				longQ("tasks", "What specific tasks do you need help with?"),
				selectQ("materials", "Do you have the necessary materials?", "Yes", "No", "Partially"),
				shortQ("budget", "What's your budget range?"),
			},
		},
		{
			ID:          "gardening",
			DisplayName: "Gardening",
			Description: "Garden maintenance and landscaping",
			Keywords:    []string{"garden", "gardening", "landscaping", "lawn", "mow", "plant", "tree", "yard"},
			SkillTag:    "gardening",
			FollowUps: []models.FollowUpQuestion{
				shortQ("work", "What type of gardening work do you need?"),
				selectQ("size", "What's the size of your garden or yard?", "Small", "Medium", "Large"),
				selectQ("frequency", "How often do you need maintenance?", "One-time", "Weekly", "Monthly"),
			},
		},
		{
			ID:          "massage",
			DisplayName: "Massage Therapy",
			Description: "In-home massage and wellness",
			Keywords:    []string{"massage", "therapy", "relax", "spa", "wellness", "stress", "tension"},
			SkillTag:    "massage",
			FollowUps: []models.FollowUpQuestion{
				selectQ("duration", "How long would you like?", "30 min", "60 min", "90 min"),
				selectQ("style", "What type of massage?", "Swedish", "Deep Tissue", "Hot Stone", "Aromatherapy"),
			},
		},
		{
			ID:          "car_wash",
			DisplayName: "Car Wash (Doorstep)",
			Description: "Doorstep vehicle cleaning and detailing",
			Keywords:    []string{"car", "vehicle", "auto", "polish", "wax", "detail"},
			SkillTag:    "car_wash",
			FollowUps: []models.FollowUpQuestion{
				selectQ("wash_type", "What type of wash?", "Basic wash", "Premium wash", "Full detail"),
				selectQ("vehicle_size", "Vehicle size?", "Sedan", "SUV", "Hatchback", "Truck"),
			},
		},
		{
			ID:          "facial",
			DisplayName: "Facial Treatment",
			Description: "In-home skincare and facial treatments",
			Keywords:    []string{"facial", "skin", "beauty", "glow", "acne", "skincare"},
			SkillTag:    "facial",
			FollowUps: []models.FollowUpQuestion{
				selectQ("skin_type", "What's your skin type?", "Dry", "Oily", "Combination", "Sensitive"),
				selectQ("concerns", "Any specific concerns?", "Acne", "Aging", "Dark spots", "General glow"),
			},
		},
	}

	fallback := models.ServiceCategory{
		ID:          "general",
		DisplayName: "General Service",
		Description: "General service request",
		SkillTag:    "general",
	}

	generic := []models.FollowUpQuestion{
		longQ("details", "Can you provide more details about your request?"),
		shortQ("timeline", "What's your preferred timeline?"),
		shortQ("requirements", "Do you have any specific requirements?"),
	}

	return New(categories, fallback, generic)
}
