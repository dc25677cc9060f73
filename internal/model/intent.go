package model

// IntentFilters are numeric/structured constraints extracted from the message.
// Values are only set when the message carries an explicit or clearly
// inferable cue; they are never fabricated.
type IntentFilters struct {
	MinYearsExperience *int     `json:"minYearsExperience,omitempty"`
	MaxPrice           *float64 `json:"maxPrice,omitempty"`
	Certifications     []string `json:"certifications,omitempty"`
}

// ParsedIntent is the structured interpretation of a single user message.
// It is created fresh per request and never persisted.
//
// IsSupported is true iff CategoryID resolved to a known catalog category,
// in which case Category is non-nil.
type ParsedIntent struct {
	CategoryID       string           `json:"categoryId,omitempty"`
	Category         *Category        `json:"category,omitempty"`
	Location         string           `json:"location,omitempty"`
	GenderPreference GenderPreference `json:"genderPreference,omitempty"`
	Urgency          Urgency          `json:"urgency,omitempty"`
	Tags             []string         `json:"tags"`
	IsSupported      bool             `json:"isSupported"`
	Filters          IntentFilters    `json:"filters"`
	SearchKeywords   []string         `json:"searchKeywords"`

	// Direct reply for non-service conversation (greetings, thanks, small
	// talk). Only ever produced by the AI path.
	ConversationalResponse string `json:"conversationalResponse,omitempty"`
}
