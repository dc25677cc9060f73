package model

// ChatPreferences are optional structured preferences submitted with a chat
// message. Explicit preferences win over anything inferred from the text.
type ChatPreferences struct {
	GenderPreference GenderPreference `json:"genderPreference,omitempty"`
	Urgency          Urgency          `json:"urgency,omitempty"`
	Timeframe        string           `json:"timeframe,omitempty"`
}

// ChatRequest is the inbound payload for a natural-language query
type ChatRequest struct {
	Message     string           `json:"message" binding:"required"`
	Location    string           `json:"location,omitempty"`
	Preferences *ChatPreferences `json:"preferences,omitempty"`
}

// ChatResponse is the outbound payload: a user-facing answer plus the ranked
// matches that back it.
type ChatResponse struct {
	AnswerText  string    `json:"answerText"`
	Matches     []Listing `json:"matches"`
	Category    *Category `json:"category"`
	IsSupported bool      `json:"isSupported"`
}

// SearchCriteria drives one listing search: coarse store predicate fields
// plus the ranking context.
type SearchCriteria struct {
	CategoryID       string           `json:"categoryId,omitempty"`
	Location         string           `json:"location,omitempty"`
	GenderPreference GenderPreference `json:"genderPreference,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Status           ListingStatus    `json:"status,omitempty"`
	Query            string           `json:"query,omitempty"`
	SearchKeywords   []string         `json:"searchKeywords,omitempty"`
	Filters          *IntentFilters   `json:"filters,omitempty"`
}

// ListingPredicate is the equality/range filter handed to the listing store
type ListingPredicate struct {
	CategoryID         string
	Status             ListingStatus
	MinYearsExperience *int
	MaxPrice           *float64
}

// CreateListingRequest is a provider submission. New listings always start
// out pending.
type CreateListingRequest struct {
	Title             string           `json:"title" binding:"required"`
	Description       string           `json:"description" binding:"required"`
	CategoryID        string           `json:"categoryId" binding:"required"`
	Type              ListingType      `json:"type" binding:"required"`
	LocationText      string           `json:"locationText" binding:"required"`
	Tags              []string         `json:"tags,omitempty"`
	GenderOfProvider  GenderPreference `json:"genderOfProvider,omitempty"`
	Certifications    []string         `json:"certifications,omitempty"`
	YearsOfExperience *int             `json:"yearsOfExperience,omitempty"`
	PricingMin        *float64         `json:"pricingMin,omitempty"`
	PricingMax        *float64         `json:"pricingMax,omitempty"`
	PricingCurrency   *string          `json:"pricingCurrency,omitempty"`
	PricingUnit       *string          `json:"pricingUnit,omitempty"`
	ResponseTime      *string          `json:"responseTime,omitempty"`
	ContactEmail      *string          `json:"contactEmail,omitempty"`
	ContactPhone      *string          `json:"contactPhone,omitempty"`
}

// EmbeddingBatchRequest represents a batch embedding update request
type EmbeddingBatchRequest struct {
	Embeddings []EmbeddingItem `json:"embeddings" binding:"required"`
}

// EmbeddingItem represents a single precomputed listing embedding
type EmbeddingItem struct {
	ListingID string    `json:"listing_id" binding:"required"`
	Embedding []float32 `json:"embedding" binding:"required"`
}

// EmbeddingBatchResponse represents the response for a batch embedding update
type EmbeddingBatchResponse struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
