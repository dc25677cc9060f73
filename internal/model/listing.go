package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pgvector/pgvector-go"
)

// ListingType classifies who is behind a listing
type ListingType string

const (
	ListingTypeSupplier   ListingType = "supplier"
	ListingTypeFreelancer ListingType = "freelancer"
	ListingTypeMasjidMSA  ListingType = "masjid_msa"
)

// ListingStatus is the approval-workflow state of a listing. Only approved
// listings are eligible for end-user search results.
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
	ListingStatusRejected ListingStatus = "rejected"
)

// GenderPreference is used both for a provider's gender and a seeker's
// stated preference
type GenderPreference string

const (
	GenderMale        GenderPreference = "male"
	GenderFemale      GenderPreference = "female"
	GenderMixed       GenderPreference = "mixed"
	GenderUnspecified GenderPreference = "unspecified"
)

// Urgency captures how soon the user needs the service
type Urgency string

const (
	UrgencyUrgent   Urgency = "urgent"
	UrgencyFlexible Urgency = "flexible"
)

// Listing represents a provider/service/event record. Created on provider
// submission with status=pending; mutated only by the approval workflow and
// the featured toggle.
type Listing struct {
	ID           string        `json:"id" db:"id"`
	Title        string        `json:"title" db:"title"`
	Description  string        `json:"description" db:"description"`
	CategoryID   string        `json:"categoryId" db:"category_id"`
	Type         ListingType   `json:"type" db:"type"`
	LocationText string        `json:"locationText" db:"location_text"`
	Tags         JSONArray     `json:"tags" db:"tags"`
	IsFeatured   bool          `json:"isFeatured" db:"is_featured"`
	Status       ListingStatus `json:"status" db:"status"`

	// Optional fields used for matching and ranking
	GenderOfProvider      *GenderPreference `json:"genderOfProvider,omitempty" db:"gender_of_provider"`
	Certifications        JSONArray         `json:"certifications,omitempty" db:"certifications"`
	YearsOfExperience     *int              `json:"yearsOfExperience,omitempty" db:"years_of_experience"`
	PricingMin            *float64          `json:"pricingMin,omitempty" db:"pricing_min"`
	PricingMax            *float64          `json:"pricingMax,omitempty" db:"pricing_max"`
	PricingCurrency       *string           `json:"pricingCurrency,omitempty" db:"pricing_currency"`
	PricingUnit           *string           `json:"pricingUnit,omitempty" db:"pricing_unit"`
	ResponseTime          *string           `json:"responseTime,omitempty" db:"response_time"`
	CommunityEndorsements int               `json:"communityEndorsements" db:"community_endorsements"`

	// Contact info
	ContactEmail *string `json:"contactEmail,omitempty" db:"contact_email"`
	ContactPhone *string `json:"contactPhone,omitempty" db:"contact_phone"`

	// Precomputed embedding, populated out of band via the batch endpoint.
	// Not selected on read paths.
	Embedding pgvector.Vector `json:"-" db:"embedding"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Suggestion is an append-only record of a request we could not serve,
// reviewed later to prioritize new categories.
type Suggestion struct {
	ID               string    `json:"id" db:"id"`
	RawQueryText     string    `json:"rawQueryText" db:"raw_query_text"`
	InferredCategory *string   `json:"inferredCategory,omitempty" db:"inferred_category"`
	Location         *string   `json:"location,omitempty" db:"location"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// JSONArray represents a JSON array column
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
