package model

// CategoryType identifies the service domain a category covers
type CategoryType string

const (
	CategoryTypeTutoring    CategoryType = "tutoring"
	CategoryTypeFreelance   CategoryType = "freelance"
	CategoryTypeHomeService CategoryType = "home_service"
	CategoryTypeEvent       CategoryType = "event"
	CategoryTypeWedding     CategoryType = "wedding"
)

// Category is immutable reference data describing one supported service domain.
// Keywords drive the deterministic fallback classifier; matching against them
// is always case-insensitive.
type Category struct {
	ID          string       `json:"id" db:"id"`
	Slug        string       `json:"slug" db:"slug"`
	Label       string       `json:"label" db:"label"`
	Type        CategoryType `json:"type" db:"type"`
	Description string       `json:"description" db:"description"`
	Keywords    JSONArray    `json:"keywords" db:"keywords"`
}
