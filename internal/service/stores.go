package service

import (
	"context"

	"buraq/internal/model"
)

// ListingStore is the queryable collection of listings backing search.
// Implementations return candidates in seed order
// (is_featured desc, community_endorsements desc, created_at desc).
type ListingStore interface {
	SearchListings(ctx context.Context, pred model.ListingPredicate) ([]model.Listing, error)
}

// CategoryStore provides the catalog rows loaded at startup
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
}

// SuggestionStore is an append-only sink for requests we could not serve
type SuggestionStore interface {
	AddSuggestion(ctx context.Context, rawQueryText, inferredCategory, location string) error
}
