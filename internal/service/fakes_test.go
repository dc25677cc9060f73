package service

import (
	"context"
	"sync"
	"time"

	"buraq/internal/model"
)

// fakeAIClient scripts the language-understanding and embedding capability
// for tests. The ranker embeds concurrently, so the counters are locked.
type fakeAIClient struct {
	enabled   bool
	parseFunc func(message string) (*AIIntentResponse, error)
	embedFunc func(text string) ([]float32, error)

	mu         sync.Mutex
	parseCalls int
	embedCalls int
}

func (f *fakeAIClient) ParseIntent(ctx context.Context, message, providedLocation, catalogDescription string) (*AIIntentResponse, error) {
	f.mu.Lock()
	f.parseCalls++
	f.mu.Unlock()
	return f.parseFunc(message)
}

func (f *fakeAIClient) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	f.embedCalls++
	f.mu.Unlock()
	out := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vec, err := f.embedFunc(text)
		if err != nil {
			return nil, err
		}
		out = append(out, vec)
	}
	return out, nil
}

func (f *fakeAIClient) IsEnabled() bool {
	return f.enabled
}

// fakeListingStore returns scripted candidates and records the predicate it
// was queried with.
type fakeListingStore struct {
	listings []model.Listing
	err      error
	lastPred model.ListingPredicate
}

func (f *fakeListingStore) SearchListings(ctx context.Context, pred model.ListingPredicate) ([]model.Listing, error) {
	f.lastPred = pred
	if f.err != nil {
		return nil, f.err
	}
	return f.listings, nil
}

// fakeSuggestionStore records appended suggestions
type fakeSuggestionStore struct {
	err     error
	entries []model.Suggestion
}

func (f *fakeSuggestionStore) AddSuggestion(ctx context.Context, rawQueryText, inferredCategory, location string) error {
	if f.err != nil {
		return f.err
	}
	entry := model.Suggestion{RawQueryText: rawQueryText}
	if inferredCategory != "" {
		entry.InferredCategory = &inferredCategory
	}
	if location != "" {
		entry.Location = &location
	}
	f.entries = append(f.entries, entry)
	return nil
}

// Test data helpers

func testCategories() []model.Category {
	return BootstrapCategories()
}

func approvedListing(id, categoryID string) model.Listing {
	return model.Listing{
		ID:         id,
		Title:      "Listing " + id,
		CategoryID: categoryID,
		Status:     model.ListingStatusApproved,
		// Old enough that no recency bonus applies
		CreatedAt: time.Now().Add(-90 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-90 * 24 * time.Hour),
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func genderPtr(g model.GenderPreference) *model.GenderPreference {
	return &g
}
