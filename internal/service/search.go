package service

import (
	"context"
	"fmt"

	"buraq/internal/model"
)

// SearchService composes the listing store and the ranker into the listing
// search pipeline: coarse predicate query, then ranking, then the topK cap.
type SearchService struct {
	store  ListingStore
	ranker *Ranker
	topK   int
}

// NewSearchService creates a new search service
func NewSearchService(store ListingStore, ranker *Ranker, topK int) *SearchService {
	if topK <= 0 {
		topK = 3
	}
	return &SearchService{
		store:  store,
		ranker: ranker,
		topK:   topK,
	}
}

// Search retrieves candidates matching the criteria and returns the ranked
// top results. A store failure propagates: callers must be able to tell
// "no matches" apart from "search failed".
func (s *SearchService) Search(ctx context.Context, criteria model.SearchCriteria) ([]model.Listing, error) {
	status := criteria.Status
	if status == "" {
		status = model.ListingStatusApproved
	}

	pred := model.ListingPredicate{
		CategoryID: criteria.CategoryID,
		Status:     status,
	}
	if criteria.Filters != nil {
		pred.MinYearsExperience = criteria.Filters.MinYearsExperience
		pred.MaxPrice = criteria.Filters.MaxPrice
	}

	candidates, err := s.store.SearchListings(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("listing search failed: %w", err)
	}

	// The store already filters by status; re-check here so the ranker is
	// never handed a non-approved candidate.
	filtered := candidates[:0:0]
	for _, listing := range candidates {
		if listing.Status == status {
			filtered = append(filtered, listing)
		}
	}

	rctx := RankContext{
		CategoryID:       criteria.CategoryID,
		Location:         criteria.Location,
		GenderPreference: criteria.GenderPreference,
		Tags:             criteria.Tags,
		Query:            criteria.Query,
		SearchKeywords:   criteria.SearchKeywords,
	}

	return s.ranker.Rank(ctx, filtered, rctx, s.topK), nil
}
