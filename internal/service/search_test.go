package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"buraq/internal/model"
)

func TestSearchService_StatusFiltering(t *testing.T) {
	// A misbehaving store that returns rows in every status; only approved
	// listings may reach the ranker.
	pending := approvedListing("pending", "cat_x")
	pending.Status = model.ListingStatusPending
	rejected := approvedListing("rejected", "cat_x")
	rejected.Status = model.ListingStatusRejected
	store := &fakeListingStore{
		listings: []model.Listing{
			approvedListing("good-1", "cat_x"),
			pending,
			rejected,
			approvedListing("good-2", "cat_x"),
		},
	}

	svc := NewSearchService(store, NewRanker(nil), 10)
	got, err := svc.Search(context.Background(), model.SearchCriteria{CategoryID: "cat_x"})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, listing := range got {
		if listing.Status != model.ListingStatusApproved {
			t.Errorf("listing %s has status %s", listing.ID, listing.Status)
		}
	}
}

func TestSearchService_DefaultsToApprovedStatus(t *testing.T) {
	store := &fakeListingStore{}
	svc := NewSearchService(store, NewRanker(nil), 3)

	if _, err := svc.Search(context.Background(), model.SearchCriteria{}); err != nil {
		t.Fatal(err)
	}

	if store.lastPred.Status != model.ListingStatusApproved {
		t.Errorf("predicate status = %q, want approved", store.lastPred.Status)
	}
}

func TestSearchService_PredicateCarriesFilters(t *testing.T) {
	store := &fakeListingStore{}
	svc := NewSearchService(store, NewRanker(nil), 3)

	_, err := svc.Search(context.Background(), model.SearchCriteria{
		CategoryID: "cat_stem_tutoring",
		Filters: &model.IntentFilters{
			MinYearsExperience: intPtr(3),
			MaxPrice:           float64Ptr(60),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	pred := store.lastPred
	if pred.CategoryID != "cat_stem_tutoring" {
		t.Errorf("predicate category = %q", pred.CategoryID)
	}
	if pred.MinYearsExperience == nil || *pred.MinYearsExperience != 3 {
		t.Error("MinYearsExperience not pushed into the predicate")
	}
	if pred.MaxPrice == nil || *pred.MaxPrice != 60 {
		t.Error("MaxPrice not pushed into the predicate")
	}
}

func TestSearchService_StoreErrorPropagates(t *testing.T) {
	store := &fakeListingStore{err: errors.New("connection refused")}
	svc := NewSearchService(store, NewRanker(nil), 3)

	got, err := svc.Search(context.Background(), model.SearchCriteria{})
	if err == nil {
		t.Fatal("want error from failing store")
	}
	if got != nil {
		t.Errorf("results = %v, want nil on error", got)
	}
	if !strings.Contains(err.Error(), "listing search failed") {
		t.Errorf("error = %v, want wrapped search failure", err)
	}
}

func TestSearchService_TopKCap(t *testing.T) {
	store := &fakeListingStore{
		listings: []model.Listing{
			approvedListing("a", "cat_x"),
			approvedListing("b", "cat_x"),
			approvedListing("c", "cat_x"),
			approvedListing("d", "cat_x"),
			approvedListing("e", "cat_x"),
		},
	}

	svc := NewSearchService(store, NewRanker(nil), 3)
	got, err := svc.Search(context.Background(), model.SearchCriteria{})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestSearchService_TopKDefault(t *testing.T) {
	svc := NewSearchService(&fakeListingStore{}, NewRanker(nil), 0)
	if svc.topK != 3 {
		t.Errorf("topK = %d, want default 3", svc.topK)
	}
}
