package service

import (
	"context"
	"fmt"
	"strings"

	"buraq/internal/model"
)

// Catalog is the read-only registry of supported service categories.
// It is loaded once at startup and never mutated at request time, so it is
// safe for concurrent use without locking.
type Catalog struct {
	categories []model.Category
	byID       map[string]*model.Category
	bySlug     map[string]*model.Category
}

// NewCatalog builds a catalog from category rows. Iteration order of
// ListAll matches the given order; the fallback classifier depends on it.
func NewCatalog(categories []model.Category) *Catalog {
	c := &Catalog{
		categories: categories,
		byID:       make(map[string]*model.Category, len(categories)),
		bySlug:     make(map[string]*model.Category, len(categories)),
	}
	for i := range categories {
		c.byID[categories[i].ID] = &categories[i]
		c.bySlug[categories[i].Slug] = &categories[i]
	}
	return c
}

// LoadCatalog reads the category catalog from the store. A store failure is
// a hard error: matching decisions must never run against a substitute list.
func LoadCatalog(ctx context.Context, store CategoryStore) (*Catalog, error) {
	categories, err := store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category catalog: %w", err)
	}
	return NewCatalog(categories), nil
}

// ListAll returns all categories in catalog order
func (c *Catalog) ListAll() []model.Category {
	return c.categories
}

// GetByID returns the category with the given id, or nil
func (c *Catalog) GetByID(id string) *model.Category {
	return c.byID[id]
}

// GetBySlug returns the category with the given slug, or nil
func (c *Catalog) GetBySlug(slug string) *model.Category {
	return c.bySlug[slug]
}

// Describe renders the catalog as prompt text for the classification call
func (c *Catalog) Describe() string {
	var b strings.Builder
	for _, cat := range c.categories {
		fmt.Fprintf(&b, "- %s (id: %s, slug: %s): %s\n", cat.Label, cat.ID, cat.Slug, cat.Description)
	}
	return b.String()
}

// BootstrapCategories is the seed category list. It exists for the
// category-selection UI when the database has not been seeded yet; matching
// decisions always go through the store-loaded catalog to avoid id drift.
func BootstrapCategories() []model.Category {
	return []model.Category{
		{
			ID:          "cat_stem_tutoring",
			Slug:        "stem-tutoring",
			Label:       "STEM Tutoring",
			Type:        model.CategoryTypeTutoring,
			Description: "Math, Physics, Computer Science, Engineering tutoring",
			Keywords:    model.JSONArray{"tutor", "tutoring", "math", "physics", "computer science", "programming", "coding", "engineering", "calculus", "algebra", "chemistry", "biology", "stem"},
		},
		{
			ID:          "cat_freelance_creative",
			Slug:        "freelance-creative",
			Label:       "Creative Freelancers",
			Type:        model.CategoryTypeFreelance,
			Description: "Photographers, videographers, designers, editors",
			Keywords:    model.JSONArray{"photographer", "photography", "videographer", "videography", "video", "designer", "graphic design", "editor", "editing", "creative", "freelancer"},
		},
		{
			ID:          "cat_home_services",
			Slug:        "home-services",
			Label:       "Home Services",
			Type:        model.CategoryTypeHomeService,
			Description: "Plumber, electrician, handyman, appliance repair",
			Keywords:    model.JSONArray{"plumber", "plumbing", "electrician", "electrical", "handyman", "repair", "appliance", "hvac", "contractor", "home service", "maintenance"},
		},
		{
			ID:          "cat_masjid_msa_events",
			Slug:        "masjid-msa-events",
			Label:       "Masjid & MSA Events",
			Type:        model.CategoryTypeEvent,
			Description: "Halaqas, youth nights, community events",
			Keywords:    model.JSONArray{"masjid", "mosque", "msa", "halaqa", "halaqah", "event", "youth", "sisters", "brothers", "community", "islamic event", "prayer", "isha", "maghrib"},
		},
		{
			ID:          "cat_wedding_nonfood",
			Slug:        "wedding-non-food",
			Label:       "Wedding Services (Non-Food)",
			Type:        model.CategoryTypeWedding,
			Description: "Henna, decor, photography, planning (no catering)",
			Keywords:    model.JSONArray{"wedding", "henna", "mehndi", "decor", "decoration", "wedding planner", "nikkah", "walima"},
		},
	}
}
