package service

import (
	"context"
	"log"
	"strings"

	"buraq/internal/model"
)

// IntentExtractor turns a raw user message into a ParsedIntent. The primary
// path delegates to the AI client; on any failure it drops to the
// deterministic keyword fallback. Extract never returns an error.
type IntentExtractor struct {
	ai      AIClient
	catalog *Catalog
}

// NewIntentExtractor creates a new intent extractor
func NewIntentExtractor(ai AIClient, catalog *Catalog) *IntentExtractor {
	return &IntentExtractor{
		ai:      ai,
		catalog: catalog,
	}
}

// Extract parses a user message, with providedLocation as the caller-supplied
// location hint. Location precedence: AI-extracted, then providedLocation.
func (e *IntentExtractor) Extract(ctx context.Context, message, providedLocation string) *model.ParsedIntent {
	message = strings.TrimSpace(message)

	if e.ai == nil || !e.ai.IsEnabled() {
		log.Printf("AI classification unavailable, using keyword fallback")
		return FallbackExtract(e.catalog.ListAll(), message, providedLocation)
	}

	result, err := e.ai.ParseIntent(ctx, message, providedLocation, e.catalog.Describe())
	if err != nil {
		log.Printf("AI classification failed: %v, using keyword fallback", err)
		return FallbackExtract(e.catalog.ListAll(), message, providedLocation)
	}

	return e.resolve(result, providedLocation)
}

// resolve maps the raw AI response onto a ParsedIntent, validating enum
// fields and resolving the category against the catalog.
func (e *IntentExtractor) resolve(result *AIIntentResponse, providedLocation string) *model.ParsedIntent {
	intent := &model.ParsedIntent{
		CategoryID:             result.CategoryID,
		Tags:                   result.Tags,
		SearchKeywords:         result.SearchKeywords,
		ConversationalResponse: result.ConversationalResponse,
	}
	if intent.Tags == nil {
		intent.Tags = []string{}
	}
	if intent.SearchKeywords == nil {
		intent.SearchKeywords = []string{}
	}

	category := e.catalog.GetByID(result.CategoryID)
	intent.Category = category
	intent.IsSupported = category != nil

	intent.Location = result.Location
	if intent.Location == "" {
		intent.Location = providedLocation
	}

	switch model.GenderPreference(result.GenderPreference) {
	case model.GenderMale, model.GenderFemale, model.GenderMixed, model.GenderUnspecified:
		intent.GenderPreference = model.GenderPreference(result.GenderPreference)
	}

	switch model.Urgency(result.Urgency) {
	case model.UrgencyUrgent, model.UrgencyFlexible:
		intent.Urgency = model.Urgency(result.Urgency)
	}

	intent.Filters = model.IntentFilters{
		MinYearsExperience: result.Filters.MinYearsExperience,
		MaxPrice:           result.Filters.MaxPrice,
		Certifications:     result.Filters.Certifications,
	}

	return intent
}
