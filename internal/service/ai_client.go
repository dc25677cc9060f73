package service

import (
	"context"
)

// AIClient is the narrow interface to the language-understanding and
// embedding capability. Both calls are blocking network calls and may fail;
// callers must recover locally (intent fallback, attribute-scoring fallback).
type AIClient interface {
	// ParseIntent classifies a user message against the catalog and extracts
	// structured fields. catalogDescription enumerates the catalog for the
	// prompt (Catalog.Describe).
	ParseIntent(ctx context.Context, message, providedLocation, catalogDescription string) (*AIIntentResponse, error)

	// CreateEmbeddings returns one vector per input text, in input order
	CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)

	// IsEnabled reports whether the client is configured and ready
	IsEnabled() bool
}

// AIIntentFilters mirrors the filters object of the classification response
type AIIntentFilters struct {
	MinYearsExperience *int     `json:"minYearsExperience,omitempty"`
	MaxPrice           *float64 `json:"maxPrice,omitempty"`
	Certifications     []string `json:"certifications,omitempty"`
}

// AIIntentResponse is the structured classification result. Fields the model
// omits or nulls out stay at their zero values; the extractor validates and
// resolves them against the catalog.
type AIIntentResponse struct {
	CategoryID             string          `json:"categoryId,omitempty"`
	Location               string          `json:"location,omitempty"`
	GenderPreference       string          `json:"genderPreference,omitempty"`
	Urgency                string          `json:"urgency,omitempty"`
	Tags                   []string        `json:"tags,omitempty"`
	Filters                AIIntentFilters `json:"filters,omitempty"`
	SearchKeywords         []string        `json:"searchKeywords,omitempty"`
	ConversationalResponse string          `json:"conversationalResponse,omitempty"`
}

// Ensure OpenAIClient implements AIClient
var _ AIClient = (*OpenAIClient)(nil)
