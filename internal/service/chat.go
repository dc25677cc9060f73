package service

import (
	"context"
	"log"

	"buraq/internal/model"
)

// ChatService runs the full query-understanding pipeline for one message:
// intent extraction, listing search, and response formatting. It holds no
// cross-request state.
type ChatService struct {
	intent      *IntentExtractor
	search      *SearchService
	suggestions SuggestionStore
}

// NewChatService creates a new chat service
func NewChatService(intent *IntentExtractor, search *SearchService, suggestions SuggestionStore) *ChatService {
	return &ChatService{
		intent:      intent,
		search:      search,
		suggestions: suggestions,
	}
}

// Respond handles one chat request. The only error it returns is a listing
// store failure; classification and ranking failures are recovered
// internally and still produce a best-effort response.
func (s *ChatService) Respond(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	parsed := s.intent.Extract(ctx, req.Message, req.Location)

	if !parsed.IsSupported {
		answerText := parsed.ConversationalResponse
		if answerText == "" {
			// Genuinely unsupported service request: record it so new
			// categories can be prioritized.
			location := parsed.Location
			if location == "" {
				location = req.Location
			}
			if err := s.suggestions.AddSuggestion(ctx, req.Message, parsed.CategoryID, location); err != nil {
				log.Printf("Failed to log suggestion: %v", err)
			}
			answerText = FormatClarificationResponse()
		}

		return &model.ChatResponse{
			AnswerText:  answerText,
			Matches:     []model.Listing{},
			Category:    nil,
			IsSupported: false,
		}, nil
	}

	// Explicit preferences win over anything inferred from the text
	genderPreference := parsed.GenderPreference
	if req.Preferences != nil && req.Preferences.GenderPreference != "" {
		genderPreference = req.Preferences.GenderPreference
	}

	location := parsed.Location
	if location == "" {
		location = req.Location
	}

	matches, err := s.search.Search(ctx, model.SearchCriteria{
		CategoryID:       parsed.CategoryID,
		Location:         location,
		GenderPreference: genderPreference,
		Tags:             parsed.Tags,
		Status:           model.ListingStatusApproved,
		Query:            req.Message,
		SearchKeywords:   parsed.SearchKeywords,
		Filters:          &parsed.Filters,
	})
	if err != nil {
		return nil, err
	}

	var answerText string
	if len(matches) > 0 {
		answerText = FormatMatchResponse(parsed.Category, matches, location)
	} else {
		answerText = FormatNoResultsResponse(parsed.Category, location)
	}

	return &model.ChatResponse{
		AnswerText:  answerText,
		Matches:     matches,
		Category:    parsed.Category,
		IsSupported: true,
	}, nil
}
