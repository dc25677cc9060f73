package service

import (
	"regexp"
	"strings"

	"buraq/internal/model"
)

// Location extraction patterns: "in/near/around/at <Place>" and "<Place> area"
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:in|near|around|at)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+[Aa]rea`),
}

// gtaGazetteer lists known local place names checked when the patterns
// find nothing
var gtaGazetteer = []string{
	"Scarborough", "North York", "Mississauga", "Brampton", "Markham",
	"Vaughan", "Richmond Hill", "Ajax", "Pickering", "Oshawa",
	"Oakville", "Burlington", "Milton", "Downtown Toronto", "Etobicoke",
	"Toronto", "GTA", "Greater Toronto Area",
}

var urgentWords = []string{"urgent", "emergency", "asap", "right now", "today", "tonight"}
var flexibleWords = []string{"flexible", "whenever", "no rush"}

// FallbackExtract is the deterministic classification path, used when the AI
// call is unavailable or fails. First category (in catalog order) with at
// least one keyword hit wins; this is a deliberate first-match policy, not
// best-match. No conversational response is ever produced here.
func FallbackExtract(categories []model.Category, message, providedLocation string) *model.ParsedIntent {
	messageLower := strings.ToLower(message)

	matchedTags := []string{}
	var matchedCategory *model.Category

	for i := range categories {
		for _, keyword := range categories[i].Keywords {
			if strings.Contains(messageLower, strings.ToLower(keyword)) {
				matchedTags = append(matchedTags, keyword)
			}
		}
		if len(matchedTags) > 0 {
			matchedCategory = &categories[i]
			break
		}
	}

	location := providedLocation
	if location == "" {
		location = extractLocation(message)
	}

	intent := &model.ParsedIntent{
		Location:         location,
		GenderPreference: extractGenderPreference(messageLower),
		Urgency:          extractUrgency(messageLower),
		Tags:             matchedTags,
		SearchKeywords:   []string{},
		IsSupported:      matchedCategory != nil,
	}
	if matchedCategory != nil {
		intent.CategoryID = matchedCategory.ID
		intent.Category = matchedCategory
	}

	return intent
}

// extractLocation pulls a place name out of the message, preferring the
// prepositional patterns over the gazetteer.
func extractLocation(message string) string {
	for _, pattern := range locationPatterns {
		if m := pattern.FindStringSubmatch(message); len(m) > 1 {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) > 2 {
				return candidate
			}
		}
	}

	messageLower := strings.ToLower(message)
	for _, place := range gtaGazetteer {
		if strings.Contains(messageLower, strings.ToLower(place)) {
			return place
		}
	}

	return ""
}

// extractGenderPreference matches explicit gender words only. Female words
// are checked first so that "woman" is not swallowed by the "man" substring.
func extractGenderPreference(messageLower string) model.GenderPreference {
	for _, w := range []string{"sister", "female", "woman"} {
		if strings.Contains(messageLower, w) {
			return model.GenderFemale
		}
	}
	for _, w := range []string{"brother", "male", "man"} {
		if strings.Contains(messageLower, w) {
			return model.GenderMale
		}
	}
	return ""
}

func extractUrgency(messageLower string) model.Urgency {
	for _, w := range urgentWords {
		if strings.Contains(messageLower, w) {
			return model.UrgencyUrgent
		}
	}
	for _, w := range flexibleWords {
		if strings.Contains(messageLower, w) {
			return model.UrgencyFlexible
		}
	}
	return ""
}
