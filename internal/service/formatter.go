package service

import (
	"fmt"
	"strings"

	"buraq/internal/model"
)

// Response formatting: pure functions mapping a search outcome to
// user-facing text. Branching here mirrors the classification contract:
// matches, conversational, unsupported-without-reply, supported-no-results.

// FormatGreeting returns the standing introduction message
func FormatGreeting() string {
	return "As-salamu alaykum! I'm Buraq X, your Muslim community concierge. " +
		"How can I help you today? You can ask me about STEM tutoring, creative freelancers, " +
		"home services, masjid events, or wedding services."
}

// FormatMatchResponse introduces a non-empty result list
func FormatMatchResponse(category *model.Category, matches []model.Listing, location string) string {
	categoryName := strings.ToLower(category.Label)
	locationText := ""
	if location != "" {
		locationText = " in " + location
	}

	if len(matches) == 0 {
		return fmt.Sprintf("I couldn't find any %s%s at the moment. Try adjusting your location or check back later inshaAllah.", categoryName, locationText)
	}

	return fmt.Sprintf("I found %d trusted %s%s:", len(matches), categoryName, locationText)
}

// FormatNoResultsResponse explains an empty result set for a supported
// category
func FormatNoResultsResponse(category *model.Category, location string) string {
	categoryText := ""
	if category != nil {
		categoryText = " for " + strings.ToLower(category.Label)
	}
	locationText := ""
	if location != "" {
		locationText = " in " + location
	}

	return fmt.Sprintf(`I couldn't find any matches%s%s right now. This could mean:
- No providers have registered in this area yet
- Try expanding your location search
- Check back later as new providers join regularly inshaAllah

Would you like to search for something else?`, categoryText, locationText)
}

// FormatClarificationResponse is the generic reply for unsupported requests
// with no conversational response available.
func FormatClarificationResponse() string {
	return "I'd love to help with that! Could you tell me more about what you're looking for?"
}

// FormatErrorResponse is the best-effort reply for internal failures
func FormatErrorResponse() string {
	return "I apologize, but I encountered an error processing your request. " +
		"Please try again, or rephrase your question. If the issue persists, please contact support."
}

// FormatListingSummary renders one listing as display text
func FormatListingSummary(listing model.Listing) string {
	parts := []string{
		fmt.Sprintf("**%s**", listing.Title),
		listing.Description,
	}

	if listing.LocationText != "" {
		parts = append(parts, "Location: "+listing.LocationText)
	}

	if listing.PricingMin != nil && listing.PricingMax != nil {
		currency := ""
		if listing.PricingCurrency != nil {
			currency = " " + *listing.PricingCurrency
		}
		unit := ""
		if listing.PricingUnit != nil {
			unit = "/" + *listing.PricingUnit
		}
		parts = append(parts, fmt.Sprintf("Price: $%g-$%g%s%s", *listing.PricingMin, *listing.PricingMax, currency, unit))
	} else if listing.PricingMin != nil {
		parts = append(parts, fmt.Sprintf("Price: from $%g", *listing.PricingMin))
	}

	if listing.YearsOfExperience != nil {
		parts = append(parts, fmt.Sprintf("%d years experience", *listing.YearsOfExperience))
	}

	if listing.CommunityEndorsements > 0 {
		parts = append(parts, fmt.Sprintf("%d community endorsements", listing.CommunityEndorsements))
	}

	if listing.ResponseTime != nil {
		parts = append(parts, "Response time: "+*listing.ResponseTime)
	}

	return strings.Join(parts, "\n")
}

// FormatListingsList renders listings as a numbered list
func FormatListingsList(listings []model.Listing) string {
	items := make([]string, 0, len(listings))
	for i, listing := range listings {
		items = append(items, fmt.Sprintf("%d. %s", i+1, FormatListingSummary(listing)))
	}
	return strings.Join(items, "\n\n")
}
