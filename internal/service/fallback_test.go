package service

import (
	"testing"

	"buraq/internal/model"
)

func TestFallbackExtract_KeywordClassification(t *testing.T) {
	categories := testCategories()

	tests := []struct {
		name           string
		message        string
		wantCategoryID string
	}{
		{
			name:           "plumber maps to home services",
			message:        "I need a plumber in Scarborough",
			wantCategoryID: "cat_home_services",
		},
		{
			name:           "keyword match is case-insensitive",
			message:        "Looking for a MATH tutor",
			wantCategoryID: "cat_stem_tutoring",
		},
		{
			name:           "keyword matches as substring",
			message:        "need help with plumbing!",
			wantCategoryID: "cat_home_services",
		},
		{
			name:           "photographer maps to creative freelancers",
			message:        "any good photographer around?",
			wantCategoryID: "cat_freelance_creative",
		},
		{
			name:           "halaqa maps to masjid events",
			message:        "is there a halaqa this weekend",
			wantCategoryID: "cat_masjid_msa_events",
		},
		{
			name:           "henna maps to wedding services",
			message:        "henna artist for my cousin",
			wantCategoryID: "cat_wedding_nonfood",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := FallbackExtract(categories, tt.message, "")

			if intent.CategoryID != tt.wantCategoryID {
				t.Errorf("CategoryID = %q, want %q", intent.CategoryID, tt.wantCategoryID)
			}
			if !intent.IsSupported {
				t.Error("IsSupported = false, want true")
			}
			if intent.Category == nil || intent.Category.ID != tt.wantCategoryID {
				t.Errorf("Category not resolved to %q", tt.wantCategoryID)
			}
		})
	}
}

// First category in catalog order with a keyword hit wins, even when a later
// category also matches.
func TestFallbackExtract_FirstMatchPolicy(t *testing.T) {
	categories := []model.Category{
		{ID: "cat_a", Slug: "a", Label: "A", Keywords: model.JSONArray{"widget"}},
		{ID: "cat_b", Slug: "b", Label: "B", Keywords: model.JSONArray{"widget", "gadget"}},
	}

	intent := FallbackExtract(categories, "I need a widget and a gadget", "")

	if intent.CategoryID != "cat_a" {
		t.Errorf("CategoryID = %q, want first-matching cat_a", intent.CategoryID)
	}
	// Tags come from the winning category only
	if len(intent.Tags) != 1 || intent.Tags[0] != "widget" {
		t.Errorf("Tags = %v, want [widget]", intent.Tags)
	}
}

func TestFallbackExtract_ConversationalCarveOut(t *testing.T) {
	categories := testCategories()

	for _, message := range []string{"hi", "thanks", "how are you", "ok cool"} {
		t.Run(message, func(t *testing.T) {
			intent := FallbackExtract(categories, message, "")

			if intent.CategoryID != "" {
				t.Errorf("CategoryID = %q, want empty for conversational input", intent.CategoryID)
			}
			if intent.IsSupported {
				t.Error("IsSupported = true, want false")
			}
			// The fallback never fabricates a conversational reply; the chat
			// layer supplies the generic default.
			if intent.ConversationalResponse != "" {
				t.Errorf("ConversationalResponse = %q, want empty", intent.ConversationalResponse)
			}
		})
	}
}

func TestFallbackExtract_Location(t *testing.T) {
	categories := testCategories()

	tests := []struct {
		name         string
		message      string
		provided     string
		wantLocation string
	}{
		{
			name:         "prepositional pattern",
			message:      "I need a plumber in Scarborough",
			wantLocation: "Scarborough",
		},
		{
			name:         "area pattern",
			message:      "tutor wanted, North York area",
			wantLocation: "North York",
		},
		{
			name:         "gazetteer hit without pattern",
			message:      "any electrician mississauga?",
			wantLocation: "Mississauga",
		},
		{
			name:         "provided location wins in fallback",
			message:      "I need a plumber in Scarborough",
			provided:     "Markham",
			wantLocation: "Markham",
		},
		{
			name:         "no location",
			message:      "need a tutor",
			wantLocation: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := FallbackExtract(categories, tt.message, tt.provided)
			if intent.Location != tt.wantLocation {
				t.Errorf("Location = %q, want %q", intent.Location, tt.wantLocation)
			}
		})
	}
}

func TestFallbackExtract_GenderPreference(t *testing.T) {
	categories := testCategories()

	tests := []struct {
		message string
		want    model.GenderPreference
	}{
		{"looking for a sister to tutor my daughter", model.GenderFemale},
		{"female tutor please", model.GenderFemale},
		{"a woman photographer", model.GenderFemale},
		{"a brother who does repairs", model.GenderMale},
		{"male tutor", model.GenderMale},
		{"need a tutor", ""},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			intent := FallbackExtract(categories, tt.message, "")
			if intent.GenderPreference != tt.want {
				t.Errorf("GenderPreference = %q, want %q", intent.GenderPreference, tt.want)
			}
		})
	}
}

func TestFallbackExtract_Urgency(t *testing.T) {
	categories := testCategories()

	tests := []struct {
		message string
		want    model.Urgency
	}{
		{"urgent: my sink burst", model.UrgencyUrgent},
		{"need an electrician ASAP", model.UrgencyUrgent},
		{"plumber needed today", model.UrgencyUrgent},
		{"whenever works, no rush", model.UrgencyFlexible},
		{"my schedule is flexible", model.UrgencyFlexible},
		{"need a plumber", ""},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			intent := FallbackExtract(categories, tt.message, "")
			if intent.Urgency != tt.want {
				t.Errorf("Urgency = %q, want %q", intent.Urgency, tt.want)
			}
		})
	}
}

// Pins the end-to-end fallback example: message, category, location,
// supported.
func TestFallbackExtract_PlumberInScarborough(t *testing.T) {
	intent := FallbackExtract(testCategories(), "I need a plumber in Scarborough", "")

	if intent.CategoryID != "cat_home_services" {
		t.Errorf("CategoryID = %q, want cat_home_services", intent.CategoryID)
	}
	if intent.Location != "Scarborough" {
		t.Errorf("Location = %q, want Scarborough", intent.Location)
	}
	if !intent.IsSupported {
		t.Error("IsSupported = false, want true")
	}
}
