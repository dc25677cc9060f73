package utils

import (
	"testing"
)

type intentPayload struct {
	CategoryID string   `json:"categoryId"`
	Location   string   `json:"location"`
	Tags       []string `json:"tags"`
}

func TestParseAIJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    intentPayload
		wantErr bool
	}{
		{
			name:  "clean JSON",
			input: `{"categoryId": "cat_stem_tutoring", "location": "Scarborough", "tags": ["math"]}`,
			want:  intentPayload{CategoryID: "cat_stem_tutoring", Location: "Scarborough", Tags: []string{"math"}},
		},
		{
			name: "json code fence",
			input: "Here is the classification:\n```json\n" +
				`{"categoryId": "cat_home_services", "location": "Ajax"}` +
				"\n```\nLet me know if you need anything else.",
			want: intentPayload{CategoryID: "cat_home_services", Location: "Ajax"},
		},
		{
			name: "bare code fence",
			input: "```\n" +
				`{"categoryId": "cat_wedding_nonfood"}` +
				"\n```",
			want: intentPayload{CategoryID: "cat_wedding_nonfood"},
		},
		{
			name:  "JSON embedded in prose",
			input: `Sure! The result is {"categoryId": "cat_freelance_creative", "tags": ["photographer"]} based on the message.`,
			want:  intentPayload{CategoryID: "cat_freelance_creative", Tags: []string{"photographer"}},
		},
		{
			name:  "trailing comma",
			input: `{"categoryId": "cat_stem_tutoring", "tags": ["math", "tutor",],}`,
			want:  intentPayload{CategoryID: "cat_stem_tutoring", Tags: []string{"math", "tutor"}},
		},
		{
			name:  "unquoted keys",
			input: `{categoryId: "cat_home_services", location: "Whitby"}`,
			want:  intentPayload{CategoryID: "cat_home_services", Location: "Whitby"},
		},
		{
			name:  "braces inside string values",
			input: `The payload {"categoryId": "cat_x", "location": "use {curly} names"} follows.`,
			want:  intentPayload{CategoryID: "cat_x", Location: "use {curly} names"},
		},
		{
			name:  "escaped quotes inside strings",
			input: `{"categoryId": "cat_x", "location": "the \"east\" end"}`,
			want:  intentPayload{CategoryID: "cat_x", Location: `the "east" end`},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no JSON at all",
			input:   "I'm sorry, I can't classify that message.",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			input:   `{"categoryId": "cat_x", "location": "Toronto"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got intentPayload
			err := ParseAIJSON(tt.input, &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAIJSON(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAIJSON(%q) failed: %v", tt.input, err)
			}
			if got.CategoryID != tt.want.CategoryID {
				t.Errorf("CategoryID = %q, want %q", got.CategoryID, tt.want.CategoryID)
			}
			if got.Location != tt.want.Location {
				t.Errorf("Location = %q, want %q", got.Location, tt.want.Location)
			}
			if len(got.Tags) != len(tt.want.Tags) {
				t.Fatalf("Tags = %v, want %v", got.Tags, tt.want.Tags)
			}
			for i := range got.Tags {
				if got.Tags[i] != tt.want.Tags[i] {
					t.Errorf("Tags[%d] = %q, want %q", i, got.Tags[i], tt.want.Tags[i])
				}
			}
		})
	}
}

func TestExtractBalanced(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple object", `{"a": 1} trailing`, `{"a": 1}`},
		{"nested objects", `{"a": {"b": 2}} extra`, `{"a": {"b": 2}}`},
		{"close brace in string", `{"a": "}"}`, `{"a": "}"}`},
		{"escaped quote in string", `{"a": "\"}"}`, `{"a": "\"}"}`},
		{"unbalanced", `{"a": 1`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractBalanced(tt.input, '{', '}'); got != tt.want {
				t.Errorf("extractBalanced(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trailing comma in object", `{"a": 1,}`, `{"a": 1}`},
		{"trailing comma in array", `[1, 2,]`, `[1, 2]`},
		{"bare keys quoted", `{a: 1, b: 2}`, `{"a": 1, "b": 2}`},
		{"already clean", `{"a": 1}`, `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSON(tt.input); got != tt.want {
				t.Errorf("cleanJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
