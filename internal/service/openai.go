package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"buraq/internal/config"
	"buraq/internal/utils"
)

// OpenAIClient handles OpenAI-compatible API interactions
type OpenAIClient struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI-compatible client
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *OpenAIClient) IsEnabled() bool {
	return c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat specifies the format of the response
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" or "text"
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// EmbeddingRequest represents an embedding request
type EmbeddingRequest struct {
	Model      string   `json:"model"`
	Input      []string `json:"input"`
	Dimensions int      `json:"dimensions,omitempty"`
}

// EmbeddingResponse represents the embedding API response
type EmbeddingResponse struct {
	Object string `json:"object"`
	Data   []struct {
		Object    string    `json:"object"`
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
}

// ChatCompletion performs a chat completion request
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}

	if req.Model == "" {
		req.Model = c.config.ChatModel
	}
	if req.Temperature == 0 && c.config.ChatTemperature > 0 {
		req.Temperature = c.config.ChatTemperature
	}
	if req.MaxTokens == 0 && c.config.ChatMaxTokens > 0 {
		req.MaxTokens = c.config.ChatMaxTokens
	}

	var result ChatCompletionResponse
	if err := c.post(ctx, "/chat/completions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateEmbeddings creates embeddings for the given texts
func (c *OpenAIClient) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	req := EmbeddingRequest{
		Model:      c.config.EmbeddingModel,
		Input:      texts,
		Dimensions: c.config.EmbeddingDimensions,
	}

	var result EmbeddingResponse
	if err := c.post(ctx, "/embeddings", req, &result); err != nil {
		return nil, err
	}

	// Extract embeddings in input order
	embeddings := make([][]float32, len(texts))
	for _, item := range result.Data {
		if item.Index < len(embeddings) {
			embeddings[item.Index] = item.Embedding
		}
	}
	for i, emb := range embeddings {
		if len(emb) == 0 {
			return nil, fmt.Errorf("embedding API returned no vector for input %d", i)
		}
	}

	return embeddings, nil
}

// post sends a JSON request and decodes a JSON response
func (c *OpenAIClient) post(ctx context.Context, path string, payload, target interface{}) error {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.config.APIBase + path
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

const intentPromptTemplate = `You are an intelligent, conversational assistant for Buraq X, a Muslim community service marketplace. You interpret the user's intent like a helpful human concierge would, including vague, casual, or incomplete requests.

Available service categories:
%s
User message: "%s"
%s
CLASSIFICATION RULES:
- Academic words (math, calculus, "kid needs help with physics") -> tutoring
- Creative/media skills (photographer, design, video) -> creative freelancers
- Repair/fix/install/broken with an object -> home services
- Religious/community terms (halaqa, masjid, islamic classes) -> events
- Marriage/ceremony terms (nikkah, mehndi, wedding) -> wedding services
- Prefer guessing a category over returning null when any plausible signal exists.
- Return null categoryId ONLY for pure conversation: greetings ("hi", "hey"),
  small talk ("how are you", "thanks", "ok"), or meta-questions about this
  service ("what do you do", "how does this work").

EXTRACTION RULES:
- Extract quality/preference adjectives (experienced, affordable, patient,
  reliable, professional) into tags AND searchKeywords; they feed ranking.
- genderPreference only from explicit words: "sister"/"female"/"woman" -> female,
  "brother"/"male"/"man" -> male. Never infer it from category or tone.
- urgency: "urgent"/"ASAP"/"emergency"/"today"/"tonight" -> urgent;
  "flexible"/"whenever"/"no rush" -> flexible; otherwise null.
- location: any city or neighbourhood mentioned, or null.
- filters.minYearsExperience / filters.maxPrice only from explicit numeric or
  clearly inferable cues ("under $50", "10+ years"). Never fabricate numbers.

OUTPUT FORMAT (JSON):
{
  "categoryId": "exact_id_from_categories_above" or null,
  "location": "extracted_location" or null,
  "genderPreference": "male" | "female" | "mixed" | "unspecified" | null,
  "urgency": "urgent" | "flexible" | null,
  "tags": ["extracted_quality_words", "subjects", "levels", "preferences"],
  "filters": {"minYearsExperience": number or null, "maxPrice": number or null, "certifications": []},
  "searchKeywords": ["key_concepts", "synonyms", "related_terms"],
  "conversationalResponse": "natural_friendly_reply_if_just_conversation" or null
}

CONVERSATIONAL RESPONSE GUIDELINES:
When categoryId is null, always provide a short, warm conversationalResponse
matched to the message: greeting -> greeting in kind; thanks -> acknowledgement;
"how are you" -> brief reply redirecting to how you can help. Be natural and
brief like a real conversation, and do not mention unrelated services.`

// ParseIntent classifies the user message into structured filters using the
// chat completion API with a JSON response format.
func (c *OpenAIClient) ParseIntent(ctx context.Context, message, providedLocation, catalogDescription string) (*AIIntentResponse, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("OpenAI API is not enabled")
	}

	locationLine := ""
	if providedLocation != "" {
		locationLine = fmt.Sprintf("User's location: %s\n", providedLocation)
	}
	prompt := fmt.Sprintf(intentPromptTemplate, catalogDescription, message, locationLine)

	req := ChatCompletionRequest{
		Model: c.config.ChatModel,
		Messages: []ChatMessage{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	resp, err := c.ChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from chat completion API")
	}

	// Tolerate markdown fences and stray prose around the JSON payload
	var result AIIntentResponse
	content := resp.Choices[0].Message.Content
	if err := utils.ParseAIJSON(content, &result); err != nil {
		log.Printf("Failed to parse AI classification response, content: %s", content)
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	return &result, nil
}
