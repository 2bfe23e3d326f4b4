package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/fallback"
	"legalease/internal/genai"
)

const (
	apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
)

// Client implements port.TextGenerator using Google's Gemini API.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Gemini-based text generator.
func NewClient(cfg *config.GenAIConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.GenAIConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.GenAIConfig, endpoint string) *Client {
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-1.5-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Simplify rewrites the original text in plain English and scores its fairness.
func (c *Client) Simplify(ctx context.Context, originalText string, docType domain.DocumentType) (*domain.SimplificationResult, error) {
	prompt := genai.BuildSimplifyPrompt(originalText, docType)

	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		SimplifiedText string `json:"simplified_text"`
		FairnessScore  int    `json:"fairness_score"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("parsing simplification output: %w (raw: %s)", err, truncate(text, 500))
	}
	if parsed.SimplifiedText == "" {
		return nil, fmt.Errorf("empty simplified text in output: %s", truncate(text, 500))
	}

	score := parsed.FairnessScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &domain.SimplificationResult{
		SimplifiedText: parsed.SimplifiedText,
		ReadingLevel:   fallback.DefaultReadingLevel,
		KeyPoints:      fallback.KeyPoints(docType),
		Warnings:       fallback.Warnings(docType),
		FairnessScore:  score,
	}, nil
}

// Answer responds to a question about a document in light of the prior turns.
func (c *Client) Answer(ctx context.Context, question, documentContext string, docType domain.DocumentType, history []domain.ConversationTurn) (string, error) {
	prompt := genai.BuildAnswerPrompt(question, documentContext, docType, history)

	text, err := c.generate(ctx, prompt, false)
	if err != nil {
		return "", err
	}
	return text, nil
}

// AnalyzeSecurity scores document metadata for tampering indicators. An
// unparseable model response degrades to the fixed fallback payload.
func (c *Client) AnalyzeSecurity(ctx context.Context, metadata domain.DocumentMetadata) (*domain.SecurityAnalysis, error) {
	prompt := genai.BuildSecurityPrompt(metadata)

	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		return nil, err
	}

	var analysis domain.SecurityAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return fallback.SecurityAnalysisFallback(), nil
	}
	return &analysis, nil
}

func (c *Client) generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrGenAINotConfigured
	}

	generationConfig := map[string]interface{}{
		"maxOutputTokens": 8192,
	}
	if jsonOutput {
		generationConfig["responseMimeType"] = "application/json"
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": generationConfig,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return extractText(respBody)
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func extractText(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from API: no candidates")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from API: no parts")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
