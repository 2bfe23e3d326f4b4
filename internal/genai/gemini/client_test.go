package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/genai/gemini"
)

func newTestClient(serverURL string) *gemini.Client {
	cfg := &config.GenAIConfig{
		Provider:     "gemini",
		APIKey:       "test-gemini-key",
		DefaultModel: "gemini-1.5-flash",
		TimeoutSecs:  30,
	}
	return gemini.NewClientWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestClient_Simplify_Success(t *testing.T) {
	llmJSON := `{"simplified_text":"You rent a home. Pay on the 1st.","fairness_score":82}`
	responseBody := successResponse(llmJSON)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)

		contents := reqBody["contents"].([]interface{})
		assert.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		parts := msg["parts"].([]interface{})
		require.Len(t, parts, 1)
		textPart := parts[0].(map[string]interface{})
		prompt := textPart["text"].(string)
		assert.Contains(t, prompt, "Rental Agreement")
		assert.Contains(t, prompt, "RESIDENTIAL LEASE")

		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", genConfig["responseMimeType"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(responseBody)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	result, err := c.Simplify(context.Background(), "RESIDENTIAL LEASE ...", domain.DocTypeRentalAgreement)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "You rent a home. Pay on the 1st.", result.SimplifiedText)
	assert.Equal(t, 82, result.FairnessScore)
	assert.Equal(t, "College Level (Grade 16)", result.ReadingLevel.Original)
	assert.Equal(t, "8th Grade Level", result.ReadingLevel.Simplified)
	assert.NotEmpty(t, result.KeyPoints)
	assert.NotEmpty(t, result.Warnings)
}

func TestClient_Simplify_ClampsFairnessScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`{"simplified_text":"ok","fairness_score":140}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Simplify(context.Background(), "text", domain.DocTypeLegalDocument)

	require.NoError(t, err)
	assert.Equal(t, 100, result.FairnessScore)
}

func TestClient_Simplify_MalformedOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("not json at all"))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Simplify(context.Background(), "text", domain.DocTypeLegalDocument)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "parsing simplification output")
}

func TestClient_Answer_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&reqBody)

		contents := reqBody["contents"].([]interface{})
		msg := contents[0].(map[string]interface{})
		parts := msg["parts"].([]interface{})
		prompt := parts[0].(map[string]interface{})["text"].(string)
		assert.Contains(t, prompt, "User Question: Can I sublet?")
		assert.Contains(t, prompt, "Conversation so far:")
		assert.Contains(t, prompt, "user: What is the rent?")

		// Free-form answers must not force responseMimeType.
		genConfig := reqBody["generationConfig"].(map[string]interface{})
		_, hasMime := genConfig["responseMimeType"]
		assert.False(t, hasMime)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("Subletting requires written landlord consent."))
	}))
	defer server.Close()

	history := []domain.ConversationTurn{
		{Role: domain.TurnRoleUser, Content: "What is the rent?", Timestamp: time.Now()},
		{Role: domain.TurnRoleAssistant, Content: "$1200 monthly.", Timestamp: time.Now()},
	}

	answer, err := newTestClient(server.URL).Answer(context.Background(), "Can I sublet?", "LEASE ...", domain.DocTypeRentalAgreement, history)

	require.NoError(t, err)
	assert.Equal(t, "Subletting requires written landlord consent.", answer)
}

func TestClient_AnalyzeSecurity_Success(t *testing.T) {
	llmJSON := `{"score":92,"risks":["Metadata timestamps inconsistent"],"recommendations":["Verify with the issuer"]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&reqBody)
		contents := reqBody["contents"].([]interface{})
		msg := contents[0].(map[string]interface{})
		parts := msg["parts"].([]interface{})
		prompt := parts[0].(map[string]interface{})["text"].(string)
		assert.Contains(t, prompt, "lease.pdf")

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(llmJSON))
	}))
	defer server.Close()

	analysis, err := newTestClient(server.URL).AnalyzeSecurity(context.Background(), domain.DocumentMetadata{
		FileName: "lease.pdf",
		FileSize: 2048,
	})

	require.NoError(t, err)
	assert.Equal(t, 92, analysis.Score)
	assert.Equal(t, []string{"Metadata timestamps inconsistent"}, analysis.Risks)
	assert.Equal(t, []string{"Verify with the issuer"}, analysis.Recommendations)
}

func TestClient_AnalyzeSecurity_UnparseableFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("The document looks mostly fine to me."))
	}))
	defer server.Close()

	analysis, err := newTestClient(server.URL).AnalyzeSecurity(context.Background(), domain.DocumentMetadata{FileName: "a.pdf"})

	require.NoError(t, err)
	assert.Equal(t, 85, analysis.Score)
	assert.Equal(t, []string{"Unable to perform full security analysis"}, analysis.Risks)
	assert.Equal(t, []string{"Manual review recommended"}, analysis.Recommendations)
}

func TestClient_MissingAPIKey(t *testing.T) {
	cfg := &config.GenAIConfig{Provider: "gemini"}
	c := gemini.NewClientWithEndpoint(cfg, "http://unused.invalid")

	_, err := c.Answer(context.Background(), "q", "ctx", domain.DocTypeLegalDocument, nil)

	require.ErrorIs(t, err, domain.ErrGenAINotConfigured)
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Answer(context.Background(), "q", "ctx", domain.DocTypeLegalDocument, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestClient_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Answer(context.Background(), "q", "ctx", domain.DocTypeLegalDocument, nil)

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no candidates"))
}
