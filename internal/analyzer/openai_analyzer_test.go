package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviemind/moviemind-backend/domain"
)

func analysisServer(t *testing.T, content string, capture *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}

		reply := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(reply))
	}))
}

func TestOpenAIAnalyzer_Analyze(t *testing.T) {
	t.Run("parses a structured reply", func(t *testing.T) {
		content := `Here is the analysis:
{
  "features": ["Brothers' Bond"],
  "emotions": ["Emotion"],
  "themes": ["Family"],
  "tag_sentiment": {"Family": "positive", "Brothers' Bond": "positive"}
}`
		var captured chatRequest
		server := analysisServer(t, content, &captured)
		defer server.Close()

		a := NewOpenAIAnalyzer(server.URL, "test-key", "gpt-4o-mini", time.Second)
		result, err := a.Analyze(context.Background(), "Loved it.", 5, []string{"Exciting", "Nostalgic"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Brothers' Bond"}, result.Features)
		assert.Equal(t, []string{"Emotion"}, result.Emotions)
		assert.Equal(t, []string{"Family"}, result.Themes)
		assert.Equal(t, domain.SentimentPositive, result.TagSentiment["Family"])

		require.Len(t, captured.Messages, 1)
		prompt := captured.Messages[0].Content
		assert.Contains(t, prompt, "Loved it.")
		assert.Contains(t, prompt, "Rating: 5")
		assert.Contains(t, prompt, "Exciting, Nostalgic")
		assert.Equal(t, "gpt-4o-mini", captured.Model)
	})

	t.Run("array reply is a format error", func(t *testing.T) {
		server := analysisServer(t, `["Family", "Action"]`, nil)
		defer server.Close()

		a := NewOpenAIAnalyzer(server.URL, "test-key", "gpt-4o-mini", time.Second)
		_, err := a.Analyze(context.Background(), "Loved it.", 5, nil)

		assert.ErrorIs(t, err, domain.ErrAnalysisFormat)
	})

	t.Run("unparseable braces are a format error", func(t *testing.T) {
		server := analysisServer(t, `{"features": not json}`, nil)
		defer server.Close()

		a := NewOpenAIAnalyzer(server.URL, "test-key", "gpt-4o-mini", time.Second)
		_, err := a.Analyze(context.Background(), "Loved it.", 5, nil)

		assert.ErrorIs(t, err, domain.ErrAnalysisFormat)
	})

	t.Run("upstream failure is not a format error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer server.Close()

		a := NewOpenAIAnalyzer(server.URL, "test-key", "gpt-4o-mini", time.Second)
		_, err := a.Analyze(context.Background(), "Loved it.", 5, nil)

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrAnalysisFormat)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("rejects an empty review", func(t *testing.T) {
		a := NewOpenAIAnalyzer("http://unused.invalid", "test-key", "gpt-4o-mini", time.Second)
		_, err := a.Analyze(context.Background(), "   ", 5, nil)
		assert.Error(t, err)
	})
}

func TestParseAnalysisContent(t *testing.T) {
	t.Run("extracts the outermost object from surrounding prose", func(t *testing.T) {
		content := fmt.Sprintf("Sure! %s Hope that helps.", `{"themes": ["Family"], "tag_sentiment": {"Family": "negative"}}`)
		result, err := parseAnalysisContent(content)

		require.NoError(t, err)
		assert.Equal(t, []string{"Family"}, result.Themes)
		assert.Equal(t, domain.SentimentNegative, result.TagSentiment["Family"])
	})

	t.Run("no braces at all", func(t *testing.T) {
		_, err := parseAnalysisContent("I could not analyze this review.")
		assert.ErrorIs(t, err, domain.ErrAnalysisFormat)
	})

	t.Run("reversed braces", func(t *testing.T) {
		_, err := parseAnalysisContent("} nonsense {")
		assert.ErrorIs(t, err, domain.ErrAnalysisFormat)
	})

	t.Run("missing fields default to empty", func(t *testing.T) {
		result, err := parseAnalysisContent("{}")
		require.NoError(t, err)
		assert.Empty(t, result.Features)
		assert.Empty(t, result.TagSentiment)
	})
}
