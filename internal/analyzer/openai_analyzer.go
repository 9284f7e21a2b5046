package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/moviemind/moviemind-backend/domain"
)

const analysisPrompt = `You are a movie review analysis AI.
You can extract [features], [emotions] and [themes] from the review. Furthermore, you can judge
whether the user is positive or negative about each tag (features, emotions and themes) and return back JSON.

Review: %s
Rating: %d
Emotions: %s

Output example:
{
  "features": ["Aggressive", "Brothers' Bond", "nostalgic atmosphere"],
  "emotions": ["Emotion", "Exciting"],
  "themes": ["Family", "Revenge", "Destiny"],
  "tag_sentiment": {
    "Aggressive": "positive",
    "Family": "positive",
    "Destiny": "negative"
  }
}
`

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// openAIAnalyzer calls an OpenAI-compatible chat-completions endpoint and
// parses the structured tag/sentiment JSON out of the model's reply. It is
// stateless; the caller owns rate limiting and retries.
type openAIAnalyzer struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

func NewOpenAIAnalyzer(apiURL string, apiKey string, model string, timeout time.Duration) domain.ReviewAnalyzer {
	return &openAIAnalyzer{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

func (a *openAIAnalyzer) Analyze(ctx context.Context, reviewText string, rating int, emotions []string) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(reviewText) == "" {
		return nil, fmt.Errorf("review text must not be empty")
	}

	prompt := fmt.Sprintf(analysisPrompt, reviewText, rating, strings.Join(emotions, ", "))

	body, err := json.Marshal(chatRequest{
		Model:       a.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call analysis service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("analysis response contains no choices")
	}

	return parseAnalysisContent(chatResp.Choices[0].Message.Content)
}

// parseAnalysisContent extracts the JSON object between the first "{" and the
// last "}" of the model reply. Anything else (an array, null, plain text)
// fails with ErrAnalysisFormat so the caller leaves profile and catalog
// state untouched.
func parseAnalysisContent(content string) (*domain.AnalysisResult, error) {
	jsonStart := strings.Index(content, "{")
	jsonEnd := strings.LastIndex(content, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, domain.ErrAnalysisFormat
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(content[jsonStart:jsonEnd+1]), &result); err != nil {
		return nil, domain.ErrAnalysisFormat
	}

	return &result, nil
}
