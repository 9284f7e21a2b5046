package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moviemind/moviemind-backend/domain"
)

func TestAccumulatePreferences(t *testing.T) {
	t.Run("high rating feeds positive tags into likes", func(t *testing.T) {
		profile := domain.UserProfile{UserID: "u1"}
		result := &domain.AnalysisResult{
			Features: []string{"Aggressive"},
			Themes:   []string{"Family", "Destiny"},
			TagSentiment: map[string]domain.Sentiment{
				"Aggressive": domain.SentimentPositive,
				"Family":     domain.SentimentPositive,
				"Destiny":    domain.SentimentNegative,
			},
		}

		accumulatePreferences(&profile, result, 5, nil)

		assert.Equal(t, map[string]int{"Aggressive": 1, "Family": 1}, profile.Likes)
		assert.Empty(t, profile.Dislikes)
	})

	t.Run("low rating feeds negative tags into dislikes", func(t *testing.T) {
		profile := domain.UserProfile{UserID: "u1"}
		result := &domain.AnalysisResult{
			Themes: []string{"Family", "Destiny"},
			TagSentiment: map[string]domain.Sentiment{
				"Family":  domain.SentimentPositive,
				"Destiny": domain.SentimentNegative,
			},
		}

		accumulatePreferences(&profile, result, 2, nil)

		assert.Empty(t, profile.Likes)
		assert.Equal(t, map[string]int{"Destiny": 1}, profile.Dislikes)
	})

	t.Run("a single review never touches both maps", func(t *testing.T) {
		result := &domain.AnalysisResult{
			TagSentiment: map[string]domain.Sentiment{
				"Family":  domain.SentimentPositive,
				"Destiny": domain.SentimentNegative,
			},
		}

		for rating := 1; rating <= 5; rating++ {
			t.Run(fmt.Sprintf("rating %d", rating), func(t *testing.T) {
				profile := domain.UserProfile{UserID: "u1"}
				accumulatePreferences(&profile, result, rating, []string{"Exciting"})

				if rating >= 4 {
					assert.Empty(t, profile.Dislikes)
					assert.NotEmpty(t, profile.Likes)
				} else {
					assert.Empty(t, profile.Likes)
					assert.NotEmpty(t, profile.Dislikes)
				}
			})
		}
	})

	t.Run("uncovered manual emotions follow the rating polarity", func(t *testing.T) {
		result := &domain.AnalysisResult{
			Emotions: []string{"Exciting"},
			TagSentiment: map[string]domain.Sentiment{
				"Exciting": domain.SentimentPositive,
			},
		}

		liked := domain.UserProfile{UserID: "u1"}
		accumulatePreferences(&liked, result, 4, []string{"Exciting", "Nostalgic"})
		// Exciting is covered by the sentiment map and must not double count.
		assert.Equal(t, map[string]int{"Exciting": 1, "Nostalgic": 1}, liked.Likes)

		disliked := domain.UserProfile{UserID: "u1"}
		accumulatePreferences(&disliked, result, 1, []string{"Nostalgic"})
		assert.Equal(t, map[string]int{"Nostalgic": 1}, disliked.Dislikes)
	})

	t.Run("accumulates across reviews", func(t *testing.T) {
		profile := domain.UserProfile{UserID: "u1"}
		result := &domain.AnalysisResult{
			TagSentiment: map[string]domain.Sentiment{"Family": domain.SentimentPositive},
		}

		accumulatePreferences(&profile, result, 5, nil)
		accumulatePreferences(&profile, result, 4, nil)

		assert.Equal(t, map[string]int{"Family": 2}, profile.Likes)
	})
}

func TestMergeTags(t *testing.T) {
	t.Run("dedups preserving base order", func(t *testing.T) {
		merged := mergeTags([]string{"Exciting", "Gloomy"}, []string{"Gloomy", "Nostalgic"})
		assert.Equal(t, []string{"Exciting", "Gloomy", "Nostalgic"}, merged)
	})

	t.Run("both empty", func(t *testing.T) {
		assert.Empty(t, mergeTags(nil, nil))
	})
}
