package usecase

import "github.com/moviemind/moviemind-backend/domain"

// accumulatePreferences applies one analyzed review to the profile's tag
// maps. The rating threshold is a hard split: 4-5 feeds likes, 1-3 feeds
// dislikes, never both. Manual emotion tags the analyzer's sentiment map did
// not cover default to the polarity of the branch that fired.
func accumulatePreferences(profile *domain.UserProfile, result *domain.AnalysisResult, rating int, manualEmotions []string) {
	profile.EnsureMaps()
	sentiment := result.TagSentiment

	if rating >= 4 {
		for tag, polarity := range sentiment {
			if polarity == domain.SentimentPositive {
				profile.Likes[tag]++
			}
		}
		for _, tag := range manualEmotions {
			if _, covered := sentiment[tag]; !covered {
				profile.Likes[tag]++
			}
		}
		return
	}

	for tag, polarity := range sentiment {
		if polarity == domain.SentimentNegative {
			profile.Dislikes[tag]++
		}
	}
	for _, tag := range manualEmotions {
		if _, covered := sentiment[tag]; !covered {
			profile.Dislikes[tag]++
		}
	}
}
