package domain

import "context"

// RecommendedMovie is one entry of a recommendation result. Score is set by
// the warm (profile-scored) stage, Similarity by the single-review stage;
// cold-start entries carry neither. Results are transient, never persisted.
type RecommendedMovie struct {
	Movie
	Score      *int     `json:"score,omitempty"`
	Similarity *float64 `json:"similarity,omitempty"`
	Reason     string   `json:"reason"`
}

type RecommendationUsecase interface {
	// Recommend picks a ranking strategy from the user's review count:
	// 0 reviews -> declared-taste filter chain over popular movies,
	// 1 review  -> Jaccard similarity against the reviewed movie's tags,
	// >=2       -> preference-profile scoring with fallback partitions.
	Recommend(ctx context.Context, userID string) ([]RecommendedMovie, error)
}
