package domain

import (
	"context"
	"time"
)

// Review lifecycle: persisted once as Pending when submitted, then
// re-persisted as Analyzed with the analyzer output attached. A later
// submission by the same user for the same movie supersedes the prior one.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusAnalyzed = "analyzed"
)

type Review struct {
	MovieID string `bson:"movie_id" json:"movieId"`
	UserID  string `bson:"user_id" json:"userId"`
	Rating  int    `bson:"rating" json:"rating"`
	Text    string `bson:"review_text" json:"reviewText"`

	// Emotions starts as the user's manual picks; analyzer-extracted emotions
	// are merged in once analysis completes. Features and Themes are attached
	// by the analyzer only.
	Emotions []string `bson:"emotions" json:"emotions"`
	Features []string `bson:"features" json:"features"`
	Themes   []string `bson:"themes" json:"themes"`

	TagSentiment map[string]Sentiment `bson:"tag_sentiment,omitempty" json:"tagSentiment,omitempty"`
	Status       string               `bson:"status" json:"status"`
	CreatedAt    time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"updatedAt"`
}

// AllTags returns the review's three namespaces as one flat pool.
func (r *Review) AllTags() []string {
	tags := make([]string, 0, len(r.Features)+len(r.Emotions)+len(r.Themes))
	tags = append(tags, r.Features...)
	tags = append(tags, r.Emotions...)
	tags = append(tags, r.Themes...)
	return tags
}

type ReviewRepository interface {
	// Upsert writes the review keyed by (user_id, movie_id).
	Upsert(ctx context.Context, review *Review) error
	FetchByMovie(ctx context.Context, movieID string) ([]Review, error)
	FetchByUser(ctx context.Context, userID string) ([]Review, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type SubmitReviewRequest struct {
	Rating   int      `json:"rating" binding:"required,min=1,max=5"`
	Text     string   `json:"reviewText" binding:"required"`
	Emotions []string `json:"emotions"`
}

type ReviewUsecase interface {
	// Submit runs the full two-phase flow: persist the review, consume the
	// daily analysis quota, analyze, accumulate the preference profile,
	// recompute the movie's aggregated tags, and re-persist with sentiment.
	// On ErrRateLimitExceeded the returned review is the persisted
	// first-phase write.
	Submit(ctx context.Context, userID string, movieID string, req SubmitReviewRequest) (Review, error)
	FetchByMovie(ctx context.Context, movieID string) ([]Review, error)
	FetchByUser(ctx context.Context, userID string) ([]Review, error)
}
