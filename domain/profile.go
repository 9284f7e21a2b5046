package domain

import (
	"context"
	"time"
)

// UserProfile accumulates taste signal per user. Likes and Dislikes map a
// tag to the number of analyzed reviews that contributed it. FavoriteGenres
// and SelectedSubscriptions are user-declared during onboarding, not learned.
type UserProfile struct {
	UserID                string         `bson:"user_id" json:"userId"`
	Likes                 map[string]int `bson:"likes" json:"likes"`
	Dislikes              map[string]int `bson:"dislikes" json:"dislikes"`
	FavoriteGenres        []string       `bson:"favorite_genres" json:"favoriteGenres"`
	SelectedSubscriptions []string       `bson:"selected_subscriptions" json:"selectedSubscriptions"`

	// Daily analysis quota. The date is a calendar day (YYYY-MM-DD); the
	// counter resets the first time a request arrives on a new day.
	AIAnalysisCount  int    `bson:"ai_analysis_count" json:"aiAnalysisCount"`
	LastAnalysisDate string `bson:"last_analysis_date" json:"lastAnalysisDate"`

	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// EnsureMaps initializes nil tag maps so a freshly created or missing
// profile can be accumulated into directly.
func (p *UserProfile) EnsureMaps() {
	if p.Likes == nil {
		p.Likes = make(map[string]int)
	}
	if p.Dislikes == nil {
		p.Dislikes = make(map[string]int)
	}
}

type ProfileRepository interface {
	// FetchByUserID returns ErrProfileNotFound when no profile row exists.
	// Callers treat that as an empty profile (auto-create-on-write).
	FetchByUserID(ctx context.Context, userID string) (UserProfile, error)
	// Upsert replaces the whole document. Concurrent increments to the same
	// tag counter can lose an update; accepted at current traffic.
	Upsert(ctx context.Context, profile *UserProfile) error
}

type UpdateTastesRequest struct {
	FavoriteGenres        []string `json:"favoriteGenres"`
	SelectedSubscriptions []string `json:"selectedSubscriptions"`
}

type ProfileUsecase interface {
	Fetch(ctx context.Context, userID string) (UserProfile, error)
	UpdateTastes(ctx context.Context, userID string, req UpdateTastesRequest) (UserProfile, error)
}
