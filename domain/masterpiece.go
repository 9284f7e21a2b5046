package domain

import (
	"context"
	"time"
)

// Masterpiece marks a movie the user registered as an all-time favorite.
// The list is declarative; registering one does not feed the preference
// profile or the review flow.
type Masterpiece struct {
	UserID    string    `bson:"user_id" json:"userId"`
	MovieID   string    `bson:"movie_id" json:"movieId"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

type MasterpieceRepository interface {
	// Add keeps at most one entry per (user, movie); re-registering is a no-op.
	Add(ctx context.Context, masterpiece *Masterpiece) error
	Remove(ctx context.Context, userID string, movieID string) error
	// FetchByUser returns entries newest first.
	FetchByUser(ctx context.Context, userID string) ([]Masterpiece, error)
}

type MasterpieceUsecase interface {
	Register(ctx context.Context, userID string, movieID string) error
	Unregister(ctx context.Context, userID string, movieID string) error
	// FetchMovies resolves the user's masterpiece list to catalog movies,
	// skipping entries whose movie has left the catalog.
	FetchMovies(ctx context.Context, userID string) ([]Movie, error)
}
