package domain

import "context"

// Movie is a catalog entity. The base fields come from the external catalog
// sync; Features/Emotions/Themes are the aggregated top-N tags derived from
// all reviews of the movie. The aggregated fields are a cache, always
// recomputable from the review set, never authoritative input.
type Movie struct {
	ID         string   `bson:"_id" json:"id"`
	Title      string   `bson:"title" json:"title"`
	Overview   string   `bson:"overview" json:"overview"`
	Year       int      `bson:"year" json:"year"`
	Genres     []string `bson:"genres" json:"genres"`
	Popularity float64  `bson:"popularity" json:"popularity"`
	PosterURL  string   `bson:"poster_url" json:"posterUrl"`
	Providers  []string `bson:"providers" json:"streamingServices"`
	Features   []string `bson:"features" json:"features"`
	Emotions   []string `bson:"emotions" json:"emotions"`
	Themes     []string `bson:"themes" json:"themes"`
}

// AllTags returns the three aggregated namespaces as one flat pool.
func (m *Movie) AllTags() []string {
	tags := make([]string, 0, len(m.Features)+len(m.Emotions)+len(m.Themes))
	tags = append(tags, m.Features...)
	tags = append(tags, m.Emotions...)
	tags = append(tags, m.Themes...)
	return tags
}

// AggregatedTags holds the recomputed per-namespace top-N tag lists.
type AggregatedTags struct {
	Features []string `bson:"features"`
	Emotions []string `bson:"emotions"`
	Themes   []string `bson:"themes"`
}

type MovieRepository interface {
	FetchAll(ctx context.Context) ([]Movie, error)
	FetchByID(ctx context.Context, id string) (Movie, error)
	FetchByGenres(ctx context.Context, genres []string) ([]Movie, error)
	UpdateAggregatedTags(ctx context.Context, id string, tags AggregatedTags) error
}

type MovieUsecase interface {
	FetchPopular(ctx context.Context, limit int) ([]Movie, error)
	FetchByGenres(ctx context.Context, genres []string, limit int) ([]Movie, error)
	FetchByID(ctx context.Context, id string) (Movie, error)
}
