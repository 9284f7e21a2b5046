package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/moviemind/moviemind-backend/domain"
)

type recommendationUsecase struct {
	movieRepository   domain.MovieRepository
	reviewRepository  domain.ReviewRepository
	profileRepository domain.ProfileRepository
	pageSize          int
	trendingSize      int
	contextTimeout    time.Duration
}

func NewRecommendationUsecase(
	movieRepository domain.MovieRepository,
	reviewRepository domain.ReviewRepository,
	profileRepository domain.ProfileRepository,
	pageSize int,
	trendingSize int,
	timeout time.Duration,
) domain.RecommendationUsecase {
	return &recommendationUsecase{
		movieRepository:   movieRepository,
		reviewRepository:  reviewRepository,
		profileRepository: profileRepository,
		pageSize:          pageSize,
		trendingSize:      trendingSize,
		contextTimeout:    timeout,
	}
}

// Recommend stages on the user's review count. Catalog fetch failures
// degrade to an empty list so the caller can render an empty state.
func (ru *recommendationUsecase) Recommend(ctx context.Context, userID string) ([]domain.RecommendedMovie, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	profile, err := ru.profileRepository.FetchByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		profile = domain.UserProfile{UserID: userID}
	} else if err != nil {
		return nil, err
	}
	profile.EnsureMaps()

	reviewCount, err := ru.reviewRepository.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// A cold-start user has no reviews to load.
	var reviews []domain.Review
	if reviewCount > 0 {
		reviews, err = ru.reviewRepository.FetchByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	movies, err := ru.movieRepository.FetchAll(ctx)
	if err != nil {
		log.Printf("recommendation catalog fetch failed for user %s: %v", userID, err)
		return []domain.RecommendedMovie{}, nil
	}

	switch len(reviews) {
	case 0:
		return ru.coldStart(movies, &profile), nil
	case 1:
		return ru.singleReview(movies, reviews[0]), nil
	default:
		return ru.profileScored(movies, reviews, &profile), nil
	}
}

// coldStart has no taste signal at all, so it filters popular movies by the
// user's declared genres and subscriptions through an ordered fallback
// chain: both, genre only, subscription only, whole catalog. The first
// non-empty result wins.
func (ru *recommendationUsecase) coldStart(movies []domain.Movie, profile *domain.UserProfile) []domain.RecommendedMovie {
	genres := profile.FavoriteGenres
	subs := profile.SelectedSubscriptions

	filters := []func([]domain.Movie) []domain.Movie{
		func(in []domain.Movie) []domain.Movie {
			out := in
			if len(genres) > 0 {
				out = filterMovies(out, func(m domain.Movie) bool { return matchesAnyGenre(m, genres) })
			}
			if len(subs) > 0 {
				out = filterMovies(out, func(m domain.Movie) bool { return matchesAnyProvider(m, subs) })
			}
			return out
		},
		func(in []domain.Movie) []domain.Movie {
			if len(genres) == 0 {
				return nil
			}
			return filterMovies(in, func(m domain.Movie) bool { return matchesAnyGenre(m, genres) })
		},
		func(in []domain.Movie) []domain.Movie {
			if len(subs) == 0 {
				return nil
			}
			return filterMovies(in, func(m domain.Movie) bool { return matchesAnyProvider(m, subs) })
		},
		func(in []domain.Movie) []domain.Movie { return in },
	}

	var selected []domain.Movie
	for _, filter := range filters {
		if selected = filter(movies); len(selected) > 0 {
			break
		}
	}

	sortByPopularity(selected)

	results := make([]domain.RecommendedMovie, 0, ru.pageSize)
	for _, movie := range selected {
		if len(results) == ru.pageSize {
			break
		}
		results = append(results, domain.RecommendedMovie{Movie: movie, Reason: "popular pick for your declared tastes"})
	}
	return results
}

// singleReview ranks every unwatched movie by Jaccard similarity between its
// aggregated tags and the tags of the one movie the user reviewed.
func (ru *recommendationUsecase) singleReview(movies []domain.Movie, review domain.Review) []domain.RecommendedMovie {
	var userTags map[string]struct{}
	for _, movie := range movies {
		if movie.ID == review.MovieID {
			userTags = tagSet(movie.AllTags())
			break
		}
	}
	if userTags == nil {
		userTags = tagSet()
	}

	type candidate struct {
		movie      domain.Movie
		similarity float64
	}

	candidates := make([]candidate, 0, len(movies))
	for _, movie := range movies {
		if movie.ID == review.MovieID {
			continue
		}
		candidates = append(candidates, candidate{
			movie:      movie,
			similarity: Jaccard(userTags, tagSet(movie.AllTags())),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	results := make([]domain.RecommendedMovie, 0, ru.pageSize)
	for _, c := range candidates {
		if len(results) == ru.pageSize {
			break
		}
		similarity := c.similarity
		results = append(results, domain.RecommendedMovie{
			Movie:      c.movie,
			Similarity: &similarity,
			Reason:     "similar to the movie you reviewed",
		})
	}
	return results
}

// profileScored is the warm stage. Every movie's tag pool (aggregated tags
// unioned with the user's own review tags for that movie) is scored against
// the preference profile; positive scores lead, zero-score movies matching
// declared genres or subscriptions follow, and a few popular zero-score
// movies fill the tail. Negatively scored movies are excluded from every
// partition; the fallback paths must not reintroduce disliked content.
func (ru *recommendationUsecase) profileScored(movies []domain.Movie, reviews []domain.Review, profile *domain.UserProfile) []domain.RecommendedMovie {
	ownReviews := make(map[string]domain.Review, len(reviews))
	for _, review := range reviews {
		ownReviews[review.MovieID] = review
	}

	type candidate struct {
		movie domain.Movie
		score int
	}

	var scored []candidate
	var zeroScored []candidate
	for _, movie := range movies {
		tags := movie.AllTags()
		if own, ok := ownReviews[movie.ID]; ok {
			tags = mergeTags(tags, own.AllTags())
		}
		score := Score(profile.Likes, profile.Dislikes, tags)
		if score > 0 {
			scored = append(scored, candidate{movie: movie, score: score})
		} else if score == 0 {
			zeroScored = append(zeroScored, candidate{movie: movie, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var genreOrSubMatched []candidate
	var rest []candidate
	for _, c := range zeroScored {
		genreMatch := len(profile.FavoriteGenres) > 0 && matchesAnyGenre(c.movie, profile.FavoriteGenres)
		subMatch := len(profile.SelectedSubscriptions) > 0 && matchesAnyProvider(c.movie, profile.SelectedSubscriptions)
		if genreMatch || subMatch {
			genreOrSubMatched = append(genreOrSubMatched, c)
		} else {
			rest = append(rest, c)
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].movie.Popularity > rest[j].movie.Popularity
	})
	trending := rest
	if len(trending) > ru.trendingSize {
		trending = trending[:ru.trendingSize]
	}

	results := make([]domain.RecommendedMovie, 0, ru.pageSize)
	seen := make(map[string]struct{})
	appendCandidates := func(candidates []candidate, withScore bool, reason string) {
		for _, c := range candidates {
			if len(results) == ru.pageSize {
				return
			}
			if _, dup := seen[c.movie.ID]; dup {
				continue
			}
			seen[c.movie.ID] = struct{}{}
			rec := domain.RecommendedMovie{Movie: c.movie, Reason: reason}
			if withScore {
				score := c.score
				rec.Score = &score
			}
			results = append(results, rec)
		}
	}

	appendCandidates(scored, true, "matched your preference profile")
	appendCandidates(genreOrSubMatched, false, "matches your favorite genres or services")
	appendCandidates(trending, false, "trending now")
	return results
}

func filterMovies(movies []domain.Movie, pred func(domain.Movie) bool) []domain.Movie {
	var out []domain.Movie
	for _, movie := range movies {
		if pred(movie) {
			out = append(out, movie)
		}
	}
	return out
}

func sortByPopularity(movies []domain.Movie) {
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Popularity > movies[j].Popularity
	})
}

var foldCaser = cases.Fold()

func matchesAnyGenre(movie domain.Movie, genres []string) bool {
	for _, genre := range movie.Genres {
		for _, wanted := range genres {
			if foldCaser.String(genre) == foldCaser.String(wanted) {
				return true
			}
		}
	}
	return false
}

// matchesAnyProvider matches case-insensitively in both substring
// directions, since catalog provider names ("Amazon Prime Video") rarely
// coincide exactly with what users type ("prime").
func matchesAnyProvider(movie domain.Movie, subscriptions []string) bool {
	for _, provider := range movie.Providers {
		p := foldCaser.String(provider)
		for _, sub := range subscriptions {
			s := foldCaser.String(sub)
			if strings.Contains(p, s) || strings.Contains(s, p) {
				return true
			}
		}
	}
	return false
}
