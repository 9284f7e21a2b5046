package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/moviemind/moviemind-backend/domain"
)

type reviewUsecase struct {
	reviewRepository   domain.ReviewRepository
	profileRepository  domain.ProfileRepository
	movieRepository    domain.MovieRepository
	analyzer           domain.ReviewAnalyzer
	dailyAnalysisLimit int
	movieTagTopN       int
	contextTimeout     time.Duration
}

func NewReviewUsecase(
	reviewRepository domain.ReviewRepository,
	profileRepository domain.ProfileRepository,
	movieRepository domain.MovieRepository,
	analyzer domain.ReviewAnalyzer,
	dailyAnalysisLimit int,
	movieTagTopN int,
	timeout time.Duration,
) domain.ReviewUsecase {
	return &reviewUsecase{
		reviewRepository:   reviewRepository,
		profileRepository:  profileRepository,
		movieRepository:    movieRepository,
		analyzer:           analyzer,
		dailyAnalysisLimit: dailyAnalysisLimit,
		movieTagTopN:       movieTagTopN,
		contextTimeout:     timeout,
	}
}

// Submit is the two-phase review write. Phase one persists the raw review as
// pending before anything can fail. Analysis, preference accumulation, the
// analyzed re-persist, and the catalog tag recompute all happen only after a
// successful, well-formed analyzer response; a failed analysis leaves the
// pending review as the only mutation.
func (ru *reviewUsecase) Submit(ctx context.Context, userID string, movieID string, req domain.SubmitReviewRequest) (domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	now := time.Now().UTC()
	review := domain.Review{
		MovieID:   movieID,
		UserID:    userID,
		Rating:    req.Rating,
		Text:      req.Text,
		Emotions:  req.Emotions,
		Status:    domain.ReviewStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ru.reviewRepository.Upsert(ctx, &review); err != nil {
		return review, err
	}

	profile, err := ru.profileRepository.FetchByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		profile = domain.UserProfile{UserID: userID}
	} else if err != nil {
		return review, err
	}
	profile.EnsureMaps()

	today := now.Format("2006-01-02")
	if profile.LastAnalysisDate != today {
		profile.AIAnalysisCount = 0
		profile.LastAnalysisDate = today
	}
	if profile.AIAnalysisCount >= ru.dailyAnalysisLimit {
		return review, domain.ErrRateLimitExceeded
	}
	profile.AIAnalysisCount++

	result, err := ru.analyzer.Analyze(ctx, req.Text, req.Rating, req.Emotions)
	if err != nil {
		return review, err
	}

	accumulatePreferences(&profile, result, req.Rating, req.Emotions)
	profile.UpdatedAt = now
	if err := ru.profileRepository.Upsert(ctx, &profile); err != nil {
		return review, err
	}

	review.Features = result.Features
	review.Themes = result.Themes
	review.Emotions = mergeTags(req.Emotions, result.Emotions)
	review.TagSentiment = result.TagSentiment
	review.Status = domain.ReviewStatusAnalyzed
	review.UpdatedAt = time.Now().UTC()
	if err := ru.reviewRepository.Upsert(ctx, &review); err != nil {
		return review, err
	}

	if err := ru.recomputeMovieTags(ctx, movieID); err != nil {
		return review, err
	}

	return review, nil
}

// recomputeMovieTags rebuilds the movie's aggregated top-N tag lists from
// every review of that movie. Full recomputation, not incremental; the
// aggregated fields are cache, so correctness wins over efficiency at the
// review volumes a single movie sees.
func (ru *reviewUsecase) recomputeMovieTags(ctx context.Context, movieID string) error {
	reviews, err := ru.reviewRepository.FetchByMovie(ctx, movieID)
	if err != nil {
		return err
	}

	features := make([][]string, 0, len(reviews))
	emotions := make([][]string, 0, len(reviews))
	themes := make([][]string, 0, len(reviews))
	for _, review := range reviews {
		features = append(features, review.Features)
		emotions = append(emotions, review.Emotions)
		themes = append(themes, review.Themes)
	}

	return ru.movieRepository.UpdateAggregatedTags(ctx, movieID, domain.AggregatedTags{
		Features: topTagsByFrequency(features, ru.movieTagTopN),
		Emotions: topTagsByFrequency(emotions, ru.movieTagTopN),
		Themes:   topTagsByFrequency(themes, ru.movieTagTopN),
	})
}

func (ru *reviewUsecase) FetchByMovie(ctx context.Context, movieID string) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()
	return ru.reviewRepository.FetchByMovie(ctx, movieID)
}

func (ru *reviewUsecase) FetchByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()
	return ru.reviewRepository.FetchByUser(ctx, userID)
}

func mergeTags(base []string, extra []string) []string {
	merged := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, tag := range base {
		if _, ok := seen[tag]; !ok {
			seen[tag] = struct{}{}
			merged = append(merged, tag)
		}
	}
	for _, tag := range extra {
		if _, ok := seen[tag]; !ok {
			seen[tag] = struct{}{}
			merged = append(merged, tag)
		}
	}
	return merged
}
