package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moviemind/moviemind-backend/domain"
	"github.com/moviemind/moviemind-backend/domain/mocks"
)

func TestReviewUsecase_Submit(t *testing.T) {
	const userID = "user-1"
	const movieID = "movie-1"

	request := domain.SubmitReviewRequest{
		Rating:   5,
		Text:     "Loved the bond between the brothers.",
		Emotions: []string{"Exciting"},
	}

	analysis := &domain.AnalysisResult{
		Features: []string{"Brothers' Bond"},
		Emotions: []string{"Emotion"},
		Themes:   []string{"Family"},
		TagSentiment: map[string]domain.Sentiment{
			"Brothers' Bond": domain.SentimentPositive,
			"Emotion":        domain.SentimentPositive,
			"Family":         domain.SentimentPositive,
		},
	}

	t.Run("success persists the review twice and updates profile and catalog", func(t *testing.T) {
		reviewRepo := new(mocks.ReviewRepository)
		profileRepo := new(mocks.ProfileRepository)
		movieRepo := new(mocks.MovieRepository)
		analyzer := new(mocks.ReviewAnalyzer)

		reviewRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
			return r.Status == domain.ReviewStatusPending && r.UserID == userID && r.MovieID == movieID
		})).Return(nil).Once()

		profileRepo.On("FetchByUserID", mock.Anything, userID).
			Return(domain.UserProfile{}, domain.ErrProfileNotFound)

		analyzer.On("Analyze", mock.Anything, request.Text, request.Rating, request.Emotions).
			Return(analysis, nil)

		today := time.Now().UTC().Format("2006-01-02")
		profileRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.UserProfile) bool {
			return p.UserID == userID &&
				p.AIAnalysisCount == 1 &&
				p.LastAnalysisDate == today &&
				p.Likes["Family"] == 1 &&
				p.Likes["Exciting"] == 1 &&
				len(p.Dislikes) == 0
		})).Return(nil).Once()

		reviewRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
			return r.Status == domain.ReviewStatusAnalyzed
		})).Return(nil).Once()

		analyzed := domain.Review{
			MovieID:  movieID,
			UserID:   userID,
			Features: analysis.Features,
			Emotions: []string{"Exciting", "Emotion"},
			Themes:   analysis.Themes,
		}
		reviewRepo.On("FetchByMovie", mock.Anything, movieID).
			Return([]domain.Review{analyzed}, nil)

		movieRepo.On("UpdateAggregatedTags", mock.Anything, movieID, domain.AggregatedTags{
			Features: []string{"Brothers' Bond"},
			Emotions: []string{"Exciting", "Emotion"},
			Themes:   []string{"Family"},
		}).Return(nil).Once()

		uc := NewReviewUsecase(reviewRepo, profileRepo, movieRepo, analyzer, 3, 10, time.Second)
		review, err := uc.Submit(context.Background(), userID, movieID, request)

		assert.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusAnalyzed, review.Status)
		assert.Equal(t, []string{"Exciting", "Emotion"}, review.Emotions)
		assert.Equal(t, analysis.Features, review.Features)
		assert.Equal(t, analysis.TagSentiment, review.TagSentiment)

		reviewRepo.AssertExpectations(t)
		profileRepo.AssertExpectations(t)
		movieRepo.AssertExpectations(t)
	})

	t.Run("exhausted quota keeps the pending review and nothing else", func(t *testing.T) {
		reviewRepo := new(mocks.ReviewRepository)
		profileRepo := new(mocks.ProfileRepository)
		movieRepo := new(mocks.MovieRepository)
		analyzer := new(mocks.ReviewAnalyzer)

		reviewRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()
		profileRepo.On("FetchByUserID", mock.Anything, userID).Return(domain.UserProfile{
			UserID:           userID,
			AIAnalysisCount:  3,
			LastAnalysisDate: time.Now().UTC().Format("2006-01-02"),
		}, nil)

		uc := NewReviewUsecase(reviewRepo, profileRepo, movieRepo, analyzer, 3, 10, time.Second)
		review, err := uc.Submit(context.Background(), userID, movieID, request)

		assert.ErrorIs(t, err, domain.ErrRateLimitExceeded)
		assert.Equal(t, domain.ReviewStatusPending, review.Status)
		reviewRepo.AssertNumberOfCalls(t, "Upsert", 1)
		profileRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		analyzer.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		movieRepo.AssertNotCalled(t, "UpdateAggregatedTags", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("quota resets on a new calendar day", func(t *testing.T) {
		reviewRepo := new(mocks.ReviewRepository)
		profileRepo := new(mocks.ProfileRepository)
		movieRepo := new(mocks.MovieRepository)
		analyzer := new(mocks.ReviewAnalyzer)

		reviewRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		profileRepo.On("FetchByUserID", mock.Anything, userID).Return(domain.UserProfile{
			UserID:           userID,
			AIAnalysisCount:  3,
			LastAnalysisDate: "2020-01-01",
		}, nil)
		analyzer.On("Analyze", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(analysis, nil)

		today := time.Now().UTC().Format("2006-01-02")
		profileRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.UserProfile) bool {
			return p.AIAnalysisCount == 1 && p.LastAnalysisDate == today
		})).Return(nil).Once()

		reviewRepo.On("FetchByMovie", mock.Anything, movieID).Return([]domain.Review{}, nil)
		movieRepo.On("UpdateAggregatedTags", mock.Anything, movieID, mock.Anything).Return(nil)

		uc := NewReviewUsecase(reviewRepo, profileRepo, movieRepo, analyzer, 3, 10, time.Second)
		_, err := uc.Submit(context.Background(), userID, movieID, request)

		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
	})

	t.Run("malformed analyzer output leaves profile and catalog untouched", func(t *testing.T) {
		reviewRepo := new(mocks.ReviewRepository)
		profileRepo := new(mocks.ProfileRepository)
		movieRepo := new(mocks.MovieRepository)
		analyzer := new(mocks.ReviewAnalyzer)

		reviewRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()
		profileRepo.On("FetchByUserID", mock.Anything, userID).
			Return(domain.UserProfile{}, domain.ErrProfileNotFound)
		analyzer.On("Analyze", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.ErrAnalysisFormat)

		uc := NewReviewUsecase(reviewRepo, profileRepo, movieRepo, analyzer, 3, 10, time.Second)
		review, err := uc.Submit(context.Background(), userID, movieID, request)

		assert.ErrorIs(t, err, domain.ErrAnalysisFormat)
		assert.Equal(t, domain.ReviewStatusPending, review.Status)
		reviewRepo.AssertNumberOfCalls(t, "Upsert", 1)
		profileRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		movieRepo.AssertNotCalled(t, "UpdateAggregatedTags", mock.Anything, mock.Anything, mock.Anything)
	})
}
