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

func TestMovieUsecase_FetchPopular(t *testing.T) {
	catalog := []domain.Movie{
		{ID: "m1", Popularity: 10},
		{ID: "m2", Popularity: 99},
		{ID: "m3", Popularity: 50},
	}

	t.Run("sorts by popularity and truncates", func(t *testing.T) {
		movieRepo := new(mocks.MovieRepository)
		movieRepo.On("FetchAll", mock.Anything).Return(catalog, nil)

		uc := NewMovieUsecase(movieRepo, time.Second)
		movies, err := uc.FetchPopular(context.Background(), 2)

		assert.NoError(t, err)
		assert.Len(t, movies, 2)
		assert.Equal(t, "m2", movies[0].ID)
		assert.Equal(t, "m3", movies[1].ID)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		movieRepo := new(mocks.MovieRepository)
		movieRepo.On("FetchAll", mock.Anything).Return(catalog, nil)

		uc := NewMovieUsecase(movieRepo, time.Second)
		movies, err := uc.FetchPopular(context.Background(), 0)

		assert.NoError(t, err)
		assert.Len(t, movies, 3)
	})
}

func TestMovieUsecase_FetchByGenres(t *testing.T) {
	t.Run("passes genres through and ranks by popularity", func(t *testing.T) {
		movieRepo := new(mocks.MovieRepository)
		movieRepo.On("FetchByGenres", mock.Anything, []string{"Action", "Comedy"}).Return([]domain.Movie{
			{ID: "m1", Genres: []string{"Action"}, Popularity: 10},
			{ID: "m2", Genres: []string{"Comedy"}, Popularity: 80},
		}, nil)

		uc := NewMovieUsecase(movieRepo, time.Second)
		movies, err := uc.FetchByGenres(context.Background(), []string{"Action", "Comedy"}, 1)

		assert.NoError(t, err)
		assert.Len(t, movies, 1)
		assert.Equal(t, "m2", movies[0].ID)
		movieRepo.AssertExpectations(t)
	})
}

func TestMovieUsecase_FetchByID(t *testing.T) {
	t.Run("unknown id propagates the sentinel", func(t *testing.T) {
		movieRepo := new(mocks.MovieRepository)
		movieRepo.On("FetchByID", mock.Anything, "nope").
			Return(domain.Movie{}, domain.ErrMovieNotFound)

		uc := NewMovieUsecase(movieRepo, time.Second)
		_, err := uc.FetchByID(context.Background(), "nope")

		assert.ErrorIs(t, err, domain.ErrMovieNotFound)
	})
}
