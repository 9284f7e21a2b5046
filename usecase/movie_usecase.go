package usecase

import (
	"context"
	"time"

	"github.com/moviemind/moviemind-backend/domain"
)

type movieUsecase struct {
	movieRepository domain.MovieRepository
	contextTimeout  time.Duration
}

func NewMovieUsecase(movieRepository domain.MovieRepository, timeout time.Duration) domain.MovieUsecase {
	return &movieUsecase{
		movieRepository: movieRepository,
		contextTimeout:  timeout,
	}
}

func (mu *movieUsecase) FetchPopular(ctx context.Context, limit int) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	movies, err := mu.movieRepository.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	sortByPopularity(movies)
	if limit > 0 && len(movies) > limit {
		movies = movies[:limit]
	}
	return movies, nil
}

func (mu *movieUsecase) FetchByGenres(ctx context.Context, genres []string, limit int) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	movies, err := mu.movieRepository.FetchByGenres(ctx, genres)
	if err != nil {
		return nil, err
	}

	sortByPopularity(movies)
	if limit > 0 && len(movies) > limit {
		movies = movies[:limit]
	}
	return movies, nil
}

func (mu *movieUsecase) FetchByID(ctx context.Context, id string) (domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()
	return mu.movieRepository.FetchByID(ctx, id)
}
