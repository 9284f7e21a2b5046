package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/moviemind/moviemind-backend/domain"
)

type masterpieceUsecase struct {
	masterpieceRepository domain.MasterpieceRepository
	movieRepository       domain.MovieRepository
	contextTimeout        time.Duration
}

func NewMasterpieceUsecase(
	masterpieceRepository domain.MasterpieceRepository,
	movieRepository domain.MovieRepository,
	timeout time.Duration,
) domain.MasterpieceUsecase {
	return &masterpieceUsecase{
		masterpieceRepository: masterpieceRepository,
		movieRepository:       movieRepository,
		contextTimeout:        timeout,
	}
}

func (mu *masterpieceUsecase) Register(ctx context.Context, userID string, movieID string) error {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	if _, err := mu.movieRepository.FetchByID(ctx, movieID); err != nil {
		return err
	}

	return mu.masterpieceRepository.Add(ctx, &domain.Masterpiece{
		UserID:    userID,
		MovieID:   movieID,
		CreatedAt: time.Now().UTC(),
	})
}

func (mu *masterpieceUsecase) Unregister(ctx context.Context, userID string, movieID string) error {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	return mu.masterpieceRepository.Remove(ctx, userID, movieID)
}

func (mu *masterpieceUsecase) FetchMovies(ctx context.Context, userID string) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	masterpieces, err := mu.masterpieceRepository.FetchByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, 0, len(masterpieces))
	for _, masterpiece := range masterpieces {
		movie, err := mu.movieRepository.FetchByID(ctx, masterpiece.MovieID)
		if errors.Is(err, domain.ErrMovieNotFound) {
			// The movie left the catalog; the stale entry is skipped.
			continue
		}
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}

	return movies, nil
}
