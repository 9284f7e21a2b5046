package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/moviemind/moviemind-backend/domain"
)

type profileUsecase struct {
	profileRepository domain.ProfileRepository
	contextTimeout    time.Duration
}

func NewProfileUsecase(profileRepository domain.ProfileRepository, timeout time.Duration) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepository: profileRepository,
		contextTimeout:    timeout,
	}
}

func (pu *profileUsecase) Fetch(ctx context.Context, userID string) (domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	profile, err := pu.profileRepository.FetchByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		profile = domain.UserProfile{UserID: userID}
		err = nil
	}
	profile.EnsureMaps()
	return profile, err
}

func (pu *profileUsecase) UpdateTastes(ctx context.Context, userID string, req domain.UpdateTastesRequest) (domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	profile, err := pu.profileRepository.FetchByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		profile = domain.UserProfile{UserID: userID}
	} else if err != nil {
		return profile, err
	}
	profile.EnsureMaps()

	profile.FavoriteGenres = req.FavoriteGenres
	profile.SelectedSubscriptions = req.SelectedSubscriptions
	profile.UpdatedAt = time.Now().UTC()

	if err := pu.profileRepository.Upsert(ctx, &profile); err != nil {
		return profile, err
	}
	return profile, nil
}
