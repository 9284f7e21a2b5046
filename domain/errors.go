package domain

import "errors"

var (
	// ErrAnalysisFormat is returned when the external analyzer responds with
	// something other than a JSON object (an array, null, or unparseable
	// text). No profile or catalog state may be mutated after it.
	ErrAnalysisFormat = errors.New("analysis result is not a JSON object")

	// ErrRateLimitExceeded is returned when the per-user daily analysis quota
	// is exhausted. The first-phase review write still happens.
	ErrRateLimitExceeded = errors.New("daily analysis limit reached")

	ErrProfileNotFound = errors.New("user profile not found")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserConflict    = errors.New("user already exists with the given email")
)
