package domain

const (
	CollectionUser        = "users"
	CollectionMovie       = "movies"
	CollectionReview      = "reviews"
	CollectionUserProfile = "user_profiles"
	CollectionMasterpiece = "masterpieces"
)
