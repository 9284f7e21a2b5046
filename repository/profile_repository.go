package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviemind/moviemind-backend/domain"
	"github.com/moviemind/moviemind-backend/mongo"
)

type profileRepository struct {
	database   mongo.Database
	collection string
}

func NewProfileRepository(db mongo.Database, collection string) domain.ProfileRepository {
	return &profileRepository{
		database:   db,
		collection: collection,
	}
}

func (pr *profileRepository) FetchByUserID(ctx context.Context, userID string) (domain.UserProfile, error) {
	collection := pr.database.Collection(pr.collection)

	var profile domain.UserProfile
	err := collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if errors.Is(err, driver.ErrNoDocuments) {
		return profile, domain.ErrProfileNotFound
	}
	if err != nil {
		return profile, fmt.Errorf("fetch profile for user %s: %w", userID, err)
	}

	return profile, nil
}

// Upsert replaces the whole profile document. Two concurrent analyzed
// reviews for the same user resolve last-write-wins, so simultaneous
// increments to the same tag counter can lose an update.
func (pr *profileRepository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	collection := pr.database.Collection(pr.collection)

	filter := bson.M{"user_id": profile.UserID}
	_, err := collection.UpdateOne(ctx, filter, bson.M{"$set": profile}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert profile for user %s: %w", profile.UserID, err)
	}

	return nil
}
