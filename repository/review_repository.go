package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviemind/moviemind-backend/domain"
	"github.com/moviemind/moviemind-backend/mongo"
)

type reviewRepository struct {
	database   mongo.Database
	collection string
}

func NewReviewRepository(db mongo.Database, collection string) domain.ReviewRepository {
	return &reviewRepository{
		database:   db,
		collection: collection,
	}
}

// Upsert keeps exactly one live review per (user, movie); a later submission
// replaces the whole document.
func (rr *reviewRepository) Upsert(ctx context.Context, review *domain.Review) error {
	collection := rr.database.Collection(rr.collection)

	filter := bson.M{"user_id": review.UserID, "movie_id": review.MovieID}
	_, err := collection.UpdateOne(ctx, filter, bson.M{"$set": review}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert review for movie %s: %w", review.MovieID, err)
	}

	return nil
}

func (rr *reviewRepository) FetchByMovie(ctx context.Context, movieID string) ([]domain.Review, error) {
	collection := rr.database.Collection(rr.collection)

	cursor, err := collection.Find(ctx, bson.M{"movie_id": movieID})
	if err != nil {
		return nil, fmt.Errorf("fetch reviews for movie %s: %w", movieID, err)
	}

	var reviews []domain.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}

func (rr *reviewRepository) FetchByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	collection := rr.database.Collection(rr.collection)

	cursor, err := collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("fetch reviews for user %s: %w", userID, err)
	}

	var reviews []domain.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}

func (rr *reviewRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	collection := rr.database.Collection(rr.collection)

	count, err := collection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("count reviews for user %s: %w", userID, err)
	}

	return count, nil
}
