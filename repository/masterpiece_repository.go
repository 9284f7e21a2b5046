package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviemind/moviemind-backend/domain"
	"github.com/moviemind/moviemind-backend/mongo"
)

type masterpieceRepository struct {
	database   mongo.Database
	collection string
}

func NewMasterpieceRepository(db mongo.Database, collection string) domain.MasterpieceRepository {
	return &masterpieceRepository{
		database:   db,
		collection: collection,
	}
}

func (mr *masterpieceRepository) Add(ctx context.Context, masterpiece *domain.Masterpiece) error {
	collection := mr.database.Collection(mr.collection)

	filter := bson.M{"user_id": masterpiece.UserID, "movie_id": masterpiece.MovieID}
	_, err := collection.UpdateOne(ctx, filter, bson.M{"$set": masterpiece}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("register masterpiece %s: %w", masterpiece.MovieID, err)
	}

	return nil
}

func (mr *masterpieceRepository) Remove(ctx context.Context, userID string, movieID string) error {
	collection := mr.database.Collection(mr.collection)

	_, err := collection.DeleteOne(ctx, bson.M{"user_id": userID, "movie_id": movieID})
	if err != nil {
		return fmt.Errorf("unregister masterpiece %s: %w", movieID, err)
	}

	return nil
}

func (mr *masterpieceRepository) FetchByUser(ctx context.Context, userID string) ([]domain.Masterpiece, error) {
	collection := mr.database.Collection(mr.collection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch masterpieces for user %s: %w", userID, err)
	}

	var masterpieces []domain.Masterpiece
	if err := cursor.All(ctx, &masterpieces); err != nil {
		return nil, fmt.Errorf("decode masterpieces: %w", err)
	}

	return masterpieces, nil
}
