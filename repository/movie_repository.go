package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/moviemind/moviemind-backend/domain"
	"github.com/moviemind/moviemind-backend/mongo"
)

type movieRepository struct {
	database   mongo.Database
	collection string
}

func NewMovieRepository(db mongo.Database, collection string) domain.MovieRepository {
	return &movieRepository{
		database:   db,
		collection: collection,
	}
}

func (mr *movieRepository) FetchAll(ctx context.Context) ([]domain.Movie, error) {
	collection := mr.database.Collection(mr.collection)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("fetch movies: %w", err)
	}

	var movies []domain.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}

	return movies, nil
}

func (mr *movieRepository) FetchByID(ctx context.Context, id string) (domain.Movie, error) {
	collection := mr.database.Collection(mr.collection)

	var movie domain.Movie
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if errors.Is(err, driver.ErrNoDocuments) {
		return movie, domain.ErrMovieNotFound
	}
	if err != nil {
		return movie, fmt.Errorf("fetch movie %s: %w", id, err)
	}

	return movie, nil
}

func (mr *movieRepository) FetchByGenres(ctx context.Context, genres []string) ([]domain.Movie, error) {
	collection := mr.database.Collection(mr.collection)

	cursor, err := collection.Find(ctx, bson.M{"genres": bson.M{"$in": genres}})
	if err != nil {
		return nil, fmt.Errorf("fetch movies by genres: %w", err)
	}

	var movies []domain.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}

	return movies, nil
}

func (mr *movieRepository) UpdateAggregatedTags(ctx context.Context, id string, tags domain.AggregatedTags) error {
	collection := mr.database.Collection(mr.collection)

	_, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"features": tags.Features,
		"emotions": tags.Emotions,
		"themes":   tags.Themes,
	}})
	if err != nil {
		return fmt.Errorf("update aggregated tags for movie %s: %w", id, err)
	}

	return nil
}
