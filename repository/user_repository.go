package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/moviemind/moviemind-backend/domain"
	"github.com/moviemind/moviemind-backend/mongo"
)

type userRepository struct {
	database   mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) domain.UserRepository {
	return &userRepository{
		database:   db,
		collection: collection,
	}
}

func (ur *userRepository) Create(ctx context.Context, user *domain.User) error {
	collection := ur.database.Collection(ur.collection)

	_, err := collection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (ur *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	collection := ur.database.Collection(ur.collection)

	var user domain.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, driver.ErrNoDocuments) {
		return user, domain.ErrUserNotFound
	}
	if err != nil {
		return user, fmt.Errorf("fetch user by email: %w", err)
	}

	return user, nil
}

func (ur *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	collection := ur.database.Collection(ur.collection)

	var user domain.User
	idHex, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, fmt.Errorf("invalid user id %s: %w", id, err)
	}

	err = collection.FindOne(ctx, bson.M{"_id": idHex}).Decode(&user)
	if errors.Is(err, driver.ErrNoDocuments) {
		return user, domain.ErrUserNotFound
	}
	if err != nil {
		return user, fmt.Errorf("fetch user %s: %w", id, err)
	}

	return user, nil
}
