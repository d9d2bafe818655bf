package user_repository

import (
	"context"
	"errors"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUserRepository struct {
	Db *mongo.Database
}

func NewFindUserRepository(db *mongo.Database) *FindUserRepository {
	return &FindUserRepository{
		Db: db,
	}
}

func (r *FindUserRepository) FindByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *FindUserRepository) Find(userId primitive.ObjectID) (*models.User, error) {
	return r.findOne(bson.M{"_id": userId})
}

func (r *FindUserRepository) findOne(filter bson.M) (*models.User, error) {
	collection := r.Db.Collection("users")

	var user models.User
	err := collection.FindOne(context.Background(), filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *FindUserRepository) TouchLastLogin(userId primitive.ObjectID) error {
	collection := r.Db.Collection("users")

	_, err := collection.UpdateOne(context.Background(), bson.M{"_id": userId}, bson.M{
		"$set": bson.M{"ultimoLogin": time.Now(), "updatedAt": time.Now()},
	})
	return err
}
