package client_repository

import (
	"context"
	"errors"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindClientByIdRepository struct {
	Db *mongo.Database
}

func NewFindClientByIdRepository(db *mongo.Database) *FindClientByIdRepository {
	return &FindClientByIdRepository{
		Db: db,
	}
}

func (r *FindClientByIdRepository) Find(clientId primitive.ObjectID) (*models.Client, error) {
	collection := r.Db.Collection("clientes_optimizados")

	var client models.Client
	err := collection.FindOne(context.Background(), bson.M{"_id": clientId}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &client, nil
}
