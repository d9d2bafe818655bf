package client_repository

import (
	"context"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateClientRepository struct {
	Db *mongo.Database
}

func NewUpdateClientRepository(db *mongo.Database) *UpdateClientRepository {
	return &UpdateClientRepository{
		Db: db,
	}
}

func (r *UpdateClientRepository) Update(clientId primitive.ObjectID, client *models.Client) (*models.Client, error) {
	collection := r.Db.Collection("clientes_optimizados")

	client.Id = clientId
	client.UpdatedAt = time.Now()

	result, err := collection.ReplaceOne(context.Background(), bson.M{"_id": clientId}, client)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return client, nil
}
