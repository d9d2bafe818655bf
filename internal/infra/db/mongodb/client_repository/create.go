package client_repository

import (
	"context"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateClientRepository struct {
	Db *mongo.Database
}

func NewCreateClientRepository(db *mongo.Database) *CreateClientRepository {
	return &CreateClientRepository{
		Db: db,
	}
}

func (r *CreateClientRepository) Create(client *models.Client) (*models.Client, error) {
	collection := r.Db.Collection("clientes_optimizados")

	client.Id = primitive.NewObjectID()
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()

	_, err := collection.InsertOne(context.Background(), client)
	if err != nil {
		return nil, err
	}

	return client, nil
}
