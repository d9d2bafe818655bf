package client_repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteClientRepository struct {
	Db *mongo.Database
}

func NewDeleteClientRepository(db *mongo.Database) *DeleteClientRepository {
	return &DeleteClientRepository{
		Db: db,
	}
}

func (r *DeleteClientRepository) Delete(clientId primitive.ObjectID) error {
	collection := r.Db.Collection("clientes_optimizados")

	_, err := collection.DeleteOne(context.Background(), bson.M{"_id": clientId})
	return err
}
