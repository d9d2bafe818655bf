package client_repository

import (
	"context"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindClientsRepository struct {
	Db *mongo.Database
}

func NewFindClientsRepository(db *mongo.Database) *FindClientsRepository {
	return &FindClientsRepository{
		Db: db,
	}
}

func (r *FindClientsRepository) Find(data *usecase.FindClientsInputRepository) ([]models.Client, error) {
	collection := r.Db.Collection("clientes_optimizados")

	filter := bson.M{}
	if data.Search != "" {
		filter["$or"] = []bson.M{
			{"nombre": bson.M{"$regex": data.Search, "$options": "i"}},
			{"email": bson.M{"$regex": data.Search, "$options": "i"}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}})
	if data.Limit > 0 {
		opts.SetLimit(int64(data.Limit)).SetSkip(int64(data.Offset))
	}

	cursor, err := collection.Find(context.Background(), filter, opts)
	if err != nil {
		return nil, err
	}

	var clients []models.Client
	if err = cursor.All(context.Background(), &clients); err != nil {
		return nil, err
	}

	return clients, nil
}
