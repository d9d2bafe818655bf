package recipe_repository

import (
	"context"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindRecipesRepository struct {
	Db *mongo.Database
}

func NewFindRecipesRepository(db *mongo.Database) *FindRecipesRepository {
	return &FindRecipesRepository{
		Db: db,
	}
}

func (r *FindRecipesRepository) Find(data *usecase.FindRecipesInputRepository) ([]models.Recipe, error) {
	collection := r.Db.Collection("recetas_optimizadas")

	filter := bson.M{}
	if data.SoloActivas {
		filter["activa"] = true
	}
	if data.Categoria != "" {
		filter["categoria"] = data.Categoria
	}
	if data.Dificultad != "" {
		filter["dificultad"] = data.Dificultad
	}
	if data.Restriccion != "" {
		filter["restriccionesDieteticas"] = data.Restriccion
	}
	if data.Search != "" {
		filter["$or"] = []bson.M{
			{"nombre": bson.M{"$regex": data.Search, "$options": "i"}},
			{"descripcion": bson.M{"$regex": data.Search, "$options": "i"}},
			{"tags": bson.M{"$regex": data.Search, "$options": "i"}},
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

	var recipes []models.Recipe
	if err = cursor.All(context.Background(), &recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}
