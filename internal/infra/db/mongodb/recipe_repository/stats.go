package recipe_repository

import (
	"context"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type GetRecipeStatsRepository struct {
	Db *mongo.Database
}

func NewGetRecipeStatsRepository(db *mongo.Database) *GetRecipeStatsRepository {
	return &GetRecipeStatsRepository{
		Db: db,
	}
}

// Stats groups active recipes per category with count, average cost and
// average total time (preparation plus cooking).
func (r *GetRecipeStatsRepository) Stats() ([]models.RecipeCategoryStats, error) {
	collection := r.Db.Collection("recetas_optimizadas")

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"activa": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$categoria",
			"total":         bson.M{"$sum": 1},
			"costoPromedio": bson.M{"$avg": "$costoTotal"},
			"tiempoPromedio": bson.M{"$avg": bson.M{
				"$add": bson.A{"$tiempoPreparacion", "$tiempoCoccion"},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
	}

	cursor, err := collection.Aggregate(context.Background(), pipeline)
	if err != nil {
		return nil, err
	}

	var stats []models.RecipeCategoryStats
	if err = cursor.All(context.Background(), &stats); err != nil {
		return nil, err
	}

	return stats, nil
}
