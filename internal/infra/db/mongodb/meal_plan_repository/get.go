package meal_plan_repository

import (
	"context"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindMealPlansRepository struct {
	Db *mongo.Database
}

func NewFindMealPlansRepository(db *mongo.Database) *FindMealPlansRepository {
	return &FindMealPlansRepository{
		Db: db,
	}
}

func (r *FindMealPlansRepository) Find(data *usecase.FindMealPlansInputRepository) ([]models.MealPlan, error) {
	collection := r.Db.Collection("planes_comidas_optimizados")

	filter := bson.M{}
	if data.ClienteId != nil {
		filter["clienteId"] = *data.ClienteId
	}
	if data.Estado != "" {
		filter["estado"] = data.Estado
	}
	if data.EsPlantilla != nil {
		filter["esPlantilla"] = *data.EsPlantilla
	}
	if data.Search != "" {
		filter["nombre"] = bson.M{"$regex": data.Search, "$options": "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "fechaInicio", Value: -1}})
	if data.Limit > 0 {
		opts.SetLimit(int64(data.Limit)).SetSkip(int64(data.Offset))
	}

	cursor, err := collection.Find(context.Background(), filter, opts)
	if err != nil {
		return nil, err
	}

	var plans []models.MealPlan
	if err = cursor.All(context.Background(), &plans); err != nil {
		return nil, err
	}

	return plans, nil
}
