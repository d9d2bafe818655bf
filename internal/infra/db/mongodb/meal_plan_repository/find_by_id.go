package meal_plan_repository

import (
	"context"
	"errors"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindMealPlanByIdRepository struct {
	Db *mongo.Database
}

func NewFindMealPlanByIdRepository(db *mongo.Database) *FindMealPlanByIdRepository {
	return &FindMealPlanByIdRepository{
		Db: db,
	}
}

func (r *FindMealPlanByIdRepository) Find(planId primitive.ObjectID) (*models.MealPlan, error) {
	collection := r.Db.Collection("planes_comidas_optimizados")

	var plan models.MealPlan
	err := collection.FindOne(context.Background(), bson.M{"_id": planId}).Decode(&plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &plan, nil
}
