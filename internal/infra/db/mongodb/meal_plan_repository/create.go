package meal_plan_repository

import (
	"context"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateMealPlanRepository struct {
	Db *mongo.Database
}

func NewCreateMealPlanRepository(db *mongo.Database) *CreateMealPlanRepository {
	return &CreateMealPlanRepository{
		Db: db,
	}
}

func (r *CreateMealPlanRepository) Create(plan *models.MealPlan) (*models.MealPlan, error) {
	collection := r.Db.Collection("planes_comidas_optimizados")

	plan.Id = primitive.NewObjectID()
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	plan.UltimaActividad = &now

	// The summary is never trusted from the caller.
	plan.CalculateSummary()

	_, err := collection.InsertOne(context.Background(), plan)
	if err != nil {
		return nil, err
	}

	return plan, nil
}
