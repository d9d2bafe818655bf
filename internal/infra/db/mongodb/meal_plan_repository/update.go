package meal_plan_repository

import (
	"context"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateMealPlanRepository struct {
	Db *mongo.Database
}

func NewUpdateMealPlanRepository(db *mongo.Database) *UpdateMealPlanRepository {
	return &UpdateMealPlanRepository{
		Db: db,
	}
}

// Update rewrites the whole aggregate in one document replace; embedding
// keeps the days, summary and shopping list consistent without transactions.
func (r *UpdateMealPlanRepository) Update(planId primitive.ObjectID, plan *models.MealPlan) (*models.MealPlan, error) {
	collection := r.Db.Collection("planes_comidas_optimizados")

	plan.Id = planId
	now := time.Now()
	plan.UpdatedAt = now
	plan.UltimaActividad = &now
	plan.CalculateSummary()

	result, err := collection.ReplaceOne(context.Background(), bson.M{"_id": planId}, plan)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return plan, nil
}
