package meal_plan_repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteMealPlanRepository struct {
	Db *mongo.Database
}

func NewDeleteMealPlanRepository(db *mongo.Database) *DeleteMealPlanRepository {
	return &DeleteMealPlanRepository{
		Db: db,
	}
}

// Delete removes the aggregate. Days, meals and shopping items live inside
// the document, so this is a single-document operation.
func (r *DeleteMealPlanRepository) Delete(planId primitive.ObjectID) error {
	collection := r.Db.Collection("planes_comidas_optimizados")

	_, err := collection.DeleteOne(context.Background(), bson.M{"_id": planId})
	return err
}
