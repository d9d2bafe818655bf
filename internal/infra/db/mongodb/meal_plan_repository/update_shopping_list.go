package meal_plan_repository

import (
	"context"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateShoppingListRepository struct {
	Db *mongo.Database
}

func NewUpdateShoppingListRepository(db *mongo.Database) *UpdateShoppingListRepository {
	return &UpdateShoppingListRepository{
		Db: db,
	}
}

func (r *UpdateShoppingListRepository) UpdateShoppingList(planId primitive.ObjectID, items []models.ShoppingItem) error {
	collection := r.Db.Collection("planes_comidas_optimizados")

	update := bson.M{
		"$set": bson.M{
			"listaCompras":    items,
			"updatedAt":       time.Now(),
			"ultimaActividad": time.Now(),
		},
	}

	result, err := collection.UpdateOne(context.Background(), bson.M{"_id": planId}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
