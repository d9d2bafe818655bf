package recipe_repository

import (
	"context"
	"errors"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindRecipeByIdRepository struct {
	Db *mongo.Database
}

func NewFindRecipeByIdRepository(db *mongo.Database) *FindRecipeByIdRepository {
	return &FindRecipeByIdRepository{
		Db: db,
	}
}

// Find returns (nil, nil) when the recipe does not exist. The shopping list
// generator and the migrator depend on that outcome to degrade gracefully.
func (r *FindRecipeByIdRepository) Find(recipeId primitive.ObjectID) (*models.Recipe, error) {
	collection := r.Db.Collection("recetas_optimizadas")

	var recipe models.Recipe
	err := collection.FindOne(context.Background(), bson.M{"_id": recipeId}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &recipe, nil
}
