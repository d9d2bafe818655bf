package recipe_repository

import (
	"context"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateRecipeRepository struct {
	Db *mongo.Database
}

func NewUpdateRecipeRepository(db *mongo.Database) *UpdateRecipeRepository {
	return &UpdateRecipeRepository{
		Db: db,
	}
}

// Update replaces the stored recipe wholesale. The ingredient list is atomic
// per save, so partial updates of it are not supported.
func (r *UpdateRecipeRepository) Update(recipeId primitive.ObjectID, recipe *models.Recipe) (*models.Recipe, error) {
	collection := r.Db.Collection("recetas_optimizadas")

	recipe.Id = recipeId
	recipe.UpdatedAt = time.Now()
	recipe.CalculateDerivedFields()

	result, err := collection.ReplaceOne(context.Background(), bson.M{"_id": recipeId}, recipe)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return recipe, nil
}
