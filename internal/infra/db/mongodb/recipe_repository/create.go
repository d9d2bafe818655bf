package recipe_repository

import (
	"context"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateRecipeRepository struct {
	Db *mongo.Database
}

func NewCreateRecipeRepository(db *mongo.Database) *CreateRecipeRepository {
	return &CreateRecipeRepository{
		Db: db,
	}
}

func (r *CreateRecipeRepository) Create(recipe *models.Recipe) (*models.Recipe, error) {
	collection := r.Db.Collection("recetas_optimizadas")

	recipe.Id = primitive.NewObjectID()
	recipe.Activa = true
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = time.Now()

	// Derived fields are never trusted from the caller.
	recipe.CalculateDerivedFields()

	_, err := collection.InsertOne(context.Background(), recipe)
	if err != nil {
		return nil, err
	}

	return recipe, nil
}
