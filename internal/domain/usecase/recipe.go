package usecase

import (
	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateRecipeRepository interface {
	Create(recipe *models.Recipe) (*models.Recipe, error)
}

type FindRecipesInputRepository struct {
	Categoria   string
	Dificultad  string
	Restriccion string
	Search      string
	SoloActivas bool
	Limit       int
	Offset      int
}

type FindRecipesRepository interface {
	Find(data *FindRecipesInputRepository) ([]models.Recipe, error)
}

// FindRecipeByIdRepository resolves a recipe reference. A missing recipe is
// reported as (nil, nil), never as an error: the shopping list generator and
// the migrator both rely on a defined not-found outcome.
type FindRecipeByIdRepository interface {
	Find(recipeId primitive.ObjectID) (*models.Recipe, error)
}

type UpdateRecipeRepository interface {
	Update(recipeId primitive.ObjectID, recipe *models.Recipe) (*models.Recipe, error)
}

type DeleteRecipeRepository interface {
	Delete(recipeId primitive.ObjectID) error
}

type GetRecipeStatsRepository interface {
	Stats() ([]models.RecipeCategoryStats, error)
}
