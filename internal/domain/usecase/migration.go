package usecase

import "github.com/tmc-recipes/meals-backend/internal/domain/models"

// The migrator reads the legacy normalized collections through these sources
// and writes embedded documents through MigrationTarget. Keeping both sides
// behind interfaces lets the batch logic run against in-memory fakes.

type LegacyMealPlanSource interface {
	FindPlans() ([]models.LegacyPlan, error)
	FindPlanRecipes() ([]models.LegacyPlanRecipe, error)
}

type LegacyRecipeSource interface {
	FindRecipes() ([]models.LegacyRecipe, error)
	FindIngredients() ([]models.LegacyIngredient, error)
}

type MigrationTarget interface {
	FindMigratedRecipes() ([]models.Recipe, error)
	CreateRecipe(recipe *models.Recipe) (*models.Recipe, error)
	CreateMealPlan(plan *models.MealPlan) (*models.MealPlan, error)
	CountRecipes() (int64, error)
	CountMealPlans() (int64, error)
	ClearRecipes() error
	ClearMealPlans() error
}

// CollectionArchiver snapshots a source collection into a timestamped backup
// collection before the batch mutates anything.
type CollectionArchiver interface {
	Archive(collection string) (backupName string, copied int, err error)
}
