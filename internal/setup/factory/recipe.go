package factory

import (
	"github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/recipe_repository"
	controllers "github.com/tmc-recipes/meals-backend/internal/presentation/controllers/recipe"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateRecipeController(db *mongo.Database) *controllers.CreateRecipeController {
	createRecipe := recipe_repository.NewCreateRecipeRepository(db)
	return controllers.NewCreateRecipeController(createRecipe)
}

func MakeGetRecipesController(db *mongo.Database) *controllers.GetRecipesController {
	findRecipes := recipe_repository.NewFindRecipesRepository(db)
	return controllers.NewGetRecipesController(findRecipes)
}

func MakeGetRecipeByIdController(db *mongo.Database) *controllers.GetRecipeByIdController {
	findRecipeById := recipe_repository.NewFindRecipeByIdRepository(db)
	return controllers.NewGetRecipeByIdController(findRecipeById)
}

func MakeUpdateRecipeController(db *mongo.Database) *controllers.UpdateRecipeController {
	updateRecipe := recipe_repository.NewUpdateRecipeRepository(db)
	findRecipeById := recipe_repository.NewFindRecipeByIdRepository(db)
	return controllers.NewUpdateRecipeController(updateRecipe, findRecipeById)
}

func MakeDeleteRecipeController(db *mongo.Database) *controllers.DeleteRecipeController {
	deleteRecipe := recipe_repository.NewDeleteRecipeRepository(db)
	return controllers.NewDeleteRecipeController(deleteRecipe)
}

func MakeScaleRecipeController(db *mongo.Database) *controllers.ScaleRecipeController {
	findRecipeById := recipe_repository.NewFindRecipeByIdRepository(db)
	return controllers.NewScaleRecipeController(findRecipeById)
}

func MakeGetRecipeStatsController(db *mongo.Database) *controllers.GetRecipeStatsController {
	getRecipeStats := recipe_repository.NewGetRecipeStatsRepository(db)
	return controllers.NewGetRecipeStatsController(getRecipeStats)
}

func MakeImportRecipeController(db *mongo.Database, redisUrl string) *controllers.ImportRecipeController {
	createRecipe := recipe_repository.NewCreateRecipeRepository(db)
	return controllers.NewImportRecipeController(createRecipe, redisUrl)
}

func MakeRetryImportRecipeController(db *mongo.Database, redisUrl string) *controllers.RetryImportRecipeController {
	createRecipe := recipe_repository.NewCreateRecipeRepository(db)
	return controllers.NewRetryImportRecipeController(createRecipe, redisUrl)
}
