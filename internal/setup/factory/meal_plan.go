package factory

import (
	"github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/client_repository"
	infraHelpers "github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/helpers"
	"github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/meal_plan_repository"
	"github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/recipe_repository"
	controllers "github.com/tmc-recipes/meals-backend/internal/presentation/controllers/meal_plan"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateMealPlanController(db *mongo.Database) *controllers.CreateMealPlanController {
	createMealPlan := meal_plan_repository.NewCreateMealPlanRepository(db)
	findClientById := client_repository.NewFindClientByIdRepository(db)
	return controllers.NewCreateMealPlanController(createMealPlan, findClientById)
}

func MakeGetMealPlansController(db *mongo.Database) *controllers.GetMealPlansController {
	findMealPlans := meal_plan_repository.NewFindMealPlansRepository(db)
	return controllers.NewGetMealPlansController(findMealPlans)
}

func MakeGetMealPlanByIdController(db *mongo.Database) *controllers.GetMealPlanByIdController {
	findMealPlanById := meal_plan_repository.NewFindMealPlanByIdRepository(db)
	return controllers.NewGetMealPlanByIdController(findMealPlanById)
}

func MakeUpdateMealPlanController(db *mongo.Database) *controllers.UpdateMealPlanController {
	updateMealPlan := meal_plan_repository.NewUpdateMealPlanRepository(db)
	findMealPlanById := meal_plan_repository.NewFindMealPlanByIdRepository(db)
	return controllers.NewUpdateMealPlanController(updateMealPlan, findMealPlanById)
}

func MakeDeleteMealPlanController(db *mongo.Database) *controllers.DeleteMealPlanController {
	deleteMealPlan := meal_plan_repository.NewDeleteMealPlanRepository(db)
	return controllers.NewDeleteMealPlanController(deleteMealPlan)
}

func MakeGenerateShoppingListController(db *mongo.Database) *controllers.GenerateShoppingListController {
	findMealPlanById := meal_plan_repository.NewFindMealPlanByIdRepository(db)
	findRecipeById := recipe_repository.NewFindRecipeByIdRepository(db)
	generateShoppingList := infraHelpers.NewGenerateShoppingListHelper(findRecipeById)
	updateShoppingList := meal_plan_repository.NewUpdateShoppingListRepository(db)
	return controllers.NewGenerateShoppingListController(findMealPlanById, generateShoppingList, updateShoppingList)
}

func MakeMarkMealPreparedController(db *mongo.Database) *controllers.MarkMealPreparedController {
	markMealPrepared := meal_plan_repository.NewMarkMealPreparedRepository(db)
	return controllers.NewMarkMealPreparedController(markMealPrepared)
}

func MakeCreateTemplateController(db *mongo.Database) *controllers.CreateTemplateController {
	findMealPlanById := meal_plan_repository.NewFindMealPlanByIdRepository(db)
	createMealPlan := meal_plan_repository.NewCreateMealPlanRepository(db)
	return controllers.NewCreateTemplateController(findMealPlanById, createMealPlan)
}
