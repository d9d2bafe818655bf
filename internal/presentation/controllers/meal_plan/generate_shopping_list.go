package meal_plan

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerateShoppingListController regenerates the consolidated shopping list of
// a plan and persists it. Purchase tracking on items whose ingredient and unit
// survive the regeneration is preserved by the generator.
type GenerateShoppingListController struct {
	FindMealPlanByIdRepository     usecase.FindMealPlanByIdRepository
	GenerateShoppingListRepository usecase.GenerateShoppingListRepository
	UpdateShoppingListRepository   usecase.UpdateShoppingListRepository
}

func NewGenerateShoppingListController(
	findMealPlanById usecase.FindMealPlanByIdRepository,
	generateShoppingList usecase.GenerateShoppingListRepository,
	updateShoppingList usecase.UpdateShoppingListRepository,
) *GenerateShoppingListController {
	return &GenerateShoppingListController{
		FindMealPlanByIdRepository:     findMealPlanById,
		GenerateShoppingListRepository: generateShoppingList,
		UpdateShoppingListRepository:   updateShoppingList,
	}
}

func (c *GenerateShoppingListController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	planId, err := primitive.ObjectIDFromHex(r.Req.PathValue("planId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid planId format",
		}, http.StatusBadRequest)
	}

	plan, err := c.FindMealPlanByIdRepository.Find(planId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding meal plan",
		}, http.StatusInternalServerError)
	}
	if plan == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "meal plan not found",
		}, http.StatusNotFound)
	}

	items, err := c.GenerateShoppingListRepository.Generate(plan)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error generating shopping list",
		}, http.StatusInternalServerError)
	}

	if err := c.UpdateShoppingListRepository.UpdateShoppingList(planId, items); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error saving shopping list",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(items, http.StatusOK)
}
