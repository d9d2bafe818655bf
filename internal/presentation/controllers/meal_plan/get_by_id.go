package meal_plan

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetMealPlanByIdController struct {
	FindMealPlanByIdRepository usecase.FindMealPlanByIdRepository
}

func NewGetMealPlanByIdController(findMealPlanById usecase.FindMealPlanByIdRepository) *GetMealPlanByIdController {
	return &GetMealPlanByIdController{
		FindMealPlanByIdRepository: findMealPlanById,
	}
}

func (c *GetMealPlanByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	return helpers.CreateResponse(plan, http.StatusOK)
}
