package meal_plan

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteMealPlanController struct {
	DeleteMealPlanRepository usecase.DeleteMealPlanRepository
}

func NewDeleteMealPlanController(deleteMealPlan usecase.DeleteMealPlanRepository) *DeleteMealPlanController {
	return &DeleteMealPlanController{
		DeleteMealPlanRepository: deleteMealPlan,
	}
}

func (c *DeleteMealPlanController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	planId, err := primitive.ObjectIDFromHex(r.Req.PathValue("planId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid planId format",
		}, http.StatusBadRequest)
	}

	if err := c.DeleteMealPlanRepository.Delete(planId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting meal plan: " + err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
