package meal_plan

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
)

type GetMealPlansController struct {
	FindMealPlansRepository usecase.FindMealPlansRepository
	Validate                *validator.Validate
}

func NewGetMealPlansController(findMealPlans usecase.FindMealPlansRepository) *GetMealPlansController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetMealPlansController{
		FindMealPlansRepository: findMealPlans,
		Validate:                validate,
	}
}

func (c *GetMealPlansController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	filter, errResponse := helpers.GetPlanFilterByQueries(&r.UrlParams, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	plans, err := c.FindMealPlansRepository.Find(filter)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding meal plans",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(plans, http.StatusOK)
}
