package recipe

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
)

type GetRecipesController struct {
	FindRecipesRepository usecase.FindRecipesRepository
	Validate              *validator.Validate
}

func NewGetRecipesController(findRecipes usecase.FindRecipesRepository) *GetRecipesController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetRecipesController{
		FindRecipesRepository: findRecipes,
		Validate:              validate,
	}
}

func (c *GetRecipesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	filter, errResponse := helpers.GetRecipeFilterByQueries(&r.UrlParams, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	recipes, err := c.FindRecipesRepository.Find(filter)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding recipes",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(recipes, http.StatusOK)
}
