package recipe

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetRecipeByIdController struct {
	FindRecipeByIdRepository usecase.FindRecipeByIdRepository
}

func NewGetRecipeByIdController(findRecipeById usecase.FindRecipeByIdRepository) *GetRecipeByIdController {
	return &GetRecipeByIdController{
		FindRecipeByIdRepository: findRecipeById,
	}
}

func (c *GetRecipeByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	recipeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("recipeId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid recipeId format",
		}, http.StatusBadRequest)
	}

	recipe, err := c.FindRecipeByIdRepository.Find(recipeId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding recipe",
		}, http.StatusInternalServerError)
	}

	if recipe == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "recipe not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(recipe, http.StatusOK)
}
