package recipe

import (
	"net/http"
	"strconv"

	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScaleRecipeController returns a transient view of a recipe adjusted to a
// requested portion count. Nothing is persisted.
type ScaleRecipeController struct {
	FindRecipeByIdRepository usecase.FindRecipeByIdRepository
}

func NewScaleRecipeController(findRecipeById usecase.FindRecipeByIdRepository) *ScaleRecipeController {
	return &ScaleRecipeController{
		FindRecipeByIdRepository: findRecipeById,
	}
}

func (c *ScaleRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	recipeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("recipeId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid recipeId format",
		}, http.StatusBadRequest)
	}

	porciones, err := strconv.Atoi(r.UrlParams.Get("porciones"))
	if err != nil || porciones < 1 || porciones > 100 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "porciones must be a number between 1 and 100",
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

	scaled := recipe.Scale(porciones)

	return helpers.CreateResponse(scaled, http.StatusOK)
}
