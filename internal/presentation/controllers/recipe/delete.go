package recipe

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteRecipeController struct {
	DeleteRecipeRepository usecase.DeleteRecipeRepository
}

func NewDeleteRecipeController(deleteRecipe usecase.DeleteRecipeRepository) *DeleteRecipeController {
	return &DeleteRecipeController{
		DeleteRecipeRepository: deleteRecipe,
	}
}

func (c *DeleteRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	recipeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("recipeId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid recipeId format",
		}, http.StatusBadRequest)
	}

	if err := c.DeleteRecipeRepository.Delete(recipeId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting recipe: " + err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
