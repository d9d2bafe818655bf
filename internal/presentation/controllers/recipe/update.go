package recipe

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateRecipeController struct {
	UpdateRecipeRepository   usecase.UpdateRecipeRepository
	FindRecipeByIdRepository usecase.FindRecipeByIdRepository
	Validate                 *validator.Validate
}

func NewUpdateRecipeController(updateRecipe usecase.UpdateRecipeRepository, findRecipeById usecase.FindRecipeByIdRepository) *UpdateRecipeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateRecipeController{
		UpdateRecipeRepository:   updateRecipe,
		FindRecipeByIdRepository: findRecipeById,
		Validate:                 validate,
	}
}

func (c *UpdateRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateRecipeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	recipeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("recipeId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid recipeId format",
		}, http.StatusBadRequest)
	}

	current, err := c.FindRecipeByIdRepository.Find(recipeId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding recipe",
		}, http.StatusInternalServerError)
	}
	if current == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "recipe not found",
		}, http.StatusNotFound)
	}

	updated := recipeFromBody(&body)
	updated.Id = current.Id
	updated.VecesUsada = current.VecesUsada
	updated.UltimoUso = current.UltimoUso
	updated.Activa = current.Activa
	updated.IdLegacy = current.IdLegacy
	updated.CreatedAt = current.CreatedAt

	recipe, err := c.UpdateRecipeRepository.Update(recipeId, updated)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating recipe",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(recipe, http.StatusOK)
}
