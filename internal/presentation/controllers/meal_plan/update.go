package meal_plan

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateMealPlanController struct {
	UpdateMealPlanRepository   usecase.UpdateMealPlanRepository
	FindMealPlanByIdRepository usecase.FindMealPlanByIdRepository
	Validate                   *validator.Validate
}

func NewUpdateMealPlanController(updateMealPlan usecase.UpdateMealPlanRepository, findMealPlanById usecase.FindMealPlanByIdRepository) *UpdateMealPlanController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateMealPlanController{
		UpdateMealPlanRepository:   updateMealPlan,
		FindMealPlanByIdRepository: findMealPlanById,
		Validate:                   validate,
	}
}

func (c *UpdateMealPlanController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateMealPlanBody
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

	planId, err := primitive.ObjectIDFromHex(r.Req.PathValue("planId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid planId format",
		}, http.StatusBadRequest)
	}

	current, err := c.FindMealPlanByIdRepository.Find(planId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding meal plan",
		}, http.StatusInternalServerError)
	}
	if current == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "meal plan not found",
		}, http.StatusNotFound)
	}

	updated, err := planFromBody(&body)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusBadRequest)
	}

	// The whole aggregate is rewritten; only tracking state carries over.
	updated.Id = current.Id
	updated.ListaCompras = current.ListaCompras
	updated.VecesUsado = current.VecesUsado
	updated.PlantillaOriginal = current.PlantillaOriginal
	updated.CalificacionGeneral = current.CalificacionGeneral
	updated.ComentariosGenerales = current.ComentariosGenerales
	updated.Compartido = current.Compartido
	updated.UsuariosCompartidos = current.UsuariosCompartidos
	updated.CreatedAt = current.CreatedAt

	plan, err := c.UpdateMealPlanRepository.Update(planId, updated)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating meal plan",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(plan, http.StatusOK)
}
