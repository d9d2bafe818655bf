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

type MarkMealPreparedController struct {
	MarkMealPreparedRepository usecase.MarkMealPreparedRepository
	Validate                   *validator.Validate
}

func NewMarkMealPreparedController(markMealPrepared usecase.MarkMealPreparedRepository) *MarkMealPreparedController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &MarkMealPreparedController{
		MarkMealPreparedRepository: markMealPrepared,
		Validate:                   validate,
	}
}

type MarkMealPreparedBody struct {
	DiaSemana    string `json:"diaSemana" validate:"required,oneof=lunes martes miercoles jueves viernes sabado domingo"`
	Slot         string `json:"slot" validate:"required,oneof=desayuno almuerzo sopa principal guarnicion cena"`
	Calificacion *int   `json:"calificacion" validate:"omitempty,min=1,max=5"`
	Comentarios  string `json:"comentarios" validate:"omitempty,max=500"`
}

func (c *MarkMealPreparedController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body MarkMealPreparedBody
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

	plan, err := c.MarkMealPreparedRepository.MarkPrepared(&usecase.MarkMealPreparedInput{
		PlanId:       planId,
		DiaSemana:    body.DiaSemana,
		Slot:         body.Slot,
		Calificacion: body.Calificacion,
		Comentarios:  body.Comentarios,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusBadRequest)
	}
	if plan == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "meal plan not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(plan, http.StatusOK)
}
