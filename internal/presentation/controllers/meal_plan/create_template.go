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

// CreateTemplateController derives a reusable template from an existing plan:
// dates, client binding and all tracking state are stripped.
type CreateTemplateController struct {
	FindMealPlanByIdRepository usecase.FindMealPlanByIdRepository
	CreateMealPlanRepository   usecase.CreateMealPlanRepository
	Validate                   *validator.Validate
}

func NewCreateTemplateController(findMealPlanById usecase.FindMealPlanByIdRepository, createMealPlan usecase.CreateMealPlanRepository) *CreateTemplateController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateTemplateController{
		FindMealPlanByIdRepository: findMealPlanById,
		CreateMealPlanRepository:   createMealPlan,
		Validate:                   validate,
	}
}

type CreateTemplateBody struct {
	Nombre string `json:"nombre" validate:"required,min=3,max=100"`
}

func (c *CreateTemplateController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateTemplateBody
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

	template := plan.CreateTemplate(body.Nombre)

	created, err := c.CreateMealPlanRepository.Create(&template)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating template",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(created, http.StatusCreated)
}
