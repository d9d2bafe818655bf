package client

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
)

type CreateClientController struct {
	CreateClientRepository usecase.CreateClientRepository
	Validate               *validator.Validate
}

func NewCreateClientController(createClient usecase.CreateClientRepository) *CreateClientController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateClientController{
		CreateClientRepository: createClient,
		Validate:               validate,
	}
}

type dietaryRestrictionBody struct {
	Tipo      string `json:"tipo" validate:"required,max=50"`
	Severidad string `json:"severidad" validate:"omitempty,oneof=leve moderada estricta"`
	Notas     string `json:"notas" validate:"omitempty,max=255"`
}

type allergyBody struct {
	Alergeno  string `json:"alergeno" validate:"required,max=50"`
	Severidad string `json:"severidad" validate:"omitempty,oneof=leve moderada estricta"`
}

type dietaryPreferencesBody struct {
	Restricciones []dietaryRestrictionBody `json:"restricciones" validate:"dive"`
	Alergias      []allergyBody            `json:"alergias" validate:"dive"`
	TamanoHogar   int                      `json:"tamanoHogar" validate:"omitempty,min=1,max=20"`
}

type CreateClientBody struct {
	Nombre                 string                 `json:"nombre" validate:"required,min=2,max=100"`
	Telefono               string                 `json:"telefono" validate:"omitempty,max=20"`
	Email                  string                 `json:"email" validate:"omitempty,email"`
	Comentarios            string                 `json:"comentarios" validate:"omitempty,max=500"`
	PreferenciasDieteticas dietaryPreferencesBody `json:"preferenciasDieteticas"`
}

func (c *CreateClientController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateClientBody
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

	client, err := c.CreateClientRepository.Create(clientFromBody(&body))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating client",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(client, http.StatusCreated)
}

func clientFromBody(body *CreateClientBody) *models.Client {
	client := &models.Client{
		Nombre:      body.Nombre,
		Telefono:    body.Telefono,
		Email:       body.Email,
		Comentarios: body.Comentarios,
		PreferenciasDieteticas: models.DietaryPreferences{
			TamanoHogar: body.PreferenciasDieteticas.TamanoHogar,
		},
	}

	for _, restriction := range body.PreferenciasDieteticas.Restricciones {
		client.PreferenciasDieteticas.Restricciones = append(client.PreferenciasDieteticas.Restricciones, models.DietaryRestriction{
			Tipo:      restriction.Tipo,
			Severidad: restriction.Severidad,
			Notas:     restriction.Notas,
		})
	}
	for _, allergy := range body.PreferenciasDieteticas.Alergias {
		client.PreferenciasDieteticas.Alergias = append(client.PreferenciasDieteticas.Alergias, models.Allergy{
			Alergeno:  allergy.Alergeno,
			Severidad: allergy.Severidad,
		})
	}

	return client
}
