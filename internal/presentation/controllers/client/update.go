package client

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateClientController struct {
	UpdateClientRepository   usecase.UpdateClientRepository
	FindClientByIdRepository usecase.FindClientByIdRepository
	Validate                 *validator.Validate
}

func NewUpdateClientController(updateClient usecase.UpdateClientRepository, findClientById usecase.FindClientByIdRepository) *UpdateClientController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateClientController{
		UpdateClientRepository:   updateClient,
		FindClientByIdRepository: findClientById,
		Validate:                 validate,
	}
}

func (c *UpdateClientController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	clientId, err := primitive.ObjectIDFromHex(r.Req.PathValue("clientId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid clientId format",
		}, http.StatusBadRequest)
	}

	current, err := c.FindClientByIdRepository.Find(clientId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding client",
		}, http.StatusInternalServerError)
	}
	if current == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "client not found",
		}, http.StatusNotFound)
	}

	updated := clientFromBody(&body)
	updated.Id = current.Id
	updated.IdLegacy = current.IdLegacy
	updated.CreatedAt = current.CreatedAt

	client, err := c.UpdateClientRepository.Update(clientId, updated)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating client",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(client, http.StatusOK)
}
