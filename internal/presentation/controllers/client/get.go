package client

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
)

type GetClientsController struct {
	FindClientsRepository usecase.FindClientsRepository
	Validate              *validator.Validate
}

func NewGetClientsController(findClients usecase.FindClientsRepository) *GetClientsController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetClientsController{
		FindClientsRepository: findClients,
		Validate:              validate,
	}
}

func (c *GetClientsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	filter, errResponse := helpers.GetClientFilterByQueries(&r.UrlParams, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	clients, err := c.FindClientsRepository.Find(filter)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding clients",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(clients, http.StatusOK)
}
