package client

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetClientByIdController struct {
	FindClientByIdRepository usecase.FindClientByIdRepository
}

func NewGetClientByIdController(findClientById usecase.FindClientByIdRepository) *GetClientByIdController {
	return &GetClientByIdController{
		FindClientByIdRepository: findClientById,
	}
}

func (c *GetClientByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	clientId, err := primitive.ObjectIDFromHex(r.Req.PathValue("clientId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid clientId format",
		}, http.StatusBadRequest)
	}

	client, err := c.FindClientByIdRepository.Find(clientId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding client",
		}, http.StatusInternalServerError)
	}

	if client == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "client not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(client, http.StatusOK)
}
