package client

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteClientController struct {
	DeleteClientRepository usecase.DeleteClientRepository
}

func NewDeleteClientController(deleteClient usecase.DeleteClientRepository) *DeleteClientController {
	return &DeleteClientController{
		DeleteClientRepository: deleteClient,
	}
}

func (c *DeleteClientController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	clientId, err := primitive.ObjectIDFromHex(r.Req.PathValue("clientId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid clientId format",
		}, http.StatusBadRequest)
	}

	if err := c.DeleteClientRepository.Delete(clientId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting client: " + err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
