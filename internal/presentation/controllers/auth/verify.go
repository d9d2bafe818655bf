package auth

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VerifyController resolves the authenticated user from the userId header the
// authentication middleware injects after decoding the session token.
type VerifyController struct {
	FindUserByIdRepository usecase.FindUserByIdRepository
}

func NewVerifyController(findUserById usecase.FindUserByIdRepository) *VerifyController {
	return &VerifyController{
		FindUserByIdRepository: findUserById,
	}
}

func (c *VerifyController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("userId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid userId format",
		}, http.StatusBadRequest)
	}

	user, err := c.FindUserByIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding user",
		}, http.StatusInternalServerError)
	}
	if user == nil || !user.Activo {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not found",
		}, http.StatusUnauthorized)
	}

	return helpers.CreateResponse(user, http.StatusOK)
}
