package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"github.com/tmc-recipes/meals-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 7 * 24 * time.Hour

type LoginController struct {
	FindUserByEmailRepository     usecase.FindUserByEmailRepository
	UpdateUserLastLoginRepository usecase.UpdateUserLastLoginRepository
	AccessToken                   *utils.AccessTokenUtil
	Validate                      *validator.Validate
}

func NewLoginController(findUserByEmail usecase.FindUserByEmailRepository, updateUserLastLogin usecase.UpdateUserLastLoginRepository) *LoginController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &LoginController{
		FindUserByEmailRepository:     findUserByEmail,
		UpdateUserLastLoginRepository: updateUserLastLogin,
		AccessToken:                   utils.NewAccessTokenUtil(),
		Validate:                      validate,
	}
}

type LoginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginBody
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

	user, err := c.FindUserByEmailRepository.FindByEmail(body.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding user",
		}, http.StatusInternalServerError)
	}
	if user == nil || !user.Activo {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid credentials",
		}, http.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid credentials",
		}, http.StatusUnauthorized)
	}

	token, err := c.AccessToken.EncodeToken(map[string]any{
		"sub":   user.Id.Hex(),
		"email": user.Email,
		"role":  user.Role,
	}, sessionTTL)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error issuing token",
		}, http.StatusInternalServerError)
	}

	if err := c.UpdateUserLastLoginRepository.TouchLastLogin(user.Id); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating last login",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&LoginResponse{
		Token: token,
		User:  user,
	}, http.StatusOK)
}
