package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"golang.org/x/crypto/bcrypt"
)

type RegisterController struct {
	CreateUserRepository      usecase.CreateUserRepository
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	Validate                  *validator.Validate
}

func NewRegisterController(createUser usecase.CreateUserRepository, findUserByEmail usecase.FindUserByEmailRepository) *RegisterController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &RegisterController{
		CreateUserRepository:      createUser,
		FindUserByEmailRepository: findUserByEmail,
		Validate:                  validate,
	}
}

type RegisterBody struct {
	Nombre   string `json:"nombre" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (c *RegisterController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RegisterBody
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

	existing, err := c.FindUserByEmailRepository.FindByEmail(body.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error checking email",
		}, http.StatusInternalServerError)
	}
	if existing != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a user with this email already exists",
		}, http.StatusConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error hashing password",
		}, http.StatusInternalServerError)
	}

	user, err := c.CreateUserRepository.Create(&models.User{
		Nombre:   body.Nombre,
		Email:    body.Email,
		Password: string(hashed),
		Role:     "user",
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating user",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(user, http.StatusCreated)
}
