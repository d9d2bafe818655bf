package helpers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultPageSize = 20

type RecipeFilterParams struct {
	Categoria   string `json:"categoria" validate:"omitempty,oneof=sopa plato-fuerte guarnicion postre bebida entrada"`
	Dificultad  string `json:"dificultad" validate:"omitempty,oneof=facil medio dificil"`
	Restriccion string `json:"restriccion" validate:"omitempty,max=50"`
	Search      string `json:"search" validate:"omitempty,max=100"`
	Page        int    `json:"page" validate:"omitempty,min=1"`
	Limit       int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

func GetRecipeFilterByQueries(urlQueries *url.Values, validate *validator.Validate) (*usecase.FindRecipesInputRepository, *presentationProtocols.HttpResponse) {
	params := &RecipeFilterParams{
		Categoria:   urlQueries.Get("categoria"),
		Dificultad:  urlQueries.Get("dificultad"),
		Restriccion: urlQueries.Get("restriccion"),
		Search:      urlQueries.Get("search"),
	}
	params.Page, params.Limit = pageQueries(urlQueries)

	if err := validate.Struct(params); err != nil {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: GetErrorMessages(validate, err),
		}, http.StatusBadRequest)
	}

	return &usecase.FindRecipesInputRepository{
		Categoria:   params.Categoria,
		Dificultad:  params.Dificultad,
		Restriccion: params.Restriccion,
		Search:      params.Search,
		SoloActivas: urlQueries.Get("incluirInactivas") != "true",
		Limit:       params.Limit,
		Offset:      (params.Page - 1) * params.Limit,
	}, nil
}

type PlanFilterParams struct {
	ClienteId string `json:"clienteId" validate:"omitempty,len=24,hexadecimal"`
	Estado    string `json:"estado" validate:"omitempty,oneof=borrador activo completado pausado cancelado"`
	Search    string `json:"search" validate:"omitempty,max=100"`
	Page      int    `json:"page" validate:"omitempty,min=1"`
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

func GetPlanFilterByQueries(urlQueries *url.Values, validate *validator.Validate) (*usecase.FindMealPlansInputRepository, *presentationProtocols.HttpResponse) {
	params := &PlanFilterParams{
		ClienteId: urlQueries.Get("clienteId"),
		Estado:    urlQueries.Get("estado"),
		Search:    urlQueries.Get("search"),
	}
	params.Page, params.Limit = pageQueries(urlQueries)

	if err := validate.Struct(params); err != nil {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: GetErrorMessages(validate, err),
		}, http.StatusBadRequest)
	}

	input := &usecase.FindMealPlansInputRepository{
		Estado: params.Estado,
		Search: params.Search,
		Limit:  params.Limit,
		Offset: (params.Page - 1) * params.Limit,
	}

	if params.ClienteId != "" {
		clienteId, err := primitive.ObjectIDFromHex(params.ClienteId)
		if err != nil {
			return nil, CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid client id",
			}, http.StatusBadRequest)
		}
		input.ClienteId = &clienteId
	}

	if plantilla := urlQueries.Get("esPlantilla"); plantilla != "" {
		esPlantilla := plantilla == "true"
		input.EsPlantilla = &esPlantilla
	}

	return input, nil
}

type ClientFilterParams struct {
	Search string `json:"search" validate:"omitempty,max=100"`
	Page   int    `json:"page" validate:"omitempty,min=1"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

func GetClientFilterByQueries(urlQueries *url.Values, validate *validator.Validate) (*usecase.FindClientsInputRepository, *presentationProtocols.HttpResponse) {
	params := &ClientFilterParams{
		Search: urlQueries.Get("search"),
	}
	params.Page, params.Limit = pageQueries(urlQueries)

	if err := validate.Struct(params); err != nil {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: GetErrorMessages(validate, err),
		}, http.StatusBadRequest)
	}

	return &usecase.FindClientsInputRepository{
		Search: params.Search,
		Limit:  params.Limit,
		Offset: (params.Page - 1) * params.Limit,
	}, nil
}

func pageQueries(urlQueries *url.Values) (page, limit int) {
	page, _ = strconv.Atoi(urlQueries.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(urlQueries.Get("limit"))
	if limit < 1 {
		limit = defaultPageSize
	}
	return page, limit
}
