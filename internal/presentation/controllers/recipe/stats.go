package recipe

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
)

type GetRecipeStatsController struct {
	GetRecipeStatsRepository usecase.GetRecipeStatsRepository
}

func NewGetRecipeStatsController(getRecipeStats usecase.GetRecipeStatsRepository) *GetRecipeStatsController {
	return &GetRecipeStatsController{
		GetRecipeStatsRepository: getRecipeStats,
	}
}

func (c *GetRecipeStatsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	stats, err := c.GetRecipeStatsRepository.Stats()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error computing recipe stats",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(stats, http.StatusOK)
}
