package recipe

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/redis_repository"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
)

// RetryImportRecipeController reprocesses an upload staged in Redis by a
// previous import attempt, without asking the client for the file again. The
// staged value expires with the staging TTL; after that the client has to
// re-upload.
type RetryImportRecipeController struct {
	CreateRecipeRepository usecase.CreateRecipeRepository
	Validate               *validator.Validate
	RedisUrl               string
}

func NewRetryImportRecipeController(createRecipe usecase.CreateRecipeRepository, redisUrl string) *RetryImportRecipeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &RetryImportRecipeController{
		CreateRecipeRepository: createRecipe,
		Validate:               validate,
		RedisUrl:               redisUrl,
	}
}

type RetryImportBody struct {
	StagingKey string `json:"stagingKey" validate:"required,startswith=import:recetas:,max=200"`
}

func (c *RetryImportRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RetryImportBody
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

	exists, err := redis_repository.KeyExists(c.RedisUrl, body.StagingKey)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error reading staged import",
		}, http.StatusInternalServerError)
	}
	if !exists {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "staged import not found or expired",
		}, http.StatusNotFound)
	}

	records, err := c.stagedRecords(body.StagingKey)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error decoding staged import: " + err.Error(),
		}, http.StatusInternalServerError)
	}
	if len(records) < 2 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "staged import has no data rows",
		}, http.StatusBadRequest)
	}

	items, err := itemsFromRows(rowsFromRecords(records))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusBadRequest)
	}

	if response := validateImportItems(c.Validate, items); response != nil {
		return response
	}

	imported, err := runImportBatch(c.CreateRecipeRepository, items)
	if err != nil {
		return helpers.CreateResponse(&ImportFailedResponse{
			Error:      err.Error(),
			StagingKey: body.StagingKey,
		}, http.StatusBadRequest)
	}

	return helpers.CreateResponse(imported, http.StatusCreated)
}

// stagedRecords loads the raw rows back from Redis, decoding according to the
// format suffix the staging key carries.
func (c *RetryImportRecipeController) stagedRecords(stagingKey string) ([][]string, error) {
	if strings.HasSuffix(stagingKey, ":csv") {
		return redis_repository.FindCSVByKey(c.RedisUrl, stagingKey)
	}

	excelFile, err := redis_repository.FindExcelByKey(c.RedisUrl, stagingKey)
	if err != nil {
		return nil, err
	}
	defer excelFile.Close()

	sheets := excelFile.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el archivo almacenado no tiene hojas")
	}
	return excelFile.GetRows(sheets[0])
}
