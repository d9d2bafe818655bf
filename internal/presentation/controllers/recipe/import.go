package recipe

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/redis_repository"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"github.com/tmc-recipes/meals-backend/internal/utils"
	"github.com/xuri/excelize/v2"
)

const importStagingTTL = 24 * time.Hour

// ImportRecipeController ingests a spreadsheet of recipes. The raw upload is
// staged in Redis before processing so a failed batch can be inspected and
// retried without asking for the file again.
type ImportRecipeController struct {
	CreateRecipeRepository usecase.CreateRecipeRepository
	Validate               *validator.Validate
	RedisUrl               string
}

func NewImportRecipeController(createRecipe usecase.CreateRecipeRepository, redisUrl string) *ImportRecipeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &ImportRecipeController{
		CreateRecipeRepository: createRecipe,
		Validate:               validate,
		RedisUrl:               redisUrl,
	}
}

type RecipeImportItem struct {
	Nombre            string `json:"nombre" validate:"required,min=3,max=200"`
	Descripcion       string `json:"descripcion" validate:"required,min=10,max=1000"`
	Categoria         string `json:"categoria" validate:"required,oneof=sopa plato-fuerte guarnicion postre bebida entrada"`
	Dificultad        string `json:"dificultad" validate:"omitempty,oneof=facil medio dificil"`
	PorcionesBase     string `json:"porcionesBase" validate:"required"`
	TiempoPreparacion string `json:"tiempoPreparacion" validate:"omitempty"`
	TiempoCoccion     string `json:"tiempoCoccion" validate:"omitempty"`
	Fuente            string `json:"fuente" validate:"omitempty,max=100"`
	// JSON array in the spreadsheet cell, same shape as the create endpoint.
	Ingredientes string `json:"ingredientes" validate:"required"`
}

type ImportRecipeBody struct {
	Recipes []RecipeImportItem `validate:"required,min=1,dive"`
}

// ImportFailedResponse carries the staging key back to the client so a failed
// batch can be retried from Redis without re-uploading the file.
type ImportFailedResponse struct {
	Error      string `json:"error"`
	StagingKey string `json:"stagingKey"`
}

func (c *ImportRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	items, stagingKey, err := c.parseMultipart(r.Req)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error parsing import file: " + err.Error(),
		}, http.StatusBadRequest)
	}

	if response := validateImportItems(c.Validate, items); response != nil {
		return response
	}

	imported, err := runImportBatch(c.CreateRecipeRepository, items)
	if err != nil {
		return helpers.CreateResponse(&ImportFailedResponse{
			Error:      err.Error(),
			StagingKey: stagingKey,
		}, http.StatusBadRequest)
	}

	return helpers.CreateResponse(imported, http.StatusCreated)
}

func validateImportItems(validate *validator.Validate, items []RecipeImportItem) *presentationProtocols.HttpResponse {
	body := &ImportRecipeBody{Recipes: items}
	if err := validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(validate, err),
		}, http.StatusUnprocessableEntity)
	}

	const limit = 1000
	if len(items) > limit {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "maximum of " + strconv.Itoa(limit) + " recipes per import",
		}, http.StatusBadRequest)
	}

	return nil
}

// runImportBatch fans the rows out over a bounded worker pool. The first
// failure is returned with the row number for the client; rows already
// created stay created.
func runImportBatch(createRecipe usecase.CreateRecipeRepository, items []RecipeImportItem) ([]*models.Recipe, error) {
	var wg sync.WaitGroup
	type errorInfo struct {
		index int
		err   error
	}
	errs := make(chan errorInfo, len(items))
	imported := make([]*models.Recipe, len(items))
	const workers = 20
	sem := make(chan struct{}, workers)

	for i, item := range items {
		sem <- struct{}{}
		wg.Add(1)

		go func(index int, item RecipeImportItem) {
			defer func() {
				<-sem
				wg.Done()
			}()
			defer utils.RecoveryWithCallback(&wg, func(r any) {
				errs <- errorInfo{index: index, err: fmt.Errorf("panic recovered: %v", r)}
			})

			recipe, err := convertImportedRecipe(&item)
			if err != nil {
				errs <- errorInfo{index: index, err: err}
				return
			}

			created, err := createRecipe.Create(recipe)
			if err != nil {
				errs <- errorInfo{index: index, err: err}
				return
			}
			imported[index] = created
		}(i, item)
	}

	go func() {
		defer utils.Recovery(&wg)
		wg.Wait()
		close(errs)
	}()

	for e := range errs {
		return nil, fmt.Errorf("error processing recipe #%d: %s", e.index+1, e.err.Error())
	}

	final := make([]*models.Recipe, 0, len(imported))
	for _, recipe := range imported {
		if recipe != nil {
			final = append(final, recipe)
		}
	}

	return final, nil
}

func convertImportedRecipe(item *RecipeImportItem) (*models.Recipe, error) {
	porciones, err := strconv.Atoi(strings.TrimSpace(item.PorcionesBase))
	if err != nil || porciones < 1 {
		return nil, fmt.Errorf("invalid porcionesBase %q", item.PorcionesBase)
	}

	var ingredients []ingredientBody
	if err := json.Unmarshal([]byte(item.Ingredientes), &ingredients); err != nil {
		return nil, fmt.Errorf("invalid ingredientes JSON: %w", err)
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("recipe %q has no ingredients", item.Nombre)
	}

	parseMinutes := func(value string) int {
		minutes, _ := strconv.Atoi(strings.TrimSpace(value))
		if minutes < 0 {
			return 0
		}
		return minutes
	}

	recipe := &models.Recipe{
		Nombre:            item.Nombre,
		Descripcion:       item.Descripcion,
		Categoria:         item.Categoria,
		Dificultad:        item.Dificultad,
		PorcionesBase:     porciones,
		TiempoPreparacion: parseMinutes(item.TiempoPreparacion),
		TiempoCoccion:     parseMinutes(item.TiempoCoccion),
		Fuente:            item.Fuente,
		Ingredientes:      ingredientsFromBody(ingredients),
	}
	if recipe.Dificultad == "" {
		recipe.Dificultad = "medio"
	}

	return recipe, nil
}

func (c *ImportRecipeController) parseMultipart(r *http.Request) ([]RecipeImportItem, string, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, "", fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("missing 'file' field in form-data: %w", err)
	}
	defer file.Close()

	var rawRows []map[string]string
	var stagingKey string
	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".csv":
		stagingKey = newStagingKey(r.Header.Get("userId"), "csv")
		rawRows, err = c.parseCSV(file, stagingKey)
	case ".xlsx", ".xlsm", ".xls":
		stagingKey = newStagingKey(r.Header.Get("userId"), "xlsx")
		rawRows, err = c.parseXLSX(file, stagingKey)
	default:
		return nil, "", fmt.Errorf("unsupported file type %s", ext)
	}
	if err != nil {
		return nil, "", err
	}

	items, err := itemsFromRows(rawRows)
	if err != nil {
		return nil, "", err
	}
	return items, stagingKey, nil
}

// newStagingKey tags the key with the stored format so a retry knows how to
// decode the staged value.
func newStagingKey(userId, format string) string {
	return fmt.Sprintf("import:recetas:%s:%d:%s", userId, time.Now().Unix(), format)
}

func itemsFromRows(rawRows []map[string]string) ([]RecipeImportItem, error) {
	items := make([]RecipeImportItem, 0, len(rawRows))
	for _, row := range rawRows {
		encoded, _ := json.Marshal(row)
		var item RecipeImportItem
		if err := json.Unmarshal(encoded, &item); err != nil {
			return nil, fmt.Errorf("row to struct error: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *ImportRecipeController) parseCSV(file multipart.File, stagingKey string) ([]map[string]string, error) {
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV has no data rows")
	}

	if err := redis_repository.SaveCSVToRedis(c.RedisUrl, stagingKey, records, importStagingTTL); err != nil {
		return nil, err
	}

	return rowsFromRecords(records), nil
}

func (c *ImportRecipeController) parseXLSX(file multipart.File, stagingKey string) ([]map[string]string, error) {
	excelFile, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %w", err)
	}
	defer excelFile.Close()

	sheets := excelFile.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}

	records, err := excelFile.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading Excel rows: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("Excel sheet has no data rows")
	}

	if err := redis_repository.SaveExcelToRedis(c.RedisUrl, stagingKey, excelFile, importStagingTTL); err != nil {
		return nil, err
	}

	return rowsFromRecords(records), nil
}

// rowsFromRecords maps data rows onto the header row. Missing trailing cells
// are treated as empty.
func rowsFromRecords(records [][]string) []map[string]string {
	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, headerName := range headers {
			headerName = strings.TrimSpace(headerName)
			if i < len(record) {
				row[headerName] = strings.TrimSpace(record[i])
			} else {
				row[headerName] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
