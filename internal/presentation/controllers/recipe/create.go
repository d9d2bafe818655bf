package recipe

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
)

type CreateRecipeController struct {
	CreateRecipeRepository usecase.CreateRecipeRepository
	Validate               *validator.Validate
}

func NewCreateRecipeController(createRecipe usecase.CreateRecipeRepository) *CreateRecipeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateRecipeController{
		CreateRecipeRepository: createRecipe,
		Validate:               validate,
	}
}

type substituteBody struct {
	Nombre string  `json:"nombre" validate:"required,min=1,max=100"`
	Factor float64 `json:"factor" validate:"required,gt=0"`
	Notas  string  `json:"notas" validate:"omitempty,max=255"`
}

type ingredientBody struct {
	Nombre        string            `json:"nombre" validate:"required,min=2,max=100"`
	Cantidad      float64           `json:"cantidad" validate:"required,gt=0"`
	Unidad        string            `json:"unidad" validate:"required,oneof=kg g l ml piezas tazas cucharadas cucharaditas latas paquetes"`
	Categoria     string            `json:"categoria" validate:"required,oneof=proteina vegetales frutas lacteos granos especias aceites otros"`
	CostoUnitario float64           `json:"costoUnitario" validate:"gte=0"`
	Proveedor     string            `json:"proveedor" validate:"omitempty,max=100"`
	Nutricion     *models.Nutrition `json:"nutricion"`
	Alergenos     []string          `json:"alergenos" validate:"dive,oneof=gluten lacteos huevos nueces mariscos soya pescado"`
	Sustitutos    []substituteBody  `json:"sustitutos" validate:"dive"`
}

type instructionBody struct {
	Paso            int      `json:"paso" validate:"required,min=1"`
	Descripcion     string   `json:"descripcion" validate:"required,max=500"`
	Tiempo          int      `json:"tiempo" validate:"gte=0"`
	Temperatura     string   `json:"temperatura" validate:"omitempty,max=50"`
	EquipoNecesario []string `json:"equipoNecesario" validate:"dive,max=50"`
}

type CreateRecipeBody struct {
	Nombre                  string            `json:"nombre" validate:"required,min=3,max=200"`
	Descripcion             string            `json:"descripcion" validate:"required,min=10,max=1000"`
	Categoria               string            `json:"categoria" validate:"required,oneof=sopa plato-fuerte guarnicion postre bebida entrada"`
	Ingredientes            []ingredientBody  `json:"ingredientes" validate:"required,min=1,dive"`
	TiempoPreparacion       int               `json:"tiempoPreparacion" validate:"gte=0"`
	TiempoCoccion           int               `json:"tiempoCoccion" validate:"gte=0"`
	Dificultad              string            `json:"dificultad" validate:"omitempty,oneof=facil medio dificil"`
	PorcionesBase           int               `json:"porcionesBase" validate:"required,min=1,max=50"`
	Instrucciones           []instructionBody `json:"instrucciones" validate:"dive"`
	Tags                    []string          `json:"tags" validate:"dive,max=50"`
	RestriccionesDieteticas []string          `json:"restriccionesDieteticas" validate:"dive,max=50"`
	Fuente                  string            `json:"fuente" validate:"omitempty,max=100"`
	Autor                   string            `json:"autor" validate:"omitempty,max=100"`
}

func (c *CreateRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateRecipeBody
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

	recipe, err := c.CreateRecipeRepository.Create(recipeFromBody(&body))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating recipe",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(recipe, http.StatusCreated)
}

func recipeFromBody(body *CreateRecipeBody) *models.Recipe {
	recipe := &models.Recipe{
		Nombre:                  body.Nombre,
		Descripcion:             body.Descripcion,
		Categoria:               body.Categoria,
		Ingredientes:            ingredientsFromBody(body.Ingredientes),
		TiempoPreparacion:       body.TiempoPreparacion,
		TiempoCoccion:           body.TiempoCoccion,
		Dificultad:              body.Dificultad,
		PorcionesBase:           body.PorcionesBase,
		Tags:                    body.Tags,
		RestriccionesDieteticas: body.RestriccionesDieteticas,
		Fuente:                  body.Fuente,
		Autor:                   body.Autor,
	}

	if recipe.Dificultad == "" {
		recipe.Dificultad = "medio"
	}

	for _, step := range body.Instrucciones {
		recipe.Instrucciones = append(recipe.Instrucciones, models.InstructionStep{
			Paso:            step.Paso,
			Descripcion:     step.Descripcion,
			Tiempo:          step.Tiempo,
			Temperatura:     step.Temperatura,
			EquipoNecesario: step.EquipoNecesario,
		})
	}

	return recipe
}

// ingredientsFromBody maps the request lines into the model. Names are
// trimmed and lowercased so the shopping list generator can consolidate by
// (nombre, unidad) regardless of how the client capitalized them.
func ingredientsFromBody(ingredients []ingredientBody) []models.Ingredient {
	result := make([]models.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		result[i] = models.Ingredient{
			Nombre:        strings.ToLower(strings.TrimSpace(ing.Nombre)),
			Cantidad:      ing.Cantidad,
			Unidad:        ing.Unidad,
			Categoria:     ing.Categoria,
			CostoUnitario: ing.CostoUnitario,
			Proveedor:     ing.Proveedor,
			Nutricion:     ing.Nutricion,
			Alergenos:     ing.Alergenos,
			Sustitutos: func(subs []substituteBody) []models.Substitute {
				mapped := make([]models.Substitute, len(subs))
				for j, sub := range subs {
					mapped[j] = models.Substitute{
						Nombre: sub.Nombre,
						Factor: sub.Factor,
						Notas:  sub.Notas,
					}
				}
				return mapped
			}(ing.Sustitutos),
		}
	}
	return result
}
