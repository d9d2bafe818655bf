package meal_plan

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateMealPlanController struct {
	CreateMealPlanRepository usecase.CreateMealPlanRepository
	FindClientByIdRepository usecase.FindClientByIdRepository
	Validate                 *validator.Validate
}

func NewCreateMealPlanController(createMealPlan usecase.CreateMealPlanRepository, findClientById usecase.FindClientByIdRepository) *CreateMealPlanController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateMealPlanController{
		CreateMealPlanRepository: createMealPlan,
		FindClientByIdRepository: findClientById,
		Validate:                 validate,
	}
}

type mealModificationsBody struct {
	IngredientesOmitidos     []string            `json:"ingredientesOmitidos" validate:"dive,max=100"`
	IngredientesAdicionales  []models.Ingredient `json:"ingredientesAdicionales"`
	InstruccionesAdicionales string              `json:"instruccionesAdicionales" validate:"omitempty,max=500"`
	Notas                    string              `json:"notas" validate:"omitempty,max=500"`
}

type mealEntryBody struct {
	RecetaId                string                `json:"recetaId" validate:"required,len=24,hexadecimal"`
	PorcionesPersonalizadas *int                  `json:"porcionesPersonalizadas" validate:"omitempty,min=1,max=100"`
	Modificaciones          mealModificationsBody `json:"modificaciones"`
	HoraPreferida           string                `json:"horaPreferida" validate:"omitempty,max=10"`
	TiempoPreparacion       *int                  `json:"tiempoPreparacion" validate:"omitempty,gte=0"`
}

type lunchCoursesBody struct {
	Sopa       *mealEntryBody `json:"sopa" validate:"omitempty"`
	Principal  *mealEntryBody `json:"principal" validate:"omitempty"`
	Guarnicion *mealEntryBody `json:"guarnicion" validate:"omitempty"`
}

type dayMealsBody struct {
	Desayuno   *mealEntryBody   `json:"desayuno" validate:"omitempty"`
	Almuerzo   *mealEntryBody   `json:"almuerzo" validate:"omitempty"`
	Comida     lunchCoursesBody `json:"comida"`
	Cena       *mealEntryBody   `json:"cena" validate:"omitempty"`
	Colaciones []mealEntryBody  `json:"colaciones" validate:"dive"`
}

type planDayBody struct {
	Fecha            string            `json:"fecha" validate:"required,datetime=2006-01-02"`
	DiaSemana        string            `json:"diaSemana" validate:"omitempty,oneof=lunes martes miercoles jueves viernes sabado domingo"`
	Comidas          dayMealsBody      `json:"comidas"`
	NutricionDiaria  *models.Nutrition `json:"nutricionDiaria"`
	CostoEstimadoDia float64           `json:"costoEstimadoDia" validate:"gte=0"`
	Notas            string            `json:"notas" validate:"omitempty,max=500"`
}

type eatingOutBody struct {
	Dia           string  `json:"dia" validate:"required,oneof=lunes martes miercoles jueves viernes sabado domingo"`
	Comida        string  `json:"comida" validate:"required,oneof=desayuno comida cena"`
	Restaurante   string  `json:"restaurante" validate:"omitempty,max=100"`
	CostoEstimado float64 `json:"costoEstimado" validate:"gte=0"`
}

type planPreferencesBody struct {
	PresupuestoMaximo       float64         `json:"presupuestoMaximo" validate:"gte=0"`
	TiempoMaximoPreparacion int             `json:"tiempoMaximoPreparacion" validate:"gte=0"`
	EvitarRepetirRecetas    bool            `json:"evitarRepetirRecetas"`
	DiasSinCocinar          []string        `json:"diasSinCocinar" validate:"dive,oneof=lunes martes miercoles jueves viernes sabado domingo"`
	ComidaFueraCasa         []eatingOutBody `json:"comidaFueraCasa" validate:"dive"`
}

type CreateMealPlanBody struct {
	Nombre        string              `json:"nombre" validate:"required,min=3,max=100"`
	ClienteId     string              `json:"clienteId" validate:"required,len=24,hexadecimal"`
	FechaInicio   string              `json:"fechaInicio" validate:"required,datetime=2006-01-02"`
	FechaFin      string              `json:"fechaFin" validate:"required,datetime=2006-01-02"`
	PorcionesBase int                 `json:"porcionesBase" validate:"required,min=1,max=100"`
	Dias          []planDayBody       `json:"dias" validate:"required,min=1,dive"`
	Preferencias  planPreferencesBody `json:"preferencias"`
	Estado        string              `json:"estado" validate:"omitempty,oneof=borrador activo completado pausado cancelado"`
	EsPlantilla   bool                `json:"esPlantilla"`
}

func (c *CreateMealPlanController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateMealPlanBody
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

	plan, err := planFromBody(&body)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusBadRequest)
	}

	client, err := c.FindClientByIdRepository.Find(plan.ClienteId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding client",
		}, http.StatusInternalServerError)
	}
	if client == nil && !plan.EsPlantilla {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "client not found",
		}, http.StatusNotFound)
	}

	created, err := c.CreateMealPlanRepository.Create(plan)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating meal plan",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(created, http.StatusCreated)
}

func planFromBody(body *CreateMealPlanBody) (*models.MealPlan, error) {
	clienteId, err := primitive.ObjectIDFromHex(body.ClienteId)
	if err != nil {
		return nil, fmt.Errorf("invalid clienteId format")
	}

	fechaInicio, err := time.Parse("2006-01-02", body.FechaInicio)
	if err != nil {
		return nil, fmt.Errorf("invalid fechaInicio")
	}
	fechaFin, err := time.Parse("2006-01-02", body.FechaFin)
	if err != nil {
		return nil, fmt.Errorf("invalid fechaFin")
	}
	if fechaFin.Before(fechaInicio) {
		return nil, fmt.Errorf("fechaFin must not be before fechaInicio")
	}

	plan := &models.MealPlan{
		Nombre:        body.Nombre,
		ClienteId:     clienteId,
		FechaInicio:   fechaInicio,
		FechaFin:      fechaFin,
		PorcionesBase: body.PorcionesBase,
		Estado:        body.Estado,
		EsPlantilla:   body.EsPlantilla,
		Preferencias:  preferencesFromBody(&body.Preferencias),
	}
	if plan.Estado == "" {
		plan.Estado = "borrador"
	}

	totalEntries := 0
	for _, dayBody := range body.Dias {
		day, err := dayFromBody(&dayBody)
		if err != nil {
			return nil, err
		}
		totalEntries += len(day.Comidas.Entries())
		plan.Dias = append(plan.Dias, *day)
	}

	// A plan is born with something to cook. Days without a single meal
	// entry are acceptable individually, but not across the whole plan.
	if totalEntries == 0 {
		return nil, fmt.Errorf("el plan debe incluir al menos una comida")
	}

	return plan, nil
}

func dayFromBody(body *planDayBody) (*models.PlanDay, error) {
	fecha, err := time.Parse("2006-01-02", body.Fecha)
	if err != nil {
		return nil, fmt.Errorf("invalid day fecha %q", body.Fecha)
	}

	day := &models.PlanDay{
		Fecha:            fecha,
		DiaSemana:        body.DiaSemana,
		CostoEstimadoDia: body.CostoEstimadoDia,
		Notas:            body.Notas,
	}
	if body.NutricionDiaria != nil {
		day.NutricionDiaria = *body.NutricionDiaria
	}
	if err := day.Normalize(); err != nil {
		return nil, err
	}

	day.Comidas.Desayuno, err = entryFromBody(body.Comidas.Desayuno)
	if err != nil {
		return nil, err
	}
	day.Comidas.Almuerzo, err = entryFromBody(body.Comidas.Almuerzo)
	if err != nil {
		return nil, err
	}
	day.Comidas.Comida.Sopa, err = entryFromBody(body.Comidas.Comida.Sopa)
	if err != nil {
		return nil, err
	}
	day.Comidas.Comida.Principal, err = entryFromBody(body.Comidas.Comida.Principal)
	if err != nil {
		return nil, err
	}
	day.Comidas.Comida.Guarnicion, err = entryFromBody(body.Comidas.Comida.Guarnicion)
	if err != nil {
		return nil, err
	}
	day.Comidas.Cena, err = entryFromBody(body.Comidas.Cena)
	if err != nil {
		return nil, err
	}

	for i := range body.Comidas.Colaciones {
		colacion, err := entryFromBody(&body.Comidas.Colaciones[i])
		if err != nil {
			return nil, err
		}
		day.Comidas.Colaciones = append(day.Comidas.Colaciones, *colacion)
	}

	return day, nil
}

func entryFromBody(body *mealEntryBody) (*models.MealEntry, error) {
	if body == nil {
		return nil, nil
	}

	recetaId, err := primitive.ObjectIDFromHex(body.RecetaId)
	if err != nil {
		return nil, fmt.Errorf("invalid recetaId format")
	}

	return &models.MealEntry{
		RecetaId:                recetaId,
		PorcionesPersonalizadas: body.PorcionesPersonalizadas,
		HoraPreferida:           body.HoraPreferida,
		TiempoPreparacion:       body.TiempoPreparacion,
		Modificaciones: models.MealModifications{
			IngredientesOmitidos:     body.Modificaciones.IngredientesOmitidos,
			IngredientesAdicionales:  body.Modificaciones.IngredientesAdicionales,
			InstruccionesAdicionales: body.Modificaciones.InstruccionesAdicionales,
			Notas:                    body.Modificaciones.Notas,
		},
	}, nil
}

func preferencesFromBody(body *planPreferencesBody) models.PlanPreferences {
	preferences := models.PlanPreferences{
		PresupuestoMaximo:       body.PresupuestoMaximo,
		TiempoMaximoPreparacion: body.TiempoMaximoPreparacion,
		EvitarRepetirRecetas:    body.EvitarRepetirRecetas,
		DiasSinCocinar:          body.DiasSinCocinar,
	}

	for _, out := range body.ComidaFueraCasa {
		preferences.ComidaFueraCasa = append(preferences.ComidaFueraCasa, models.EatingOut{
			Dia:           out.Dia,
			Comida:        out.Comida,
			Restaurante:   out.Restaurante,
			CostoEstimado: out.CostoEstimado,
		})
	}

	return preferences
}
