package meal_plan

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCreateMealPlanRepository struct {
	created *models.MealPlan
}

func (f *fakeCreateMealPlanRepository) Create(plan *models.MealPlan) (*models.MealPlan, error) {
	plan.Id = primitive.NewObjectID()
	f.created = plan
	return plan, nil
}

type fakeFindClientRepository struct {
	client *models.Client
}

func (f *fakeFindClientRepository) Find(clientId primitive.ObjectID) (*models.Client, error) {
	return f.client, nil
}

func planRequest(t *testing.T, body map[string]any) presentationProtocols.HttpRequest {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return presentationProtocols.HttpRequest{Body: io.NopCloser(bytes.NewReader(raw))}
}

func validPlanBody() map[string]any {
	return map[string]any{
		"nombre":        "Semana de marzo",
		"clienteId":     primitive.NewObjectID().Hex(),
		"fechaInicio":   "2026-03-02",
		"fechaFin":      "2026-03-08",
		"porcionesBase": 4,
		"dias": []map[string]any{
			{
				"fecha": "2026-03-02",
				"comidas": map[string]any{
					"desayuno": map[string]any{
						"recetaId": primitive.NewObjectID().Hex(),
					},
				},
			},
		},
	}
}

func TestCreateMealPlanControllerCreates(t *testing.T) {
	repository := &fakeCreateMealPlanRepository{}
	controller := NewCreateMealPlanController(repository, &fakeFindClientRepository{client: &models.Client{}})

	response := controller.Handle(planRequest(t, validPlanBody()))

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("StatusCode = %d, want 201", response.StatusCode)
	}
	if repository.created == nil || len(repository.created.Dias) != 1 {
		t.Fatalf("plan persistido = %+v", repository.created)
	}
	if repository.created.Dias[0].DiaSemana != "lunes" {
		t.Errorf("DiaSemana = %q, want lunes derivado de la fecha", repository.created.Dias[0].DiaSemana)
	}
}

func TestCreateMealPlanControllerRejectsEmptyDays(t *testing.T) {
	repository := &fakeCreateMealPlanRepository{}
	controller := NewCreateMealPlanController(repository, &fakeFindClientRepository{client: &models.Client{}})

	body := validPlanBody()
	body["dias"] = []map[string]any{}
	response := controller.Handle(planRequest(t, body))

	if response.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d, want 422: un plan sin días no debe nacer", response.StatusCode)
	}
	if repository.created != nil {
		t.Error("el plan vacío llegó al repositorio")
	}
}

func TestCreateMealPlanControllerRejectsPlanWithoutMeals(t *testing.T) {
	repository := &fakeCreateMealPlanRepository{}
	controller := NewCreateMealPlanController(repository, &fakeFindClientRepository{client: &models.Client{}})

	body := validPlanBody()
	body["dias"] = []map[string]any{
		{"fecha": "2026-03-02", "comidas": map[string]any{}},
		{"fecha": "2026-03-03", "comidas": map[string]any{}},
	}
	response := controller.Handle(planRequest(t, body))

	if response.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400: días sin una sola comida", response.StatusCode)
	}
	if repository.created != nil {
		t.Error("el plan sin comidas llegó al repositorio")
	}
}

func TestCreateMealPlanControllerRejectsInvertedDates(t *testing.T) {
	controller := NewCreateMealPlanController(&fakeCreateMealPlanRepository{}, &fakeFindClientRepository{client: &models.Client{}})

	body := validPlanBody()
	body["fechaInicio"] = "2026-03-08"
	body["fechaFin"] = "2026-03-02"
	response := controller.Handle(planRequest(t, body))

	if response.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", response.StatusCode)
	}
}

func TestCreateMealPlanControllerUnknownClient(t *testing.T) {
	controller := NewCreateMealPlanController(&fakeCreateMealPlanRepository{}, &fakeFindClientRepository{client: nil})

	response := controller.Handle(planRequest(t, validPlanBody()))

	if response.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", response.StatusCode)
	}
}
