package meal_plan

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFindMealPlanRepository struct {
	plan *models.MealPlan
	err  error
}

func (f *fakeFindMealPlanRepository) Find(planId primitive.ObjectID) (*models.MealPlan, error) {
	return f.plan, f.err
}

type fakeShoppingListGenerator struct {
	items []models.ShoppingItem
	err   error
}

func (f *fakeShoppingListGenerator) Generate(plan *models.MealPlan) ([]models.ShoppingItem, error) {
	return f.items, f.err
}

type fakeUpdateShoppingListRepository struct {
	savedPlanId primitive.ObjectID
	savedItems  []models.ShoppingItem
	err         error
}

func (f *fakeUpdateShoppingListRepository) UpdateShoppingList(planId primitive.ObjectID, items []models.ShoppingItem) error {
	if f.err != nil {
		return f.err
	}
	f.savedPlanId = planId
	f.savedItems = items
	return nil
}

func requestWithPlanId(planId string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodPost, "/plan/"+planId+"/lista-compras", nil)
	req.SetPathValue("planId", planId)
	return presentationProtocols.HttpRequest{Req: req}
}

func TestGenerateShoppingListControllerPersistsAndReturns(t *testing.T) {
	planId := primitive.NewObjectID()
	items := []models.ShoppingItem{
		{Ingrediente: "pollo", CantidadTotal: 1.5, Unidad: "kg", Categoria: "proteina", Prioridad: "media"},
	}

	updater := &fakeUpdateShoppingListRepository{}
	controller := NewGenerateShoppingListController(
		&fakeFindMealPlanRepository{plan: &models.MealPlan{Id: planId}},
		&fakeShoppingListGenerator{items: items},
		updater,
	)

	response := controller.Handle(requestWithPlanId(planId.Hex()))

	if response.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, want 200", response.StatusCode)
	}
	if updater.savedPlanId != planId || len(updater.savedItems) != 1 {
		t.Errorf("la lista no se persistió: %+v", updater)
	}

	var returned []models.ShoppingItem
	if err := json.NewDecoder(response.Body).Decode(&returned); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(returned) != 1 || returned[0].Ingrediente != "pollo" {
		t.Errorf("respuesta = %+v", returned)
	}
}

func TestGenerateShoppingListControllerBadPlanId(t *testing.T) {
	controller := NewGenerateShoppingListController(
		&fakeFindMealPlanRepository{},
		&fakeShoppingListGenerator{},
		&fakeUpdateShoppingListRepository{},
	)

	response := controller.Handle(requestWithPlanId("no-es-un-object-id"))

	if response.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", response.StatusCode)
	}
}

func TestGenerateShoppingListControllerPlanNotFound(t *testing.T) {
	controller := NewGenerateShoppingListController(
		&fakeFindMealPlanRepository{plan: nil},
		&fakeShoppingListGenerator{},
		&fakeUpdateShoppingListRepository{},
	)

	response := controller.Handle(requestWithPlanId(primitive.NewObjectID().Hex()))

	if response.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", response.StatusCode)
	}
}

func TestGenerateShoppingListControllerGeneratorFailure(t *testing.T) {
	controller := NewGenerateShoppingListController(
		&fakeFindMealPlanRepository{plan: &models.MealPlan{Id: primitive.NewObjectID()}},
		&fakeShoppingListGenerator{err: errors.New("receta corrupta")},
		&fakeUpdateShoppingListRepository{},
	)

	response := controller.Handle(requestWithPlanId(primitive.NewObjectID().Hex()))

	if response.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", response.StatusCode)
	}
}
