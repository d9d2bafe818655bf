package recipe

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// countingCreateRepository is hit from the import worker pool, so it guards
// its slice with a mutex.
type countingCreateRepository struct {
	mu      sync.Mutex
	created []*models.Recipe
	failOn  string
}

func (f *countingCreateRepository) Create(recipe *models.Recipe) (*models.Recipe, error) {
	if recipe.Nombre == f.failOn {
		return nil, errors.New("documento inválido")
	}
	recipe.Id = primitive.NewObjectID()
	f.mu.Lock()
	f.created = append(f.created, recipe)
	f.mu.Unlock()
	return recipe, nil
}

func importItem(nombre string) RecipeImportItem {
	return RecipeImportItem{
		Nombre:        nombre,
		Descripcion:   "Preparación tradicional de la casa",
		Categoria:     "sopa",
		PorcionesBase: "4",
		Ingredientes:  `[{"nombre":"agua","cantidad":1,"unidad":"l","categoria":"otros"}]`,
	}
}

func TestRunImportBatch(t *testing.T) {
	repository := &countingCreateRepository{}
	items := []RecipeImportItem{
		importItem("sopa de fideo"),
		importItem("caldo de pollo"),
		importItem("pozole"),
	}

	imported, err := runImportBatch(repository, items)
	if err != nil {
		t.Fatalf("runImportBatch() error: %v", err)
	}
	if len(imported) != 3 {
		t.Errorf("len(imported) = %d, want 3", len(imported))
	}
	for _, recipe := range imported {
		if recipe.PorcionesBase != 4 {
			t.Errorf("PorcionesBase = %d, want 4", recipe.PorcionesBase)
		}
	}
}

func TestRunImportBatchReportsFirstFailure(t *testing.T) {
	repository := &countingCreateRepository{failOn: "caldo de pollo"}
	items := []RecipeImportItem{
		importItem("sopa de fideo"),
		importItem("caldo de pollo"),
	}

	_, err := runImportBatch(repository, items)
	if err == nil {
		t.Fatal("runImportBatch() debió reportar la fila fallida")
	}
	if !strings.Contains(err.Error(), "#2") {
		t.Errorf("err = %v, want número de fila #2", err)
	}
}

func TestConvertImportedRecipe(t *testing.T) {
	item := importItem("sopa de fideo")
	item.TiempoPreparacion = "15"
	item.TiempoCoccion = "20"

	recipe, err := convertImportedRecipe(&item)
	if err != nil {
		t.Fatalf("convertImportedRecipe() error: %v", err)
	}
	if recipe.TiempoPreparacion != 15 || recipe.TiempoCoccion != 20 {
		t.Errorf("tiempos = %d/%d, want 15/20", recipe.TiempoPreparacion, recipe.TiempoCoccion)
	}
	if recipe.Dificultad != "medio" {
		t.Errorf("Dificultad = %q, want medio por omisión", recipe.Dificultad)
	}
}

func TestConvertImportedRecipeBadValues(t *testing.T) {
	bad := importItem("sopa")
	bad.PorcionesBase = "cero"
	if _, err := convertImportedRecipe(&bad); err == nil {
		t.Error("porcionesBase no numérico debe rechazarse")
	}

	bad = importItem("sopa")
	bad.Ingredientes = "{no es un arreglo"
	if _, err := convertImportedRecipe(&bad); err == nil {
		t.Error("ingredientes mal formado debe rechazarse")
	}

	bad = importItem("sopa")
	bad.Ingredientes = "[]"
	if _, err := convertImportedRecipe(&bad); err == nil {
		t.Error("receta sin ingredientes debe rechazarse")
	}
}

func TestItemsFromRows(t *testing.T) {
	rows := rowsFromRecords([][]string{
		{"nombre", "descripcion", "categoria", "porcionesBase", "ingredientes"},
		{"Sopa", "Caldo de la abuela", "sopa", "4"}, // celda final ausente
	})

	items, err := itemsFromRows(rows)
	if err != nil {
		t.Fatalf("itemsFromRows() error: %v", err)
	}
	if len(items) != 1 || items[0].Nombre != "Sopa" {
		t.Errorf("items = %+v", items)
	}
	if items[0].Ingredientes != "" {
		t.Errorf("celda ausente debe quedar vacía, got %q", items[0].Ingredientes)
	}
}

func TestRetryImportControllerRejectsBadBody(t *testing.T) {
	controller := NewRetryImportRecipeController(&countingCreateRepository{}, "redis://localhost:6379")

	response := controller.Handle(presentationProtocols.HttpRequest{
		Body: io.NopCloser(strings.NewReader("{no json")),
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", response.StatusCode)
	}
}

func TestRetryImportControllerRejectsForeignKey(t *testing.T) {
	controller := NewRetryImportRecipeController(&countingCreateRepository{}, "redis://localhost:6379")

	// Solo se aceptan claves del espacio de staging de importaciones.
	response := controller.Handle(presentationProtocols.HttpRequest{
		Body: io.NopCloser(bytes.NewReader([]byte(`{"stagingKey":"sessions:abc"}`))),
	})
	if response.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d, want 422", response.StatusCode)
	}
}
