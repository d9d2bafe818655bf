package helpers

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRecipeFinder struct {
	recipes map[primitive.ObjectID]*models.Recipe
	err     error
	calls   int
}

func (f *fakeRecipeFinder) Find(id primitive.ObjectID) (*models.Recipe, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.recipes[id], nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func planWithEntries(porcionesBase int, entries ...*models.MealEntry) *models.MealPlan {
	day := models.PlanDay{}
	slots := []**models.MealEntry{
		&day.Comidas.Desayuno,
		&day.Comidas.Almuerzo,
		&day.Comidas.Comida.Sopa,
		&day.Comidas.Comida.Principal,
		&day.Comidas.Comida.Guarnicion,
		&day.Comidas.Cena,
	}
	for i, e := range entries {
		*slots[i] = e
	}
	return &models.MealPlan{
		PorcionesBase: porcionesBase,
		Dias:          []models.PlanDay{day},
	}
}

func TestGenerateGroupsByNameAndUnit(t *testing.T) {
	sopaId := primitive.NewObjectID()
	guisadoId := primitive.NewObjectID()

	finder := &fakeRecipeFinder{recipes: map[primitive.ObjectID]*models.Recipe{
		sopaId: {
			Id:            sopaId,
			Nombre:        "sopa de pollo",
			PorcionesBase: 4,
			Ingredientes: []models.Ingredient{
				{Nombre: "pollo", Cantidad: 1, Unidad: "kg", Categoria: "proteina", CostoUnitario: 10},
				{Nombre: "cebolla", Cantidad: 2, Unidad: "piezas", Categoria: "vegetales", CostoUnitario: 0.5},
			},
		},
		guisadoId: {
			Id:            guisadoId,
			Nombre:        "guisado",
			PorcionesBase: 4,
			Ingredientes: []models.Ingredient{
				{Nombre: "pollo", Cantidad: 0.5, Unidad: "kg", Categoria: "proteina", CostoUnitario: 10},
				// Misma verdura pero en otra unidad: no se agrupa.
				{Nombre: "cebolla", Cantidad: 100, Unidad: "g", Categoria: "vegetales", CostoUnitario: 0.01},
			},
		},
	}}

	plan := planWithEntries(4,
		&models.MealEntry{RecetaId: sopaId},
		&models.MealEntry{RecetaId: guisadoId},
	)

	helper := NewGenerateShoppingListHelper(finder)
	items, err := helper.Generate(plan)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}

	byKey := make(map[string]models.ShoppingItem)
	for _, item := range items {
		byKey[item.Ingrediente+"_"+item.Unidad] = item
	}

	pollo := byKey["pollo_kg"]
	if !almostEqual(pollo.CantidadTotal, 1.5) {
		t.Errorf("pollo CantidadTotal = %v, want 1.5", pollo.CantidadTotal)
	}
	if !almostEqual(pollo.CostoEstimado, 15) {
		t.Errorf("pollo CostoEstimado = %v, want 15", pollo.CostoEstimado)
	}
	if len(pollo.RecetasQueLoUsan) != 2 {
		t.Errorf("pollo aparece en %d recetas, want 2", len(pollo.RecetasQueLoUsan))
	}
	if pollo.Prioridad != "media" {
		t.Errorf("Prioridad = %q, want media", pollo.Prioridad)
	}

	if _, ok := byKey["cebolla_piezas"]; !ok {
		t.Error("falta cebolla_piezas")
	}
	if _, ok := byKey["cebolla_g"]; !ok {
		t.Error("falta cebolla_g: unidades distintas no deben agruparse")
	}
}

func TestGenerateScalesByPortions(t *testing.T) {
	recetaId := primitive.NewObjectID()
	finder := &fakeRecipeFinder{recipes: map[primitive.ObjectID]*models.Recipe{
		recetaId: {
			Id:            recetaId,
			Nombre:        "arroz rojo",
			PorcionesBase: 4,
			Ingredientes: []models.Ingredient{
				{Nombre: "arroz", Cantidad: 2, Unidad: "tazas", Categoria: "granos", CostoUnitario: 1},
			},
		},
	}}

	porciones := 6
	plan := planWithEntries(8, &models.MealEntry{
		RecetaId:                recetaId,
		PorcionesPersonalizadas: &porciones,
	})

	helper := NewGenerateShoppingListHelper(finder)
	items, err := helper.Generate(plan)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// Las porciones personalizadas de la comida mandan sobre las del plan.
	if !almostEqual(items[0].CantidadTotal, 3) {
		t.Errorf("CantidadTotal = %v, want 3 (2 tazas * 6/4)", items[0].CantidadTotal)
	}
	if len(items[0].RecetasQueLoUsan) != 1 || !almostEqual(items[0].RecetasQueLoUsan[0].CantidadNecesaria, 3) {
		t.Errorf("RecetasQueLoUsan = %+v", items[0].RecetasQueLoUsan)
	}
}

func TestGenerateSkipsMissingRecipes(t *testing.T) {
	existenteId := primitive.NewObjectID()
	borradaId := primitive.NewObjectID()

	finder := &fakeRecipeFinder{recipes: map[primitive.ObjectID]*models.Recipe{
		existenteId: {
			Id:            existenteId,
			Nombre:        "ensalada",
			PorcionesBase: 2,
			Ingredientes: []models.Ingredient{
				{Nombre: "lechuga", Cantidad: 1, Unidad: "piezas", Categoria: "vegetales"},
			},
		},
	}}

	plan := planWithEntries(2,
		&models.MealEntry{RecetaId: borradaId},
		&models.MealEntry{RecetaId: existenteId},
	)

	helper := NewGenerateShoppingListHelper(finder)
	items, err := helper.Generate(plan)
	if err != nil {
		t.Fatalf("una receta borrada no debe fallar la generación: %v", err)
	}
	if len(items) != 1 || items[0].Ingrediente != "lechuga" {
		t.Errorf("items = %+v, want solo lechuga", items)
	}
}

func TestGeneratePropagatesRepositoryError(t *testing.T) {
	finder := &fakeRecipeFinder{err: errors.New("conexión perdida")}
	plan := planWithEntries(2, &models.MealEntry{RecetaId: primitive.NewObjectID()})

	helper := NewGenerateShoppingListHelper(finder)
	if _, err := helper.Generate(plan); err == nil {
		t.Error("Generate() debió propagar el error del repositorio")
	}
}

func TestGenerateMergesPurchaseState(t *testing.T) {
	recetaId := primitive.NewObjectID()
	finder := &fakeRecipeFinder{recipes: map[primitive.ObjectID]*models.Recipe{
		recetaId: {
			Id:            recetaId,
			Nombre:        "omelette",
			PorcionesBase: 2,
			Ingredientes: []models.Ingredient{
				{Nombre: "huevo", Cantidad: 4, Unidad: "piezas", Categoria: "proteina", CostoUnitario: 0.5},
				{Nombre: "queso", Cantidad: 100, Unidad: "g", Categoria: "lacteos", CostoUnitario: 0.02},
			},
		},
	}}

	fechaCompra := time.Now()
	plan := planWithEntries(2, &models.MealEntry{RecetaId: recetaId})
	plan.ListaCompras = []models.ShoppingItem{
		{
			Ingrediente:         "huevo",
			Unidad:              "piezas",
			CantidadTotal:       99, // derivado viejo, debe recomputarse
			Comprado:            true,
			FechaCompra:         &fechaCompra,
			CostoReal:           2.10,
			SeccionSupermercado: "refrigerados",
			Prioridad:           "alta",
		},
		{
			// Ya no está en ningún platillo del plan: desaparece.
			Ingrediente: "tocino",
			Unidad:      "g",
			Comprado:    true,
		},
	}

	helper := NewGenerateShoppingListHelper(finder)
	items, err := helper.Generate(plan)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	huevo := items[0] // proteina ordena antes que lacteos
	if huevo.Ingrediente != "huevo" {
		t.Fatalf("items[0] = %q, want huevo", huevo.Ingrediente)
	}
	if !huevo.Comprado || huevo.FechaCompra == nil || !almostEqual(huevo.CostoReal, 2.10) {
		t.Errorf("estado de compra perdido: %+v", huevo)
	}
	if huevo.SeccionSupermercado != "refrigerados" || huevo.Prioridad != "alta" {
		t.Errorf("anotaciones manuales perdidas: %+v", huevo)
	}
	if !almostEqual(huevo.CantidadTotal, 4) {
		t.Errorf("CantidadTotal = %v, want 4 recomputado", huevo.CantidadTotal)
	}

	for _, item := range items {
		if item.Ingrediente == "tocino" {
			t.Error("un item sin recetas que lo usen no debe sobrevivir la regeneración")
		}
	}
}

func TestGenerateSortsByCategory(t *testing.T) {
	recetaId := primitive.NewObjectID()
	finder := &fakeRecipeFinder{recipes: map[primitive.ObjectID]*models.Recipe{
		recetaId: {
			Id:            recetaId,
			Nombre:        "platillo",
			PorcionesBase: 2,
			Ingredientes: []models.Ingredient{
				{Nombre: "canela", Cantidad: 1, Unidad: "cucharaditas", Categoria: "especias"},
				{Nombre: "misterio", Cantidad: 1, Unidad: "piezas", Categoria: "exotico"},
				{Nombre: "res", Cantidad: 1, Unidad: "kg", Categoria: "proteina"},
				{Nombre: "espinaca", Cantidad: 1, Unidad: "paquetes", Categoria: "vegetales"},
			},
		},
	}}

	plan := planWithEntries(2, &models.MealEntry{RecetaId: recetaId})

	helper := NewGenerateShoppingListHelper(finder)
	items, err := helper.Generate(plan)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item.Ingrediente
	}
	want := []string{"res", "espinaca", "canela", "misterio"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("orden = %v, want %v", got, want)
		}
	}
}

func TestGenerateCachesRecipeLookups(t *testing.T) {
	recetaId := primitive.NewObjectID()
	finder := &fakeRecipeFinder{recipes: map[primitive.ObjectID]*models.Recipe{
		recetaId: {
			Id:            recetaId,
			Nombre:        "avena",
			PorcionesBase: 1,
			Ingredientes: []models.Ingredient{
				{Nombre: "avena", Cantidad: 0.5, Unidad: "tazas", Categoria: "granos"},
			},
		},
	}}

	plan := planWithEntries(1,
		&models.MealEntry{RecetaId: recetaId},
		&models.MealEntry{RecetaId: recetaId},
		&models.MealEntry{RecetaId: recetaId},
	)

	helper := NewGenerateShoppingListHelper(finder)
	if _, err := helper.Generate(plan); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if finder.calls != 1 {
		t.Errorf("el repositorio fue consultado %d veces, want 1", finder.calls)
	}
}
