package helpers

import (
	"sort"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category order for the final list: shopping flow of a typical supermarket.
// Unknown categories sort last, otherwise the sort is stable.
var shoppingCategoryOrder = map[string]int{
	"proteina":  0,
	"vegetales": 1,
	"frutas":    2,
	"lacteos":   3,
	"granos":    4,
	"especias":  5,
	"aceites":   6,
	"otros":     7,
}

type GenerateShoppingListHelper struct {
	FindRecipeById usecase.FindRecipeByIdRepository
}

func NewGenerateShoppingListHelper(findRecipeById usecase.FindRecipeByIdRepository) *GenerateShoppingListHelper {
	return &GenerateShoppingListHelper{
		FindRecipeById: findRecipeById,
	}
}

// Generate walks every meal entry of every day, resolves the referenced
// recipes and consolidates their ingredients by (nombre, unidad), scaling
// quantities by the meal's portions over the recipe's base portions.
//
// A meal whose recipe no longer exists is skipped without error: a shorter
// usable list beats a hard failure. Purchase tracking recorded on the plan's
// current list survives for items that keep their grouping key; only the
// derived fields and the provenance are recomputed.
func (h *GenerateShoppingListHelper) Generate(plan *models.MealPlan) ([]models.ShoppingItem, error) {
	grouped := make(map[string]*models.ShoppingItem)
	var order []string
	recipeCache := make(map[primitive.ObjectID]*models.Recipe)

	for i := range plan.Dias {
		for _, entry := range plan.Dias[i].Comidas.Entries() {
			receta, err := h.findRecipe(entry.RecetaId, recipeCache)
			if err != nil {
				return nil, err
			}
			if receta == nil {
				continue
			}

			porciones := plan.PorcionesBase
			if entry.PorcionesPersonalizadas != nil {
				porciones = *entry.PorcionesPersonalizadas
			}
			factor := float64(porciones) / float64(receta.PorcionesBase)

			for _, ing := range receta.Ingredientes {
				key := ing.Nombre + "_" + ing.Unidad

				item, exists := grouped[key]
				if !exists {
					item = &models.ShoppingItem{
						Ingrediente: ing.Nombre,
						Unidad:      ing.Unidad,
						Categoria:   ing.Categoria,
						Prioridad:   "media",
					}
					grouped[key] = item
					order = append(order, key)
				}

				item.CantidadTotal += ing.Cantidad * factor
				item.CostoEstimado += ing.CostoUnitario * ing.Cantidad * factor
				item.RecetasQueLoUsan = append(item.RecetasQueLoUsan, models.RecipeUsage{
					RecetaId:          receta.Id,
					NombreReceta:      receta.Nombre,
					CantidadNecesaria: ing.Cantidad * factor,
				})
			}
		}
	}

	mergePurchaseState(grouped, plan.ListaCompras)

	items := make([]models.ShoppingItem, 0, len(order))
	for _, key := range order {
		items = append(items, *grouped[key])
	}

	sort.SliceStable(items, func(a, b int) bool {
		return categoryRank(items[a].Categoria) < categoryRank(items[b].Categoria)
	})

	return items, nil
}

func (h *GenerateShoppingListHelper) findRecipe(id primitive.ObjectID, cache map[primitive.ObjectID]*models.Recipe) (*models.Recipe, error) {
	if receta, seen := cache[id]; seen {
		return receta, nil
	}

	receta, err := h.FindRecipeById.Find(id)
	if err != nil {
		return nil, err
	}
	cache[id] = receta
	return receta, nil
}

func mergePurchaseState(grouped map[string]*models.ShoppingItem, previous []models.ShoppingItem) {
	for _, old := range previous {
		item, exists := grouped[old.Ingrediente+"_"+old.Unidad]
		if !exists {
			continue
		}
		item.Comprado = old.Comprado
		item.FechaCompra = old.FechaCompra
		item.CostoReal = old.CostoReal
		if old.SeccionSupermercado != "" {
			item.SeccionSupermercado = old.SeccionSupermercado
		}
		if old.Prioridad != "" {
			item.Prioridad = old.Prioridad
		}
	}
}

func categoryRank(categoria string) int {
	if rank, known := shoppingCategoryOrder[categoria]; known {
		return rank
	}
	return len(shoppingCategoryOrder)
}
