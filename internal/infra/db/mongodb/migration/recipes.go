package migration

import (
	"log"
	"strings"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
)

// Options controls a migration run. DryRun converts every record without
// writing; BackupOld snapshots the source collections first; ClearNew empties
// the target collection before inserting.
type Options struct {
	DryRun    bool
	BackupOld bool
	ClearNew  bool
}

// RecipeMigrator converts the legacy recetas + ingredientes collections into
// embedded recipe documents. One bad record never aborts the batch; its error
// is collected in the report and the run keeps going.
type RecipeMigrator struct {
	Source   usecase.LegacyRecipeSource
	Target   usecase.MigrationTarget
	Archiver usecase.CollectionArchiver
}

func NewRecipeMigrator(source usecase.LegacyRecipeSource, target usecase.MigrationTarget, archiver usecase.CollectionArchiver) *RecipeMigrator {
	return &RecipeMigrator{
		Source:   source,
		Target:   target,
		Archiver: archiver,
	}
}

func (m *RecipeMigrator) Run(opts Options) (*models.MigrationReport, error) {
	report := &models.MigrationReport{
		Strategy: "recetas",
		DryRun:   opts.DryRun,
		Errors:   []string{},
	}

	if opts.BackupOld && !opts.DryRun {
		for _, collection := range []string{"recetas", "ingredientes"} {
			backupName, copied, err := m.Archiver.Archive(collection)
			if err != nil {
				return nil, err
			}
			log.Printf("Respaldo creado: %s (%d documentos)", backupName, copied)
			report.Backups = append(report.Backups, backupName)
		}
	}

	if opts.ClearNew && !opts.DryRun {
		if err := m.Target.ClearRecipes(); err != nil {
			return nil, err
		}
	}

	legacyRecipes, err := m.Source.FindRecipes()
	if err != nil {
		return nil, err
	}
	legacyIngredients, err := m.Source.FindIngredients()
	if err != nil {
		return nil, err
	}

	ingredientsByRecipe := make(map[int][]models.LegacyIngredient)
	for _, ing := range legacyIngredients {
		if ing.IdReceta != nil {
			ingredientsByRecipe[*ing.IdReceta] = append(ingredientsByRecipe[*ing.IdReceta], ing)
		}
	}

	for _, legacy := range legacyRecipes {
		recipe := convertRecipe(legacy, ingredientsByRecipe)

		if !opts.DryRun {
			if _, err := m.Target.CreateRecipe(recipe); err != nil {
				report.AddError("receta "+legacy.Nombre, err)
				continue
			}
		}
		report.Processed++
	}

	report.TotalAfter, err = m.Target.CountRecipes()
	if err != nil {
		return nil, err
	}

	return report, nil
}

func convertRecipe(legacy models.LegacyRecipe, ingredientsByRecipe map[int][]models.LegacyIngredient) *models.Recipe {
	recipe := &models.Recipe{
		Nombre:        legacy.Nombre,
		Descripcion:   legacy.Descripcion,
		Categoria:     mapRecipeCategory(legacy.TipoPlatillo),
		PorcionesBase: legacy.Racion,
		Fuente:        legacy.Fuente,
		Tags:          append([]string{"migrado"}, legacy.Tags...),
		IdLegacy:      legacy.IdReceta,
	}

	if recipe.Nombre == "" {
		recipe.Nombre = "Receta sin nombre"
	}
	if recipe.Descripcion == "" {
		recipe.Descripcion = "Sin descripción disponible"
	}
	if recipe.PorcionesBase < 1 {
		recipe.PorcionesBase = 4
	}
	if recipe.Fuente == "" {
		recipe.Fuente = "Migrado"
	}

	for _, line := range legacy.Ingredientes {
		cantidad := line.PorPersona
		if cantidad == 0 {
			cantidad = line.CantidadTotal
		}
		recipe.Ingredientes = append(recipe.Ingredientes, models.Ingredient{
			Nombre:    strings.ToLower(line.Ingrediente),
			Cantidad:  cantidad,
			Unidad:    mapUnit(line.Unidad),
			Categoria: "otros",
		})
	}

	if len(recipe.Ingredientes) == 0 && legacy.IdReceta != nil {
		for _, ing := range ingredientsByRecipe[*legacy.IdReceta] {
			recipe.Ingredientes = append(recipe.Ingredientes, models.Ingredient{
				Nombre:        strings.ToLower(ing.Nombre),
				Cantidad:      ing.Cantidad,
				Unidad:        mapUnit(ing.Unidad),
				Categoria:     mapIngredientCategory(ing.Categoria),
				CostoUnitario: ing.Precio,
			})
		}
	}

	// Embedded recipes require at least one ingredient.
	if len(recipe.Ingredientes) == 0 {
		recipe.Ingredientes = []models.Ingredient{{
			Nombre:    "ingrediente genérico",
			Cantidad:  1,
			Unidad:    "piezas",
			Categoria: "otros",
		}}
	}

	for i := range recipe.Ingredientes {
		if recipe.Ingredientes[i].Cantidad <= 0 {
			recipe.Ingredientes[i].Cantidad = 1
		}
		if recipe.Ingredientes[i].Nombre == "" {
			recipe.Ingredientes[i].Nombre = "ingrediente"
		}
	}

	return recipe
}

func mapRecipeCategory(tipoPlatillo string) string {
	categoryMap := map[string]string{
		"sopa":         "sopa",
		"plato fuerte": "plato-fuerte",
		"guarnición":   "guarnicion",
		"guarnicion":   "guarnicion",
		"postre":       "postre",
		"bebida":       "bebida",
		"entrada":      "entrada",
	}
	if categoria, ok := categoryMap[strings.ToLower(tipoPlatillo)]; ok {
		return categoria
	}
	return "plato-fuerte"
}

func mapUnit(unidad string) string {
	unitMap := map[string]string{
		"kg":           "kg",
		"kilogramos":   "kg",
		"g":            "g",
		"gramos":       "g",
		"l":            "l",
		"litros":       "l",
		"ml":           "ml",
		"mililitros":   "ml",
		"pieza":        "piezas",
		"piezas":       "piezas",
		"taza":         "tazas",
		"tazas":        "tazas",
		"cucharada":    "cucharadas",
		"cucharadas":   "cucharadas",
		"cucharadita":  "cucharaditas",
		"cucharaditas": "cucharaditas",
		"lata":         "latas",
		"latas":        "latas",
		"paquete":      "paquetes",
		"paquetes":     "paquetes",
	}
	if unit, ok := unitMap[strings.ToLower(unidad)]; ok {
		return unit
	}
	return "g"
}

func mapIngredientCategory(categoria string) string {
	categoryMap := map[string]string{
		"proteína":    "proteina",
		"proteina":    "proteina",
		"vegetales":   "vegetales",
		"verduras":    "vegetales",
		"frutas":      "frutas",
		"lácteos":     "lacteos",
		"lacteos":     "lacteos",
		"granos":      "granos",
		"cereales":    "granos",
		"especias":    "especias",
		"condimentos": "especias",
		"aceites":     "aceites",
		"grasas":      "aceites",
	}
	if mapped, ok := categoryMap[strings.ToLower(categoria)]; ok {
		return mapped
	}
	return "otros"
}
