package migration

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanMigrator converts the legacy planes + planRecetas collections into
// embedded plan documents. Three strategies are supported: "basic" migrates
// the legacy rows, "fresh" inserts a sample plan built from already migrated
// recipes, and "sample" only reports current counts without writing.
type PlanMigrator struct {
	Source   usecase.LegacyMealPlanSource
	Target   usecase.MigrationTarget
	Archiver usecase.CollectionArchiver
}

func NewPlanMigrator(source usecase.LegacyMealPlanSource, target usecase.MigrationTarget, archiver usecase.CollectionArchiver) *PlanMigrator {
	return &PlanMigrator{
		Source:   source,
		Target:   target,
		Archiver: archiver,
	}
}

func (m *PlanMigrator) Run(strategy string, opts Options) (*models.MigrationReport, error) {
	report := &models.MigrationReport{
		Strategy: strategy,
		DryRun:   opts.DryRun,
		Errors:   []string{},
	}

	var err error
	switch strategy {
	case "basic":
		err = m.runBasic(opts, report)
	case "fresh":
		err = m.runFresh(opts, report)
	case "sample":
		// status only, nothing to do before the final count
	default:
		return nil, fmt.Errorf("estrategia de migración desconocida: %s", strategy)
	}
	if err != nil {
		return nil, err
	}

	report.TotalAfter, err = m.Target.CountMealPlans()
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (m *PlanMigrator) runBasic(opts Options, report *models.MigrationReport) error {
	if opts.BackupOld && !opts.DryRun {
		for _, collection := range []string{"planes", "planRecetas"} {
			backupName, copied, err := m.Archiver.Archive(collection)
			if err != nil {
				return err
			}
			log.Printf("Respaldo creado: %s (%d documentos)", backupName, copied)
			report.Backups = append(report.Backups, backupName)
		}
	}

	if opts.ClearNew && !opts.DryRun {
		if err := m.Target.ClearMealPlans(); err != nil {
			return err
		}
	}

	legacyPlans, err := m.Source.FindPlans()
	if err != nil {
		return err
	}
	legacyPlanRecipes, err := m.Source.FindPlanRecipes()
	if err != nil {
		return err
	}
	migratedRecipes, err := m.Target.FindMigratedRecipes()
	if err != nil {
		return err
	}

	recipeIds := buildRecipeIdMap(migratedRecipes)

	rowsByPlan := make(map[primitive.ObjectID][]models.LegacyPlanRecipe)
	for _, row := range legacyPlanRecipes {
		rowsByPlan[row.IdPlan] = append(rowsByPlan[row.IdPlan], row)
	}

	for _, legacy := range legacyPlans {
		plan, err := convertPlan(legacy, rowsByPlan[legacy.Id], recipeIds)
		if err != nil {
			report.AddError("plan "+legacy.NombrePlan, err)
			continue
		}

		if !opts.DryRun {
			if _, err := m.Target.CreateMealPlan(plan); err != nil {
				report.AddError("plan "+legacy.NombrePlan, err)
				continue
			}
		}
		report.Processed++
	}

	return nil
}

// runFresh inserts a one-day sample plan assembled from recipes already
// present in the embedded collection. It fails when the recipe migration has
// not run yet.
func (m *PlanMigrator) runFresh(opts Options, report *models.MigrationReport) error {
	if opts.ClearNew && !opts.DryRun {
		if err := m.Target.ClearMealPlans(); err != nil {
			return err
		}
	}

	recipes, err := m.Target.FindMigratedRecipes()
	if err != nil {
		return err
	}
	if len(recipes) == 0 {
		return fmt.Errorf("no hay recetas optimizadas; ejecuta primero la migración de recetas")
	}

	plan := samplePlan(recipes)

	if !opts.DryRun {
		if _, err := m.Target.CreateMealPlan(plan); err != nil {
			return err
		}
	}
	report.Processed++

	return nil
}

func samplePlan(recipes []models.Recipe) *models.MealPlan {
	entryFor := func(index int) *models.MealEntry {
		if index >= len(recipes) {
			return nil
		}
		return &models.MealEntry{RecetaId: recipes[index].Id}
	}

	inicio := time.Now()
	plan := &models.MealPlan{
		Nombre:        "Plan Semanal Básico",
		ClienteId:     primitive.NewObjectID(),
		FechaInicio:   inicio,
		FechaFin:      inicio.AddDate(0, 0, 7),
		PorcionesBase: 4,
		Estado:        "activo",
		Preferencias:  models.PlanPreferences{EvitarRepetirRecetas: true},
		Dias: []models.PlanDay{{
			Fecha:     inicio,
			DiaSemana: models.WeekdayName(inicio),
			Comidas: models.DayMeals{
				Desayuno: entryFor(0),
				Comida: models.LunchCourses{
					Sopa:       entryFor(1),
					Principal:  entryFor(2),
					Guarnicion: entryFor(3),
				},
				Cena: entryFor(4),
			},
		}},
	}

	return plan
}

// buildRecipeIdMap resolves legacy numeric recipe ids to the new ObjectIds.
// Recipes migrated by this code carry idLegacy; older migrations only left a
// migrado-id-<n> tag, so that is scanned as a fallback.
func buildRecipeIdMap(recipes []models.Recipe) map[int]primitive.ObjectID {
	ids := make(map[int]primitive.ObjectID)
	for _, recipe := range recipes {
		if recipe.IdLegacy != nil {
			ids[*recipe.IdLegacy] = recipe.Id
			continue
		}
		for _, tag := range recipe.Tags {
			if rest, ok := strings.CutPrefix(tag, "migrado-id-"); ok {
				if legacyId, err := strconv.Atoi(rest); err == nil {
					ids[legacyId] = recipe.Id
				}
				break
			}
		}
	}
	return ids
}

func convertPlan(legacy models.LegacyPlan, rows []models.LegacyPlanRecipe, recipeIds map[int]primitive.ObjectID) (*models.MealPlan, error) {
	plan := &models.MealPlan{
		Nombre:        legacy.NombrePlan,
		ClienteId:     primitive.NewObjectID(),
		FechaInicio:   legacy.FechaInicio,
		PorcionesBase: legacy.Racion,
		Estado:        mapPlanStatus(legacy.Estado),
		Preferencias:  models.PlanPreferences{EvitarRepetirRecetas: true},
	}

	if plan.Nombre == "" {
		plan.Nombre = "Plan Migrado"
	}
	if plan.FechaInicio.IsZero() {
		plan.FechaInicio = time.Now()
	}
	if legacy.FechaFin != nil {
		plan.FechaFin = *legacy.FechaFin
	} else {
		plan.FechaFin = plan.FechaInicio.AddDate(0, 0, 7)
	}
	if plan.PorcionesBase < 1 {
		plan.PorcionesBase = 4
	}
	if legacy.Descripcion != "" {
		plan.ComentariosGenerales = legacy.Descripcion
	}

	days := make(map[string]*models.PlanDay)
	var dayOrder []string

	for _, row := range rows {
		if row.DiaSemana == "" {
			return nil, fmt.Errorf("fila de planRecetas sin diaSemana")
		}

		day, ok := days[row.DiaSemana]
		if !ok {
			day = &models.PlanDay{
				Fecha:     models.DateForWeekday(plan.FechaInicio, row.DiaSemana),
				DiaSemana: row.DiaSemana,
			}
			days[row.DiaSemana] = day
			dayOrder = append(dayOrder, row.DiaSemana)
		}

		assignRow(day, row, recipeIds)
	}

	for _, diaSemana := range dayOrder {
		plan.Dias = append(plan.Dias, *days[diaSemana])
	}

	return plan, nil
}

// assignRow routes one legacy join row into the day's slot structure. A
// tipoComida of "comida" fans out into the three lunch courses; the other
// meal types take the first recipe reference the row carries. References
// without a migrated counterpart are skipped silently, same as the uplift the
// old application did.
func assignRow(day *models.PlanDay, row models.LegacyPlanRecipe, recipeIds map[int]primitive.ObjectID) {
	entryFor := func(legacyId *int) *models.MealEntry {
		if legacyId == nil {
			return nil
		}
		recetaId, ok := recipeIds[*legacyId]
		if !ok {
			return nil
		}
		entry := &models.MealEntry{RecetaId: recetaId}
		entry.Modificaciones.Notas = row.Notas
		return entry
	}

	if row.TipoComida == "comida" {
		sopa, principal, guarnicion := row.SlotIds()
		if entry := entryFor(sopa); entry != nil {
			day.Comidas.Comida.Sopa = entry
		}
		if entry := entryFor(principal); entry != nil {
			day.Comidas.Comida.Principal = entry
		}
		if entry := entryFor(guarnicion); entry != nil {
			day.Comidas.Comida.Guarnicion = entry
		}
		return
	}

	entry := entryFor(row.AnyRecipeId())
	if entry == nil {
		return
	}

	switch row.TipoComida {
	case "desayuno":
		day.Comidas.Desayuno = entry
	case "cena":
		day.Comidas.Cena = entry
	default:
		day.Comidas.Almuerzo = entry
	}
}

func mapPlanStatus(estado string) string {
	switch estado {
	case "borrador", "activo", "completado":
		return estado
	case "archivado":
		return "pausado"
	default:
		return "borrador"
	}
}
