package migration

import (
	"testing"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func migratedRecipe(legacyId int) models.Recipe {
	return models.Recipe{
		Id:       primitive.NewObjectID(),
		Nombre:   "receta migrada",
		IdLegacy: legacyIntPtr(legacyId),
	}
}

func TestPlanMigratorUnknownStrategy(t *testing.T) {
	migrator := NewPlanMigrator(&fakePlanSource{}, &fakeTarget{}, &fakeArchiver{})

	if _, err := migrator.Run("yolo", Options{}); err == nil {
		t.Error("una estrategia desconocida debe rechazarse")
	}
}

func TestPlanMigratorSampleStrategy(t *testing.T) {
	target := &fakeTarget{createdPlans: []models.MealPlan{{}, {}}}
	migrator := NewPlanMigrator(&fakePlanSource{}, target, &fakeArchiver{})

	report, err := migrator.Run("sample", Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if report.Processed != 0 {
		t.Errorf("Processed = %d, want 0", report.Processed)
	}
	if report.TotalAfter != 2 {
		t.Errorf("TotalAfter = %d, want 2", report.TotalAfter)
	}
}

func TestPlanMigratorBasic(t *testing.T) {
	sopa := migratedRecipe(10)
	principal := migratedRecipe(11)
	guarnicion := migratedRecipe(12)
	desayuno := migratedRecipe(13)

	planId := primitive.NewObjectID()
	inicio := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // lunes

	source := &fakePlanSource{
		plans: []models.LegacyPlan{{
			Id:          planId,
			NombrePlan:  "Semana uno",
			Racion:      6,
			FechaInicio: inicio,
			Estado:      "archivado",
			Descripcion: "plan de prueba",
		}},
		rows: []models.LegacyPlanRecipe{
			{
				Id:         primitive.NewObjectID(),
				IdPlan:     planId,
				DiaSemana:  "lunes",
				TipoComida: "desayuno",
				IdReceta:   legacyIntPtr(13),
				Notas:      "sin azúcar",
			},
			{
				Id:         primitive.NewObjectID(),
				IdPlan:     planId,
				DiaSemana:  "martes",
				TipoComida: "comida",
				Recetas: models.LegacyRecipeSlots{
					Sopa:      legacyIntPtr(10),
					Principal: legacyIntPtr(11),
				},
				IdSide: legacyIntPtr(12),
			},
		},
	}
	target := &fakeTarget{migrated: []models.Recipe{sopa, principal, guarnicion, desayuno}}
	archiver := &fakeArchiver{}

	migrator := NewPlanMigrator(source, target, archiver)
	report, err := migrator.Run("basic", Options{BackupOld: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if report.Processed != 1 || len(report.Errors) != 0 {
		t.Fatalf("report = %+v", report)
	}
	if len(report.Backups) != 2 {
		t.Errorf("Backups = %v, want planes y planRecetas", report.Backups)
	}
	if len(target.createdPlans) != 1 {
		t.Fatalf("createdPlans = %d, want 1", len(target.createdPlans))
	}

	plan := target.createdPlans[0]
	if plan.Nombre != "Semana uno" || plan.PorcionesBase != 6 {
		t.Errorf("plan = %+v", plan)
	}
	if plan.Estado != "pausado" {
		t.Errorf("Estado = %q, want pausado (archivado mapeado)", plan.Estado)
	}
	if plan.ComentariosGenerales != "plan de prueba" {
		t.Errorf("ComentariosGenerales = %q", plan.ComentariosGenerales)
	}
	if !plan.FechaFin.Equal(inicio.AddDate(0, 0, 7)) {
		t.Errorf("FechaFin = %s, want inicio + 7 días", plan.FechaFin.Format("2006-01-02"))
	}

	if len(plan.Dias) != 2 {
		t.Fatalf("Dias = %d, want 2", len(plan.Dias))
	}

	lunes := plan.Dias[0]
	if lunes.DiaSemana != "lunes" || !lunes.Fecha.Equal(inicio) {
		t.Errorf("día lunes = %+v", lunes)
	}
	if lunes.Comidas.Desayuno == nil || lunes.Comidas.Desayuno.RecetaId != desayuno.Id {
		t.Error("desayuno del lunes no apunta a la receta migrada")
	}
	if lunes.Comidas.Desayuno.Modificaciones.Notas != "sin azúcar" {
		t.Errorf("Notas = %q", lunes.Comidas.Desayuno.Modificaciones.Notas)
	}

	martes := plan.Dias[1]
	if martes.DiaSemana != "martes" || !martes.Fecha.Equal(inicio.AddDate(0, 0, 1)) {
		t.Errorf("día martes = %+v", martes)
	}
	comida := martes.Comidas.Comida
	if comida.Sopa == nil || comida.Sopa.RecetaId != sopa.Id {
		t.Error("sopa del martes mal ruteada")
	}
	if comida.Principal == nil || comida.Principal.RecetaId != principal.Id {
		t.Error("principal del martes mal ruteado")
	}
	// El campo plano idSide sigue funcionando cuando el bloque tipado no trae guarnición.
	if comida.Guarnicion == nil || comida.Guarnicion.RecetaId != guarnicion.Id {
		t.Error("guarnición del martes mal ruteada")
	}
}

func TestPlanMigratorRowWithoutWeekdayFailsThatPlan(t *testing.T) {
	planId := primitive.NewObjectID()
	otherId := primitive.NewObjectID()

	source := &fakePlanSource{
		plans: []models.LegacyPlan{
			{Id: planId, NombrePlan: "roto"},
			{Id: otherId, NombrePlan: "sano"},
		},
		rows: []models.LegacyPlanRecipe{
			{Id: primitive.NewObjectID(), IdPlan: planId, TipoComida: "cena", IdReceta: legacyIntPtr(1)},
		},
	}
	target := &fakeTarget{migrated: []models.Recipe{migratedRecipe(1)}}

	migrator := NewPlanMigrator(source, target, &fakeArchiver{})
	report, err := migrator.Run("basic", Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if report.Processed != 1 {
		t.Errorf("Processed = %d, want 1: el plan sano sigue adelante", report.Processed)
	}
	if len(report.Errors) != 1 {
		t.Errorf("Errors = %v, want el plan roto reportado", report.Errors)
	}
}

func TestPlanMigratorSkipsUnmappedReferences(t *testing.T) {
	planId := primitive.NewObjectID()
	source := &fakePlanSource{
		plans: []models.LegacyPlan{{Id: planId, NombrePlan: "plan"}},
		rows: []models.LegacyPlanRecipe{
			{
				Id:         primitive.NewObjectID(),
				IdPlan:     planId,
				DiaSemana:  "jueves",
				TipoComida: "cena",
				IdReceta:   legacyIntPtr(999), // nunca migrada
			},
		},
	}
	target := &fakeTarget{}

	migrator := NewPlanMigrator(source, target, &fakeArchiver{})
	report, err := migrator.Run("basic", Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if report.Processed != 1 {
		t.Errorf("Processed = %d, want 1", report.Processed)
	}

	plan := target.createdPlans[0]
	if len(plan.Dias) != 1 || plan.Dias[0].Comidas.Cena != nil {
		t.Errorf("una referencia sin migrar debe omitirse en silencio: %+v", plan.Dias)
	}
}

func TestPlanMigratorDryRun(t *testing.T) {
	planId := primitive.NewObjectID()
	source := &fakePlanSource{
		plans: []models.LegacyPlan{{Id: planId, NombrePlan: "plan"}},
	}
	target := &fakeTarget{}
	archiver := &fakeArchiver{}

	migrator := NewPlanMigrator(source, target, archiver)
	report, err := migrator.Run("basic", Options{DryRun: true, BackupOld: true, ClearNew: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if report.Processed != 1 {
		t.Errorf("Processed = %d, want 1", report.Processed)
	}
	if len(target.createdPlans) != 0 || target.clearedPlans || len(archiver.archived) != 0 {
		t.Error("un dry-run no debe escribir, vaciar ni respaldar")
	}
}

func TestPlanMigratorFresh(t *testing.T) {
	target := &fakeTarget{migrated: []models.Recipe{
		migratedRecipe(1), migratedRecipe(2), migratedRecipe(3), migratedRecipe(4), migratedRecipe(5),
	}}

	migrator := NewPlanMigrator(&fakePlanSource{}, target, &fakeArchiver{})
	report, err := migrator.Run("fresh", Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if report.Processed != 1 || report.TotalAfter != 1 {
		t.Errorf("report = %+v", report)
	}

	plan := target.createdPlans[0]
	if plan.Nombre != "Plan Semanal Básico" || plan.Estado != "activo" {
		t.Errorf("plan = %+v", plan)
	}
	if len(plan.Dias) != 1 {
		t.Fatalf("Dias = %d, want 1", len(plan.Dias))
	}
	comidas := plan.Dias[0].Comidas
	if comidas.Desayuno == nil || comidas.Comida.Sopa == nil || comidas.Comida.Principal == nil || comidas.Comida.Guarnicion == nil || comidas.Cena == nil {
		t.Errorf("el plan de muestra debe llenar los cinco espacios: %+v", comidas)
	}
}

func TestPlanMigratorFreshRequiresMigratedRecipes(t *testing.T) {
	migrator := NewPlanMigrator(&fakePlanSource{}, &fakeTarget{}, &fakeArchiver{})

	if _, err := migrator.Run("fresh", Options{}); err == nil {
		t.Error("fresh sin recetas migradas debe fallar")
	}
}

func TestBuildRecipeIdMap(t *testing.T) {
	conIdLegacy := models.Recipe{Id: primitive.NewObjectID(), IdLegacy: legacyIntPtr(7)}
	conTag := models.Recipe{Id: primitive.NewObjectID(), Tags: []string{"migrado", "migrado-id-42"}}
	tagInvalido := models.Recipe{Id: primitive.NewObjectID(), Tags: []string{"migrado-id-xyz"}}
	sinNada := models.Recipe{Id: primitive.NewObjectID(), Tags: []string{"vegano"}}

	ids := buildRecipeIdMap([]models.Recipe{conIdLegacy, conTag, tagInvalido, sinNada})

	if len(ids) != 2 {
		t.Fatalf("len(ids) = %d, want 2", len(ids))
	}
	if ids[7] != conIdLegacy.Id {
		t.Error("idLegacy no resuelto")
	}
	if ids[42] != conTag.Id {
		t.Error("tag migrado-id-42 no resuelto")
	}
}

func TestMapPlanStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"borrador", "borrador"},
		{"activo", "activo"},
		{"completado", "completado"},
		{"archivado", "pausado"},
		{"viejo", "borrador"},
		{"", "borrador"},
	}
	for _, tt := range tests {
		if got := mapPlanStatus(tt.in); got != tt.want {
			t.Errorf("mapPlanStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertPlanDefaults(t *testing.T) {
	legacy := models.LegacyPlan{Id: primitive.NewObjectID()}

	plan, err := convertPlan(legacy, nil, nil)
	if err != nil {
		t.Fatalf("convertPlan() error: %v", err)
	}

	if plan.Nombre != "Plan Migrado" {
		t.Errorf("Nombre = %q", plan.Nombre)
	}
	if plan.FechaInicio.IsZero() {
		t.Error("FechaInicio sin valor por omisión")
	}
	if plan.PorcionesBase != 4 {
		t.Errorf("PorcionesBase = %d, want 4", plan.PorcionesBase)
	}
	if plan.Estado != "borrador" {
		t.Errorf("Estado = %q, want borrador", plan.Estado)
	}
}
