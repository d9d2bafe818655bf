package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func entry(prepTime *int) *MealEntry {
	return &MealEntry{RecetaId: primitive.NewObjectID(), TiempoPreparacion: prepTime}
}

func intPtr(v int) *int {
	return &v
}

func TestCalculateSummaryCounts(t *testing.T) {
	plan := MealPlan{
		Dias: []PlanDay{
			{
				CostoEstimadoDia: 100,
				NutricionDiaria:  Nutrition{Calorias: 1800, Proteinas: 80},
				Comidas: DayMeals{
					Desayuno: entry(intPtr(10)),
					Comida: LunchCourses{
						Sopa:      entry(intPtr(20)),
						Principal: entry(intPtr(30)),
					},
					Cena: entry(nil),
				},
			},
			{
				CostoEstimadoDia: 60,
				NutricionDiaria:  Nutrition{Calorias: 1200, Proteinas: 40},
				Comidas: DayMeals{
					Comida: LunchCourses{
						Principal:  entry(intPtr(45)),
						Guarnicion: entry(nil),
					},
					Colaciones: []MealEntry{{RecetaId: primitive.NewObjectID()}},
				},
			},
		},
	}

	plan.CalculateSummary()

	if plan.Resumen.TotalRecetas != 7 {
		t.Errorf("TotalRecetas = %d, want 7", plan.Resumen.TotalRecetas)
	}
	if !almostEqual(plan.Resumen.CostoTotalEstimado, 160) {
		t.Errorf("CostoTotalEstimado = %v, want 160", plan.Resumen.CostoTotalEstimado)
	}
	if !almostEqual(plan.Resumen.CostoPromedioDiario, 80) {
		t.Errorf("CostoPromedioDiario = %v, want 80", plan.Resumen.CostoPromedioDiario)
	}
	// Solo las entradas con tiempo explícito suman.
	if plan.Resumen.TiempoTotalPreparacion != 105 {
		t.Errorf("TiempoTotalPreparacion = %d, want 105", plan.Resumen.TiempoTotalPreparacion)
	}
	if !almostEqual(plan.Resumen.NutricionPromedioDiaria.Calorias, 1500) {
		t.Errorf("NutricionPromedioDiaria.Calorias = %v, want 1500", plan.Resumen.NutricionPromedioDiaria.Calorias)
	}
	if !almostEqual(plan.Resumen.NutricionPromedioDiaria.Proteinas, 60) {
		t.Errorf("NutricionPromedioDiaria.Proteinas = %v, want 60", plan.Resumen.NutricionPromedioDiaria.Proteinas)
	}

	dist := plan.Resumen.DistribucionCategorias
	if dist.Sopas != 1 || dist.PlatosFuertes != 2 || dist.Guarniciones != 1 {
		t.Errorf("DistribucionCategorias = %+v, want 1 sopa, 2 platos fuertes, 1 guarnición", dist)
	}
}

func TestCalculateSummaryIdempotent(t *testing.T) {
	plan := MealPlan{
		Dias: []PlanDay{
			{
				CostoEstimadoDia: 50,
				Comidas:          DayMeals{Desayuno: entry(intPtr(15))},
			},
		},
	}

	plan.CalculateSummary()
	first := plan.Resumen
	plan.CalculateSummary()

	if plan.Resumen != first {
		t.Errorf("segunda ejecución cambió el resumen: %+v vs %+v", plan.Resumen, first)
	}
}

func TestCalculateSummaryEmptyPlan(t *testing.T) {
	plan := MealPlan{Resumen: PlanSummary{TotalRecetas: 99, CostoTotalEstimado: 500}}

	plan.CalculateSummary()

	if plan.Resumen != (PlanSummary{}) {
		t.Errorf("un plan sin días debe producir un resumen en cero, got %+v", plan.Resumen)
	}
}

func TestDuracionDias(t *testing.T) {
	inicio := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	plan := MealPlan{FechaInicio: inicio, FechaFin: inicio.AddDate(0, 0, 6)}

	if got := plan.DuracionDias(); got != 7 {
		t.Errorf("DuracionDias() = %d, want 7", got)
	}

	plan.FechaFin = inicio
	if got := plan.DuracionDias(); got != 1 {
		t.Errorf("DuracionDias() de un solo día = %d, want 1", got)
	}
}

func TestPlanDayNormalize(t *testing.T) {
	// 2026-03-02 es lunes.
	lunes := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	day := PlanDay{Fecha: lunes}
	if err := day.Normalize(); err != nil {
		t.Fatalf("Normalize() error inesperado: %v", err)
	}
	if day.DiaSemana != "lunes" {
		t.Errorf("DiaSemana derivado = %q, want lunes", day.DiaSemana)
	}

	day = PlanDay{Fecha: lunes, DiaSemana: "lunes"}
	if err := day.Normalize(); err != nil {
		t.Errorf("Normalize() con nombre correcto devolvió error: %v", err)
	}

	day = PlanDay{Fecha: lunes, DiaSemana: "martes"}
	if err := day.Normalize(); err == nil {
		t.Error("Normalize() aceptó un diaSemana que no corresponde a la fecha")
	}
}

func TestDateForWeekday(t *testing.T) {
	// 2026-03-04 es miércoles.
	miercoles := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		diaSemana string
		want      time.Time
	}{
		{"miercoles", miercoles},
		{"viernes", miercoles.AddDate(0, 0, 2)},
		{"lunes", miercoles.AddDate(0, 0, 5)},
		{"desconocido", miercoles},
	}

	for _, tt := range tests {
		if got := DateForWeekday(miercoles, tt.diaSemana); !got.Equal(tt.want) {
			t.Errorf("DateForWeekday(%q) = %s, want %s", tt.diaSemana, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
		}
	}
}

func TestCreateTemplate(t *testing.T) {
	now := time.Now()
	original := MealPlan{
		Id:                  primitive.NewObjectID(),
		Nombre:              "Plan de marzo",
		ClienteId:           primitive.NewObjectID(),
		FechaInicio:         now,
		FechaFin:            now.AddDate(0, 0, 6),
		Estado:              "activo",
		VecesUsado:          3,
		UltimaActividad:     &now,
		CalificacionGeneral: intPtr(5),
		Dias: []PlanDay{
			{
				Fecha:                now,
				DiaSemana:            WeekdayName(now),
				Completado:           true,
				PorcentajeCompletado: 100,
				Comidas: DayMeals{
					Desayuno: &MealEntry{
						RecetaId:         primitive.NewObjectID(),
						Preparado:        true,
						FechaPreparacion: &now,
						Calificacion:     intPtr(4),
						Comentarios:      "quedó bien",
					},
				},
			},
		},
	}

	plantilla := original.CreateTemplate("Plantilla semanal")

	if !plantilla.EsPlantilla {
		t.Error("EsPlantilla = false")
	}
	if plantilla.Nombre != "Plantilla semanal" {
		t.Errorf("Nombre = %q", plantilla.Nombre)
	}
	if !plantilla.Id.IsZero() || !plantilla.ClienteId.IsZero() {
		t.Error("la plantilla conserva Id o ClienteId del plan original")
	}
	if plantilla.PlantillaOriginal == nil || *plantilla.PlantillaOriginal != original.Id {
		t.Error("PlantillaOriginal no apunta al plan de origen")
	}
	if plantilla.Estado != "borrador" || plantilla.VecesUsado != 0 || plantilla.UltimaActividad != nil || plantilla.CalificacionGeneral != nil {
		t.Errorf("estado de seguimiento sin limpiar: %+v", plantilla)
	}

	dia := plantilla.Dias[0]
	if !dia.Fecha.IsZero() || dia.Completado || dia.PorcentajeCompletado != 0 {
		t.Errorf("día sin limpiar: %+v", dia)
	}
	desayuno := dia.Comidas.Desayuno
	if desayuno == nil {
		t.Fatal("la plantilla perdió la entrada de desayuno")
	}
	if desayuno.RecetaId != original.Dias[0].Comidas.Desayuno.RecetaId {
		t.Error("la plantilla perdió la referencia a la receta")
	}
	if desayuno.Preparado || desayuno.FechaPreparacion != nil || desayuno.Calificacion != nil || desayuno.Comentarios != "" {
		t.Errorf("entrada sin limpiar: %+v", desayuno)
	}
	// El plan original no se toca.
	if !original.Dias[0].Comidas.Desayuno.Preparado {
		t.Error("CreateTemplate mutó el plan original")
	}
}

func TestDayMealsEntriesOrder(t *testing.T) {
	meals := DayMeals{
		Desayuno: entry(nil),
		Comida:   LunchCourses{Principal: entry(nil)},
		Cena:     entry(nil),
		Colaciones: []MealEntry{
			{RecetaId: primitive.NewObjectID()},
			{RecetaId: primitive.NewObjectID()},
		},
	}

	entries := meals.Entries()
	if len(entries) != 5 {
		t.Fatalf("len(Entries()) = %d, want 5", len(entries))
	}
	if entries[0] != meals.Desayuno || entries[1] != meals.Comida.Principal || entries[2] != meals.Cena {
		t.Error("las entradas no respetan el orden de los espacios de comida")
	}
	if entries[3].RecetaId != meals.Colaciones[0].RecetaId {
		t.Error("las colaciones no van al final")
	}
}
