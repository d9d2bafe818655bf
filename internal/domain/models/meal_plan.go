package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MealModifications struct {
	IngredientesOmitidos     []string     `json:"ingredientesOmitidos,omitempty" bson:"ingredientesOmitidos,omitempty"`
	IngredientesAdicionales  []Ingredient `json:"ingredientesAdicionales,omitempty" bson:"ingredientesAdicionales,omitempty"`
	InstruccionesAdicionales string       `json:"instruccionesAdicionales,omitempty" bson:"instruccionesAdicionales,omitempty"`
	Notas                    string       `json:"notas,omitempty" bson:"notas,omitempty"`
}

// MealEntry assigns one recipe to a meal slot, plus preparation and rating
// metadata. Entries live only inside a PlanDay; removing the day removes them.
type MealEntry struct {
	RecetaId                primitive.ObjectID `json:"recetaId" bson:"recetaId"`
	PorcionesPersonalizadas *int               `json:"porcionesPersonalizadas,omitempty" bson:"porcionesPersonalizadas,omitempty"`
	Modificaciones          MealModifications  `json:"modificaciones" bson:"modificaciones"`
	HoraPreferida           string             `json:"horaPreferida,omitempty" bson:"horaPreferida,omitempty"`
	TiempoPreparacion       *int               `json:"tiempoPreparacion,omitempty" bson:"tiempoPreparacion,omitempty"`
	Preparado               bool               `json:"preparado" bson:"preparado"`
	FechaPreparacion        *time.Time         `json:"fechaPreparacion,omitempty" bson:"fechaPreparacion,omitempty"`
	Calificacion            *int               `json:"calificacion,omitempty" bson:"calificacion,omitempty"`
	Comentarios             string             `json:"comentarios,omitempty" bson:"comentarios,omitempty"`
}

// LunchCourses is the three-course lunch block: soup, main dish and side.
type LunchCourses struct {
	Sopa       *MealEntry `json:"sopa,omitempty" bson:"sopa,omitempty"`
	Principal  *MealEntry `json:"principal,omitempty" bson:"principal,omitempty"`
	Guarnicion *MealEntry `json:"guarnicion,omitempty" bson:"guarnicion,omitempty"`
}

// DayMeals holds the fixed slot structure of one day. Every optional slot is
// a pointer; nil means the slot is empty.
type DayMeals struct {
	Desayuno   *MealEntry   `json:"desayuno,omitempty" bson:"desayuno,omitempty"`
	Almuerzo   *MealEntry   `json:"almuerzo,omitempty" bson:"almuerzo,omitempty"`
	Comida     LunchCourses `json:"comida" bson:"comida"`
	Cena       *MealEntry   `json:"cena,omitempty" bson:"cena,omitempty"`
	Colaciones []MealEntry  `json:"colaciones,omitempty" bson:"colaciones,omitempty"`
}

// Entries returns the non-empty meal entries of the day in slot order:
// desayuno, almuerzo, comida (sopa, principal, guarnicion), cena, colaciones.
func (m *DayMeals) Entries() []*MealEntry {
	var entries []*MealEntry
	for _, e := range []*MealEntry{m.Desayuno, m.Almuerzo, m.Comida.Sopa, m.Comida.Principal, m.Comida.Guarnicion, m.Cena} {
		if e != nil {
			entries = append(entries, e)
		}
	}
	for i := range m.Colaciones {
		entries = append(entries, &m.Colaciones[i])
	}
	return entries
}

type PlanDay struct {
	Fecha                time.Time `json:"fecha" bson:"fecha"`
	DiaSemana            string    `json:"diaSemana" bson:"diaSemana"` // lunes ... domingo
	Comidas              DayMeals  `json:"comidas" bson:"comidas"`
	NutricionDiaria      Nutrition `json:"nutricionDiaria" bson:"nutricionDiaria"`
	CostoEstimadoDia     float64   `json:"costoEstimadoDia" bson:"costoEstimadoDia"`
	Notas                string    `json:"notas,omitempty" bson:"notas,omitempty"`
	Completado           bool      `json:"completado" bson:"completado"`
	PorcentajeCompletado float64   `json:"porcentajeCompletado" bson:"porcentajeCompletado"`
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miercoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sabado",
	time.Sunday:    "domingo",
}

var weekdayNumbers = map[string]time.Weekday{
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"domingo":   time.Sunday,
}

// WeekdayName returns the Spanish weekday name for a date.
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

// DateForWeekday returns the first date on or after start that falls on the
// named weekday. Unknown names return start unchanged.
func DateForWeekday(start time.Time, diaSemana string) time.Time {
	target, ok := weekdayNumbers[diaSemana]
	if !ok {
		return start
	}
	daysToAdd := int(target - start.Weekday())
	if daysToAdd < 0 {
		daysToAdd += 7
	}
	return start.AddDate(0, 0, daysToAdd)
}

// Normalize fills DiaSemana from Fecha when it is empty, and rejects a name
// that disagrees with the actual weekday of Fecha.
func (d *PlanDay) Normalize() error {
	derived := WeekdayName(d.Fecha)
	if d.DiaSemana == "" {
		d.DiaSemana = derived
		return nil
	}
	if d.DiaSemana != derived {
		return fmt.Errorf("diaSemana %q no corresponde a la fecha %s (%s)", d.DiaSemana, d.Fecha.Format("2006-01-02"), derived)
	}
	return nil
}

type EatingOut struct {
	Dia           string  `json:"dia" bson:"dia"`
	Comida        string  `json:"comida" bson:"comida"` // desayuno | comida | cena
	Restaurante   string  `json:"restaurante,omitempty" bson:"restaurante,omitempty"`
	CostoEstimado float64 `json:"costoEstimado" bson:"costoEstimado"`
}

type PlanPreferences struct {
	PresupuestoMaximo       float64     `json:"presupuestoMaximo,omitempty" bson:"presupuestoMaximo,omitempty"`
	TiempoMaximoPreparacion int         `json:"tiempoMaximoPreparacion,omitempty" bson:"tiempoMaximoPreparacion,omitempty"`
	EvitarRepetirRecetas    bool        `json:"evitarRepetirRecetas" bson:"evitarRepetirRecetas"`
	DiasSinCocinar          []string    `json:"diasSinCocinar,omitempty" bson:"diasSinCocinar,omitempty"`
	ComidaFueraCasa         []EatingOut `json:"comidaFueraCasa,omitempty" bson:"comidaFueraCasa,omitempty"`
}

type RecipeUsage struct {
	RecetaId          primitive.ObjectID `json:"recetaId" bson:"recetaId"`
	NombreReceta      string             `json:"nombreReceta" bson:"nombreReceta"`
	CantidadNecesaria float64            `json:"cantidadNecesaria" bson:"cantidadNecesaria"`
}

// ShoppingItem is one consolidated ingredient requirement across all meals of
// a plan. Items are derived by the shopping list generator; only the purchase
// tracking fields (comprado, fechaCompra, costoReal) are authored by hand and
// survive regeneration.
type ShoppingItem struct {
	Ingrediente         string        `json:"ingrediente" bson:"ingrediente"`
	CantidadTotal       float64       `json:"cantidadTotal" bson:"cantidadTotal"`
	Unidad              string        `json:"unidad" bson:"unidad"`
	Categoria           string        `json:"categoria" bson:"categoria"`
	SeccionSupermercado string        `json:"seccionSupermercado,omitempty" bson:"seccionSupermercado,omitempty"`
	Prioridad           string        `json:"prioridad" bson:"prioridad"` // alta | media | baja
	CostoEstimado       float64       `json:"costoEstimado" bson:"costoEstimado"`
	CostoReal           float64       `json:"costoReal,omitempty" bson:"costoReal,omitempty"`
	Comprado            bool          `json:"comprado" bson:"comprado"`
	FechaCompra         *time.Time    `json:"fechaCompra,omitempty" bson:"fechaCompra,omitempty"`
	RecetasQueLoUsan    []RecipeUsage `json:"recetasQueLoUsan" bson:"recetasQueLoUsan"`
}

type CategoryDistribution struct {
	Sopas         int `json:"sopas" bson:"sopas"`
	PlatosFuertes int `json:"platosFuertes" bson:"platosFuertes"`
	Guarniciones  int `json:"guarniciones" bson:"guarniciones"`
	Postres       int `json:"postres" bson:"postres"`
}

type PlanSummary struct {
	TotalRecetas            int                  `json:"totalRecetas" bson:"totalRecetas"`
	CostoTotalEstimado      float64              `json:"costoTotalEstimado" bson:"costoTotalEstimado"`
	CostoPromedioDiario     float64              `json:"costoPromedioDiario" bson:"costoPromedioDiario"`
	TiempoTotalPreparacion  int                  `json:"tiempoTotalPreparacion" bson:"tiempoTotalPreparacion"`
	NutricionPromedioDiaria Nutrition            `json:"nutricionPromedioDiaria" bson:"nutricionPromedioDiaria"`
	DistribucionCategorias  CategoryDistribution `json:"distribucionCategorias" bson:"distribucionCategorias"`
}

type SharedUser struct {
	ClienteId primitive.ObjectID `json:"clienteId" bson:"clienteId"`
	Permisos  string             `json:"permisos" bson:"permisos"` // lectura | edicion
}

// MealPlan is the embedded aggregate for one planning horizon: days with meal
// slots referencing recipes, a derived shopping list and a derived summary.
// A single document is the unit of consistency; every save rewrites the whole
// aggregate.
type MealPlan struct {
	Id                   primitive.ObjectID  `json:"id" bson:"_id"`
	Nombre               string              `json:"nombre" bson:"nombre"`
	ClienteId            primitive.ObjectID  `json:"clienteId" bson:"clienteId"`
	FechaInicio          time.Time           `json:"fechaInicio" bson:"fechaInicio"`
	FechaFin             time.Time           `json:"fechaFin" bson:"fechaFin"`
	PorcionesBase        int                 `json:"porcionesBase" bson:"porcionesBase"`
	Dias                 []PlanDay           `json:"dias" bson:"dias"`
	Preferencias         PlanPreferences     `json:"preferencias" bson:"preferencias"`
	ListaCompras         []ShoppingItem      `json:"listaCompras" bson:"listaCompras"`
	Resumen              PlanSummary         `json:"resumen" bson:"resumen"`
	Estado               string              `json:"estado" bson:"estado"` // borrador | activo | completado | pausado | cancelado
	EsPlantilla          bool                `json:"esPlantilla" bson:"esPlantilla"`
	PlantillaOriginal    *primitive.ObjectID `json:"plantillaOriginal,omitempty" bson:"plantillaOriginal,omitempty"`
	VecesUsado           int                 `json:"vecesUsado" bson:"vecesUsado"`
	UltimaActividad      *time.Time          `json:"ultimaActividad,omitempty" bson:"ultimaActividad,omitempty"`
	CalificacionGeneral  *int                `json:"calificacionGeneral,omitempty" bson:"calificacionGeneral,omitempty"`
	ComentariosGenerales string              `json:"comentariosGenerales,omitempty" bson:"comentariosGenerales,omitempty"`
	Compartido           bool                `json:"compartido" bson:"compartido"`
	UsuariosCompartidos  []SharedUser        `json:"usuariosCompartidos,omitempty" bson:"usuariosCompartidos,omitempty"`
	CreatedAt            time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// DuracionDias is the inclusive day span of the plan period.
func (p *MealPlan) DuracionDias() int {
	return int(p.FechaFin.Sub(p.FechaInicio).Hours()/24) + 1
}

// CalculateSummary recomputes the plan summary from the embedded days. The
// repositories run it right before every persist. It is idempotent: running
// it twice without touching Dias yields identical output.
//
// The preparation time total sums the per-meal overrides where present; the
// category distribution counts the three lunch course slots, the only slots
// whose dish kind is known without a recipe lookup.
func (p *MealPlan) CalculateSummary() {
	var resumen PlanSummary
	var nutricionTotal Nutrition

	for i := range p.Dias {
		dia := &p.Dias[i]

		resumen.CostoTotalEstimado += dia.CostoEstimadoDia
		nutricionTotal.AddScaled(dia.NutricionDiaria, 1)

		for _, entry := range dia.Comidas.Entries() {
			resumen.TotalRecetas++
			if entry.TiempoPreparacion != nil {
				resumen.TiempoTotalPreparacion += *entry.TiempoPreparacion
			}
		}

		if dia.Comidas.Comida.Sopa != nil {
			resumen.DistribucionCategorias.Sopas++
		}
		if dia.Comidas.Comida.Principal != nil {
			resumen.DistribucionCategorias.PlatosFuertes++
		}
		if dia.Comidas.Comida.Guarnicion != nil {
			resumen.DistribucionCategorias.Guarniciones++
		}
	}

	if numDias := len(p.Dias); numDias > 0 {
		resumen.CostoPromedioDiario = resumen.CostoTotalEstimado / float64(numDias)
		resumen.NutricionPromedioDiaria = nutricionTotal.DividedBy(float64(numDias))
	}

	p.Resumen = resumen
}

// CreateTemplate derives a reusable template from the plan: dates, client
// binding and all tracking state are cleared, the origin plan is recorded.
func (p *MealPlan) CreateTemplate(nombre string) MealPlan {
	plantilla := *p
	plantilla.Id = primitive.NilObjectID
	plantilla.ClienteId = primitive.NilObjectID
	plantilla.Nombre = nombre
	plantilla.EsPlantilla = true
	plantilla.Estado = "borrador"
	original := p.Id
	plantilla.PlantillaOriginal = &original
	plantilla.VecesUsado = 0
	plantilla.UltimaActividad = nil
	plantilla.CalificacionGeneral = nil
	plantilla.ComentariosGenerales = ""

	plantilla.Dias = make([]PlanDay, len(p.Dias))
	for i, dia := range p.Dias {
		dia.Fecha = time.Time{}
		dia.Completado = false
		dia.PorcentajeCompletado = 0
		dia.Comidas = resetDayMeals(dia.Comidas)
		plantilla.Dias[i] = dia
	}

	return plantilla
}

func resetDayMeals(comidas DayMeals) DayMeals {
	comidas.Desayuno = resetMealEntry(comidas.Desayuno)
	comidas.Almuerzo = resetMealEntry(comidas.Almuerzo)
	comidas.Comida.Sopa = resetMealEntry(comidas.Comida.Sopa)
	comidas.Comida.Principal = resetMealEntry(comidas.Comida.Principal)
	comidas.Comida.Guarnicion = resetMealEntry(comidas.Comida.Guarnicion)
	comidas.Cena = resetMealEntry(comidas.Cena)

	colaciones := make([]MealEntry, len(comidas.Colaciones))
	for i, colacion := range comidas.Colaciones {
		reset := resetMealEntry(&colacion)
		colaciones[i] = *reset
	}
	comidas.Colaciones = colaciones

	return comidas
}

func resetMealEntry(entry *MealEntry) *MealEntry {
	if entry == nil {
		return nil
	}
	reset := *entry
	reset.Preparado = false
	reset.FechaPreparacion = nil
	reset.Calificacion = nil
	reset.Comentarios = ""
	return &reset
}
