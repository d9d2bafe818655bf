package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Legacy shapes mirror the normalized collections (planes, planRecetas,
// recetas, ingredientes) that predate the embedded aggregate. They are read
// by the migrator only; nothing else writes them.

type LegacyPlan struct {
	Id               primitive.ObjectID `bson:"_id"`
	IdPlan           *int               `bson:"idPlan,omitempty"`
	Cliente          int                `bson:"cliente"`
	NombrePlan       string             `bson:"nombrePlan"`
	Racion           int                `bson:"racion"`
	FechaInicio      time.Time          `bson:"fechaInicio"`
	FechaFin         *time.Time         `bson:"fechaFin,omitempty"`
	DiasPlanificados []string           `bson:"diasPlanificados,omitempty"`
	Estado           string             `bson:"estado"` // borrador | activo | completado | archivado
	Descripcion      string             `bson:"descripcion,omitempty"`
}

// LegacyRecipeSlots is the typed slot block newer join rows carry; older rows
// only fill the flat id fields below it.
type LegacyRecipeSlots struct {
	Sopa       *int `bson:"sopa,omitempty"`
	Principal  *int `bson:"principal,omitempty"`
	Guarnicion *int `bson:"guarnicion,omitempty"`
}

type LegacyPlanRecipe struct {
	Id           primitive.ObjectID `bson:"_id"`
	IdPlanReceta *int               `bson:"idPlanReceta,omitempty"`
	IdPlan       primitive.ObjectID `bson:"idPlan"`
	DiaSemana    string             `bson:"diaSemana"`
	Recetas      LegacyRecipeSlots  `bson:"recetas"`
	IdReceta     *int               `bson:"idReceta,omitempty"`
	IdSoup       *int               `bson:"idSoup,omitempty"`
	IdMain       *int               `bson:"idMain,omitempty"`
	IdSide       *int               `bson:"idSide,omitempty"`
	TipoComida   string             `bson:"tipoComida"` // desayuno | comida | cena
	Notas        string             `bson:"notas,omitempty"`
	AjusteRacion int                `bson:"ajusteRacion"`
}

// SlotIds resolves the soup/main/side references, preferring the typed slot
// block over the flat legacy fields.
func (pr *LegacyPlanRecipe) SlotIds() (sopa, principal, guarnicion *int) {
	sopa, principal, guarnicion = pr.Recetas.Sopa, pr.Recetas.Principal, pr.Recetas.Guarnicion
	if sopa == nil {
		sopa = pr.IdSoup
	}
	if principal == nil {
		principal = pr.IdMain
	}
	if guarnicion == nil {
		guarnicion = pr.IdSide
	}
	return sopa, principal, guarnicion
}

// AnyRecipeId returns the first recipe reference of a non-lunch row.
func (pr *LegacyPlanRecipe) AnyRecipeId() *int {
	for _, id := range []*int{pr.IdReceta, pr.Recetas.Principal, pr.IdMain, pr.Recetas.Sopa, pr.IdSoup, pr.Recetas.Guarnicion, pr.IdSide} {
		if id != nil {
			return id
		}
	}
	return nil
}

type LegacyIngredientLine struct {
	Ingrediente   string  `bson:"ingrediente"`
	Unidad        string  `bson:"unidad"`
	PorPersona    float64 `bson:"por_persona"`
	CantidadTotal float64 `bson:"cantidad_total"`
	IdIngrediente *int    `bson:"idIngrediente,omitempty"`
	IdReceta      *int    `bson:"idReceta,omitempty"`
}

type LegacyRecipe struct {
	Id           primitive.ObjectID     `bson:"_id"`
	IdReceta     *int                   `bson:"idReceta,omitempty"`
	Nombre       string                 `bson:"nombre"`
	Fuente       string                 `bson:"fuente,omitempty"`
	Descripcion  string                 `bson:"descripcion"`
	Tags         []string               `bson:"tags,omitempty"`
	TipoPlatillo string                 `bson:"tipoPlatillo"`
	Racion       int                    `bson:"racion"`
	Ingredientes []LegacyIngredientLine `bson:"ingredientes,omitempty"`
	CreatedAt    *time.Time             `bson:"createdAt,omitempty"`
}

type LegacyIngredient struct {
	Id            primitive.ObjectID `bson:"_id"`
	IdIngrediente *int               `bson:"idIngrediente,omitempty"`
	IdReceta      *int               `bson:"idReceta,omitempty"`
	Nombre        string             `bson:"nombre"`
	Categoria     string             `bson:"categoria,omitempty"`
	Unidad        string             `bson:"unidad,omitempty"`
	Precio        float64            `bson:"precio"`
	Cantidad      float64            `bson:"cantidad"`
}

// MigrationReport summarizes one batch run. The batch never aborts on a
// single record: failures are collected here and the run keeps going.
type MigrationReport struct {
	Strategy   string   `json:"strategy"`
	DryRun     bool     `json:"dryRun"`
	Processed  int      `json:"processed"`
	Errors     []string `json:"errors"`
	Backups    []string `json:"backups,omitempty"`
	TotalAfter int64    `json:"totalAfter"`
}

func (r *MigrationReport) AddError(context string, err error) {
	r.Errors = append(r.Errors, context+": "+err.Error())
}
