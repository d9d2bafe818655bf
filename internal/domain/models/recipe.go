package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nutrition holds the tracked nutrient amounts. Inside an Ingredient the
// values are per unit of that ingredient; inside a Recipe they are totals.
type Nutrition struct {
	Calorias      float64 `json:"calorias" bson:"calorias"`
	Proteinas     float64 `json:"proteinas" bson:"proteinas"`
	Carbohidratos float64 `json:"carbohidratos" bson:"carbohidratos"`
	Grasas        float64 `json:"grasas" bson:"grasas"`
	Fibra         float64 `json:"fibra" bson:"fibra"`
	Sodio         float64 `json:"sodio" bson:"sodio"`
	Azucar        float64 `json:"azucar" bson:"azucar"`
}

func (n *Nutrition) AddScaled(other Nutrition, factor float64) {
	n.Calorias += other.Calorias * factor
	n.Proteinas += other.Proteinas * factor
	n.Carbohidratos += other.Carbohidratos * factor
	n.Grasas += other.Grasas * factor
	n.Fibra += other.Fibra * factor
	n.Sodio += other.Sodio * factor
	n.Azucar += other.Azucar * factor
}

func (n Nutrition) DividedBy(divisor float64) Nutrition {
	if divisor == 0 {
		return Nutrition{}
	}
	return Nutrition{
		Calorias:      n.Calorias / divisor,
		Proteinas:     n.Proteinas / divisor,
		Carbohidratos: n.Carbohidratos / divisor,
		Grasas:        n.Grasas / divisor,
		Fibra:         n.Fibra / divisor,
		Sodio:         n.Sodio / divisor,
		Azucar:        n.Azucar / divisor,
	}
}

type Substitute struct {
	Nombre string  `json:"nombre" bson:"nombre"`
	Factor float64 `json:"factor" bson:"factor"`
	Notas  string  `json:"notas,omitempty" bson:"notas,omitempty"`
}

type Ingredient struct {
	Nombre        string       `json:"nombre" bson:"nombre"`
	Cantidad      float64      `json:"cantidad" bson:"cantidad"`
	Unidad        string       `json:"unidad" bson:"unidad"`       // kg | g | l | ml | piezas | tazas | cucharadas | cucharaditas | latas | paquetes
	Categoria     string       `json:"categoria" bson:"categoria"` // proteina | vegetales | frutas | lacteos | granos | especias | aceites | otros
	CostoUnitario float64      `json:"costoUnitario" bson:"costoUnitario"`
	Proveedor     string       `json:"proveedor,omitempty" bson:"proveedor,omitempty"`
	Nutricion     *Nutrition   `json:"nutricion,omitempty" bson:"nutricion,omitempty"`
	Alergenos     []string     `json:"alergenos,omitempty" bson:"alergenos,omitempty"` // gluten | lacteos | huevos | nueces | mariscos | soya | pescado
	Sustitutos    []Substitute `json:"sustitutos,omitempty" bson:"sustitutos,omitempty"`
}

type InstructionStep struct {
	Paso            int      `json:"paso" bson:"paso"`
	Descripcion     string   `json:"descripcion" bson:"descripcion"`
	Tiempo          int      `json:"tiempo" bson:"tiempo"`
	Temperatura     string   `json:"temperatura,omitempty" bson:"temperatura,omitempty"`
	EquipoNecesario []string `json:"equipoNecesario,omitempty" bson:"equipoNecesario,omitempty"`
}

type Recipe struct {
	Id                      primitive.ObjectID `json:"id" bson:"_id"`
	Nombre                  string             `json:"nombre" bson:"nombre"`
	Descripcion             string             `json:"descripcion" bson:"descripcion"`
	Categoria               string             `json:"categoria" bson:"categoria"` // sopa | plato-fuerte | guarnicion | postre | bebida | entrada
	Ingredientes            []Ingredient       `json:"ingredientes" bson:"ingredientes"`
	TiempoPreparacion       int                `json:"tiempoPreparacion" bson:"tiempoPreparacion"`
	TiempoCoccion           int                `json:"tiempoCoccion" bson:"tiempoCoccion"`
	Dificultad              string             `json:"dificultad" bson:"dificultad"` // facil | medio | dificil
	PorcionesBase           int                `json:"porcionesBase" bson:"porcionesBase"`
	PorcionesActuales       int                `json:"porcionesActuales,omitempty" bson:"-"`
	Instrucciones           []InstructionStep  `json:"instrucciones,omitempty" bson:"instrucciones,omitempty"`
	NutricionTotal          Nutrition          `json:"nutricionTotal" bson:"nutricionTotal"`
	NutricionPorPorcion     Nutrition          `json:"nutricionPorPorcion" bson:"nutricionPorPorcion"`
	Tags                    []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	RestriccionesDieteticas []string           `json:"restriccionesDieteticas,omitempty" bson:"restriccionesDieteticas,omitempty"`
	Fuente                  string             `json:"fuente,omitempty" bson:"fuente,omitempty"`
	Autor                   string             `json:"autor,omitempty" bson:"autor,omitempty"`
	CostoTotal              float64            `json:"costoTotal" bson:"costoTotal"`
	CostoPorPorcion         float64            `json:"costoPorPorcion" bson:"costoPorPorcion"`
	VecesUsada              int                `json:"vecesUsada" bson:"vecesUsada"`
	UltimoUso               *time.Time         `json:"ultimoUso,omitempty" bson:"ultimoUso,omitempty"`
	Activa                  bool               `json:"activa" bson:"activa"`
	IdLegacy                *int               `json:"idLegacy,omitempty" bson:"idLegacy,omitempty"`
	CreatedAt               time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt               time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CalculateDerivedFields recomputes cost and nutrition totals from the
// ingredient list. The repositories run it right before every persist, so
// controllers never call it by hand. Ingredients without nutrition data
// contribute zero.
func (r *Recipe) CalculateDerivedFields() {
	total := 0.0
	var nutricion Nutrition

	for _, ing := range r.Ingredientes {
		total += ing.CostoUnitario * ing.Cantidad
		if ing.Nutricion != nil {
			nutricion.AddScaled(*ing.Nutricion, ing.Cantidad)
		}
	}

	r.CostoTotal = total
	r.NutricionTotal = nutricion

	if r.PorcionesBase >= 1 {
		porciones := float64(r.PorcionesBase)
		r.CostoPorPorcion = total / porciones
		r.NutricionPorPorcion = nutricion.DividedBy(porciones)
	}
}

// Scale returns a transient view of the recipe adjusted to targetPortions.
// Ingredient quantities and total cost grow by the portion factor; cost per
// portion is portion-invariant and stays untouched. The stored recipe is not
// mutated and the view is never persisted.
func (r *Recipe) Scale(targetPortions int) Recipe {
	factor := float64(targetPortions) / float64(r.PorcionesBase)

	scaled := *r
	scaled.Ingredientes = make([]Ingredient, len(r.Ingredientes))
	for i, ing := range r.Ingredientes {
		ing.Cantidad *= factor
		scaled.Ingredientes[i] = ing
	}

	scaled.CostoTotal = r.CostoTotal * factor
	scaled.PorcionesActuales = targetPortions

	return scaled
}

// TiempoTotal is preparation plus cooking time, in minutes.
func (r *Recipe) TiempoTotal() int {
	return r.TiempoPreparacion + r.TiempoCoccion
}

type RecipeCategoryStats struct {
	Categoria      string  `json:"categoria" bson:"_id"`
	Total          int     `json:"total" bson:"total"`
	CostoPromedio  float64 `json:"costoPromedio" bson:"costoPromedio"`
	TiempoPromedio float64 `json:"tiempoPromedio" bson:"tiempoPromedio"`
}
