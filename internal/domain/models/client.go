package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DietaryRestriction struct {
	Tipo      string `json:"tipo" bson:"tipo"`
	Severidad string `json:"severidad,omitempty" bson:"severidad,omitempty"` // leve | moderada | estricta
	Notas     string `json:"notas,omitempty" bson:"notas,omitempty"`
}

type Allergy struct {
	Alergeno  string `json:"alergeno" bson:"alergeno"`
	Severidad string `json:"severidad,omitempty" bson:"severidad,omitempty"`
}

// DietaryPreferences is the snapshot a meal plan caches from its client:
// restrictions, allergies and household size drive portion defaults.
type DietaryPreferences struct {
	Restricciones []DietaryRestriction `json:"restricciones,omitempty" bson:"restricciones,omitempty"`
	Alergias      []Allergy            `json:"alergias,omitempty" bson:"alergias,omitempty"`
	TamanoHogar   int                  `json:"tamanoHogar" bson:"tamanoHogar"`
}

type Client struct {
	Id                     primitive.ObjectID `json:"id" bson:"_id"`
	Nombre                 string             `json:"nombre" bson:"nombre"`
	Telefono               string             `json:"telefono,omitempty" bson:"telefono,omitempty"`
	Email                  string             `json:"email,omitempty" bson:"email,omitempty"`
	Comentarios            string             `json:"comentarios,omitempty" bson:"comentarios,omitempty"`
	PreferenciasDieteticas DietaryPreferences `json:"preferenciasDieteticas" bson:"preferenciasDieteticas"`
	IdLegacy               *int               `json:"idLegacy,omitempty" bson:"idLegacy,omitempty"`
	CreatedAt              time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt              time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PorcionesRecomendadas suggests a base portion count from household size.
func (c *Client) PorcionesRecomendadas() int {
	if c.PreferenciasDieteticas.TamanoHogar >= 1 {
		return c.PreferenciasDieteticas.TamanoHogar
	}
	return 4
}
