package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id          primitive.ObjectID `json:"id" bson:"_id"`
	Nombre      string             `json:"nombre" bson:"nombre"`
	Email       string             `json:"email" bson:"email"`
	Password    string             `json:"-" bson:"password"`
	Role        string             `json:"role" bson:"role"` // user | admin
	Activo      bool               `json:"activo" bson:"activo"`
	UltimoLogin *time.Time         `json:"ultimoLogin,omitempty" bson:"ultimoLogin,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
