package middlewares

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type accountUser struct {
	Id     primitive.ObjectID `bson:"_id"`
	Role   string             `bson:"role"`
	Activo bool               `bson:"activo"`
}

// RequireAdmin guards destructive routes: the authenticated user must exist,
// be active and carry the admin role.
func RequireAdmin(next http.Handler, db *mongo.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId, err := primitive.ObjectIDFromHex(r.Header.Get("userId"))
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusBadRequest)
			return
		}

		collection := db.Collection("users")

		var user accountUser
		if err := collection.FindOne(helpers.Ctx, bson.M{"_id": userId}).Decode(&user); err != nil {
			http.Error(w, "User not found", http.StatusUnauthorized)
			return
		}

		if !user.Activo || user.Role != "admin" {
			http.Error(w, "User not allowed to access this resource", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
