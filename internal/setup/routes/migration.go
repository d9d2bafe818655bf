package routes

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/setup/adapters"
	"github.com/tmc-recipes/meals-backend/internal/setup/factory"
	"github.com/tmc-recipes/meals-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func MigrationRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /migracion/recetas", middlewares.VerifyAccessToken(
		middlewares.RequireAdmin(
			adapters.AdaptRoute(factory.MakeMigrateRecipesController(db)),
			db,
		),
	))

	server.Handle("POST /migracion/planes", middlewares.VerifyAccessToken(
		middlewares.RequireAdmin(
			adapters.AdaptRoute(factory.MakeMigratePlansController(db)),
			db,
		),
	))
}
