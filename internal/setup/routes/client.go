package routes

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/setup/adapters"
	"github.com/tmc-recipes/meals-backend/internal/setup/factory"
	"github.com/tmc-recipes/meals-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func ClientRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /cliente", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateClientController(db)),
	))

	server.Handle("GET /cliente", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetClientsController(db)),
	))

	server.Handle("GET /cliente/{clientId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetClientByIdController(db)),
	))

	server.Handle("PUT /cliente/{clientId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateClientController(db)),
	))

	server.Handle("DELETE /cliente/{clientId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteClientController(db)),
	))
}
