package routes

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/setup/adapters"
	"github.com/tmc-recipes/meals-backend/internal/setup/factory"
	"github.com/tmc-recipes/meals-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"
)

func AuthRoutes(server *http.ServeMux, db *mongo.Database) {
	// Credential endpoints are throttled harder than the rest of the API.
	server.Handle("POST /auth/register", middlewares.RateLimit(
		adapters.AdaptRoute(factory.MakeRegisterController(db)),
		rate.Limit(1), 5,
	))

	server.Handle("POST /auth/login", middlewares.RateLimit(
		adapters.AdaptRoute(factory.MakeLoginController(db)),
		rate.Limit(1), 5,
	))

	server.Handle("GET /auth/verify", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeVerifyController(db)),
	))
}
