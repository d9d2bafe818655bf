package routes

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/setup/adapters"
	"github.com/tmc-recipes/meals-backend/internal/setup/factory"
	"go.mongodb.org/mongo-driver/mongo"
)

func HealthRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("GET /health", adapters.AdaptRoute(factory.MakeGetHealthController(db)))
}
