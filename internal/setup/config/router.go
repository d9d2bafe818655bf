package config

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, redisUrl string) {
	apiServer := http.NewServeMux()
	routes.RecipeRoutes(apiServer, db, redisUrl)
	routes.MealPlanRoutes(apiServer, db)
	routes.ClientRoutes(apiServer, db)
	routes.AuthRoutes(apiServer, db)
	routes.MigrationRoutes(apiServer, db)
	routes.HealthRoutes(apiServer, db)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
