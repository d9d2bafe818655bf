package setup

import (
	"net/http"
	"os"

	"github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/helpers"
	"github.com/tmc-recipes/meals-backend/internal/setup/config"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	databaseName := os.Getenv("MONGO_DATABASE")
	if databaseName == "" {
		databaseName = "tmc-recipe-manager"
	}

	db := helpers.MongoHelper(os.Getenv("MONGO_URI"), databaseName)

	config.SetupRoutes(mux, db, os.Getenv("REDIS_URL"))

	return mux
}
