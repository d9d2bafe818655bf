package routes

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/setup/adapters"
	"github.com/tmc-recipes/meals-backend/internal/setup/factory"
	"github.com/tmc-recipes/meals-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func RecipeRoutes(server *http.ServeMux, db *mongo.Database, redisUrl string) {
	server.Handle("POST /receta", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateRecipeController(db)),
	))

	server.Handle("GET /receta", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetRecipesController(db)),
	))

	server.Handle("GET /receta/stats", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetRecipeStatsController(db)),
	))

	server.Handle("GET /receta/{recipeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetRecipeByIdController(db)),
	))

	server.Handle("PUT /receta/{recipeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateRecipeController(db)),
	))

	server.Handle("DELETE /receta/{recipeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteRecipeController(db)),
	))

	server.Handle("GET /receta/{recipeId}/escalar", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeScaleRecipeController(db)),
	))

	server.Handle("POST /receta/import", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeImportRecipeController(db, redisUrl)),
	))

	server.Handle("POST /receta/import/retry", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeRetryImportRecipeController(db, redisUrl)),
	))
}
