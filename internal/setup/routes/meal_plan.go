package routes

import (
	"net/http"

	"github.com/tmc-recipes/meals-backend/internal/setup/adapters"
	"github.com/tmc-recipes/meals-backend/internal/setup/factory"
	"github.com/tmc-recipes/meals-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func MealPlanRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /plan", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateMealPlanController(db)),
	))

	server.Handle("GET /plan", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetMealPlansController(db)),
	))

	server.Handle("GET /plan/{planId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetMealPlanByIdController(db)),
	))

	server.Handle("PUT /plan/{planId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateMealPlanController(db)),
	))

	server.Handle("DELETE /plan/{planId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteMealPlanController(db)),
	))

	server.Handle("POST /plan/{planId}/lista-compras", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGenerateShoppingListController(db)),
	))

	server.Handle("POST /plan/{planId}/comida/preparada", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeMarkMealPreparedController(db)),
	))

	server.Handle("POST /plan/{planId}/plantilla", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateTemplateController(db)),
	))
}
