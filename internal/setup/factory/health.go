package factory

import (
	controllers "github.com/tmc-recipes/meals-backend/internal/presentation/controllers/health"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetHealthController(db *mongo.Database) *controllers.GetHealthController {
	return controllers.NewGetHealthController(db)
}
