package health

import (
	"context"
	"net/http"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/mongo"
)

type GetHealthController struct {
	Db *mongo.Database
}

func NewGetHealthController(db *mongo.Database) *GetHealthController {
	return &GetHealthController{
		Db: db,
	}
}

type healthStatus struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *GetHealthController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status := healthStatus{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now(),
	}

	if err := c.Db.Client().Ping(ctx, nil); err != nil {
		status.Status = "degraded"
		status.Database = "disconnected"
		return helpers.CreateResponse(status, http.StatusServiceUnavailable)
	}

	return helpers.CreateResponse(status, http.StatusOK)
}
