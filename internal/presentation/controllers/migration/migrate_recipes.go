package migration

import (
	"encoding/json"
	"net/http"

	infraMigration "github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/migration"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
)

type MigrateRecipesController struct {
	Migrator *infraMigration.RecipeMigrator
}

func NewMigrateRecipesController(migrator *infraMigration.RecipeMigrator) *MigrateRecipesController {
	return &MigrateRecipesController{
		Migrator: migrator,
	}
}

type MigrateRecipesBody struct {
	DryRun    bool  `json:"dryRun"`
	BackupOld *bool `json:"backupOld"`
	ClearNew  bool  `json:"clearNew"`
}

func (c *MigrateRecipesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	body := MigrateRecipesBody{}
	if r.Body != nil {
		// An empty body runs with the defaults.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	opts := infraMigration.Options{
		DryRun:    body.DryRun,
		BackupOld: body.BackupOld == nil || *body.BackupOld,
		ClearNew:  body.ClearNew,
	}

	report, err := c.Migrator.Run(opts)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error migrating recipes: " + err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(report, http.StatusOK)
}
