package migration

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	infraMigration "github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/migration"
	"github.com/tmc-recipes/meals-backend/internal/presentation/helpers"
	presentationProtocols "github.com/tmc-recipes/meals-backend/internal/presentation/protocols"
)

type MigratePlansController struct {
	Migrator *infraMigration.PlanMigrator
	Validate *validator.Validate
}

func NewMigratePlansController(migrator *infraMigration.PlanMigrator) *MigratePlansController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &MigratePlansController{
		Migrator: migrator,
		Validate: validate,
	}
}

type MigratePlansBody struct {
	Strategy  string `json:"strategy" validate:"omitempty,oneof=basic fresh sample"`
	DryRun    bool   `json:"dryRun"`
	BackupOld *bool  `json:"backupOld"`
	ClearNew  bool   `json:"clearNew"`
}

func (c *MigratePlansController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	body := MigratePlansBody{}
	if r.Body != nil {
		// An empty body runs the basic strategy with the defaults.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	if body.Strategy == "" {
		body.Strategy = "basic"
	}

	opts := infraMigration.Options{
		DryRun:    body.DryRun,
		BackupOld: body.BackupOld == nil || *body.BackupOld,
		ClearNew:  body.ClearNew,
	}

	report, err := c.Migrator.Run(body.Strategy, opts)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error migrating meal plans: " + err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(report, http.StatusOK)
}
