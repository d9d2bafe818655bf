package factory

import (
	infraMigration "github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/migration"
	controllers "github.com/tmc-recipes/meals-backend/internal/presentation/controllers/migration"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeMigrateRecipesController(db *mongo.Database) *controllers.MigrateRecipesController {
	source := infraMigration.NewMongoLegacySource(db)
	target := infraMigration.NewMongoMigrationTarget(db)
	archiver := infraMigration.NewMongoCollectionArchiver(db)
	migrator := infraMigration.NewRecipeMigrator(source, target, archiver)
	return controllers.NewMigrateRecipesController(migrator)
}

func MakeMigratePlansController(db *mongo.Database) *controllers.MigratePlansController {
	source := infraMigration.NewMongoLegacySource(db)
	target := infraMigration.NewMongoMigrationTarget(db)
	archiver := infraMigration.NewMongoCollectionArchiver(db)
	migrator := infraMigration.NewPlanMigrator(source, target, archiver)
	return controllers.NewMigratePlansController(migrator)
}
