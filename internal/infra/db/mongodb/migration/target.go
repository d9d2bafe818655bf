package migration

import (
	"context"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoMigrationTarget writes the embedded collections. Derived fields are
// recomputed before every insert, same as the regular repositories do.
type MongoMigrationTarget struct {
	Db *mongo.Database
}

func NewMongoMigrationTarget(db *mongo.Database) *MongoMigrationTarget {
	return &MongoMigrationTarget{
		Db: db,
	}
}

func (t *MongoMigrationTarget) FindMigratedRecipes() ([]models.Recipe, error) {
	cursor, err := t.Db.Collection("recetas_optimizadas").Find(context.Background(), bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	var recipes []models.Recipe
	if err := cursor.All(context.Background(), &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (t *MongoMigrationTarget) CreateRecipe(recipe *models.Recipe) (*models.Recipe, error) {
	recipe.Id = primitive.NewObjectID()
	recipe.Activa = true
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = time.Now()
	recipe.CalculateDerivedFields()

	_, err := t.Db.Collection("recetas_optimizadas").InsertOne(context.Background(), recipe)
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func (t *MongoMigrationTarget) CreateMealPlan(plan *models.MealPlan) (*models.MealPlan, error) {
	plan.Id = primitive.NewObjectID()
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()
	plan.CalculateSummary()

	_, err := t.Db.Collection("planes_comidas_optimizados").InsertOne(context.Background(), plan)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (t *MongoMigrationTarget) CountRecipes() (int64, error) {
	return t.Db.Collection("recetas_optimizadas").CountDocuments(context.Background(), bson.M{})
}

func (t *MongoMigrationTarget) CountMealPlans() (int64, error) {
	return t.Db.Collection("planes_comidas_optimizados").CountDocuments(context.Background(), bson.M{})
}

func (t *MongoMigrationTarget) ClearRecipes() error {
	_, err := t.Db.Collection("recetas_optimizadas").DeleteMany(context.Background(), bson.M{})
	return err
}

func (t *MongoMigrationTarget) ClearMealPlans() error {
	_, err := t.Db.Collection("planes_comidas_optimizados").DeleteMany(context.Background(), bson.M{})
	return err
}
