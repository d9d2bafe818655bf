package migration

import (
	"context"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoLegacySource reads the normalized collections left behind by the old
// application: planes, planRecetas, recetas and ingredientes.
type MongoLegacySource struct {
	Db *mongo.Database
}

func NewMongoLegacySource(db *mongo.Database) *MongoLegacySource {
	return &MongoLegacySource{
		Db: db,
	}
}

func (s *MongoLegacySource) FindPlans() ([]models.LegacyPlan, error) {
	var plans []models.LegacyPlan
	if err := s.findAll("planes", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *MongoLegacySource) FindPlanRecipes() ([]models.LegacyPlanRecipe, error) {
	var planRecipes []models.LegacyPlanRecipe
	if err := s.findAll("planRecetas", &planRecipes); err != nil {
		return nil, err
	}
	return planRecipes, nil
}

func (s *MongoLegacySource) FindRecipes() ([]models.LegacyRecipe, error) {
	var recipes []models.LegacyRecipe
	if err := s.findAll("recetas", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *MongoLegacySource) FindIngredients() ([]models.LegacyIngredient, error) {
	var ingredients []models.LegacyIngredient
	if err := s.findAll("ingredientes", &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *MongoLegacySource) findAll(collection string, results any) error {
	cursor, err := s.Db.Collection(collection).Find(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(context.Background())

	return cursor.All(context.Background(), results)
}
