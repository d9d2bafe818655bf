package usecase

import (
	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateMealPlanRepository interface {
	Create(plan *models.MealPlan) (*models.MealPlan, error)
}

type FindMealPlansInputRepository struct {
	ClienteId   *primitive.ObjectID
	Estado      string
	EsPlantilla *bool
	Search      string
	Limit       int
	Offset      int
}

type FindMealPlansRepository interface {
	Find(data *FindMealPlansInputRepository) ([]models.MealPlan, error)
}

type FindMealPlanByIdRepository interface {
	Find(planId primitive.ObjectID) (*models.MealPlan, error)
}

type UpdateMealPlanRepository interface {
	Update(planId primitive.ObjectID, plan *models.MealPlan) (*models.MealPlan, error)
}

type DeleteMealPlanRepository interface {
	Delete(planId primitive.ObjectID) error
}

// GenerateShoppingListRepository derives the consolidated shopping list of a
// plan from its meal entries, resolving each referenced recipe. Generation is
// a merge: purchase tracking on items that keep their (ingrediente, unidad)
// key survives; derived quantities and provenance are replaced.
type GenerateShoppingListRepository interface {
	Generate(plan *models.MealPlan) ([]models.ShoppingItem, error)
}

type UpdateShoppingListRepository interface {
	UpdateShoppingList(planId primitive.ObjectID, items []models.ShoppingItem) error
}

type MarkMealPreparedInput struct {
	PlanId       primitive.ObjectID
	DiaSemana    string
	Slot         string // desayuno | almuerzo | sopa | principal | guarnicion | cena
	Calificacion *int
	Comentarios  string
}

type MarkMealPreparedRepository interface {
	MarkPrepared(data *MarkMealPreparedInput) (*models.MealPlan, error)
}
