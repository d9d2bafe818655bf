package meal_plan_repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"github.com/tmc-recipes/meals-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MarkMealPreparedRepository struct {
	Db *mongo.Database
}

func NewMarkMealPreparedRepository(db *mongo.Database) *MarkMealPreparedRepository {
	return &MarkMealPreparedRepository{
		Db: db,
	}
}

// MarkPrepared flips the prepared flag of one meal slot and attaches the
// consumer's rating and comments. The day's completion percentage is refreshed
// from the share of prepared entries.
func (r *MarkMealPreparedRepository) MarkPrepared(data *usecase.MarkMealPreparedInput) (*models.MealPlan, error) {
	collection := r.Db.Collection("planes_comidas_optimizados")

	var plan models.MealPlan
	err := collection.FindOne(context.Background(), bson.M{"_id": data.PlanId}).Decode(&plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var dia *models.PlanDay
	for i := range plan.Dias {
		if plan.Dias[i].DiaSemana == data.DiaSemana {
			dia = &plan.Dias[i]
			break
		}
	}
	if dia == nil {
		return nil, fmt.Errorf("el plan no tiene el dia %q", data.DiaSemana)
	}

	entry := slotEntry(&dia.Comidas, data.Slot)
	if entry == nil {
		return nil, fmt.Errorf("el dia %q no tiene comida en el slot %q", data.DiaSemana, data.Slot)
	}

	now := time.Now()
	entry.Preparado = true
	entry.FechaPreparacion = &now
	entry.Calificacion = data.Calificacion
	entry.Comentarios = data.Comentarios

	refreshDayCompletion(dia)

	plan.UpdatedAt = now
	plan.UltimaActividad = &now
	plan.CalculateSummary()

	if _, err := collection.ReplaceOne(context.Background(), bson.M{"_id": plan.Id}, &plan); err != nil {
		return nil, err
	}

	return &plan, nil
}

func slotEntry(comidas *models.DayMeals, slot string) *models.MealEntry {
	switch slot {
	case "desayuno":
		return comidas.Desayuno
	case "almuerzo":
		return comidas.Almuerzo
	case "sopa":
		return comidas.Comida.Sopa
	case "principal":
		return comidas.Comida.Principal
	case "guarnicion":
		return comidas.Comida.Guarnicion
	case "cena":
		return comidas.Cena
	}
	return nil
}

func refreshDayCompletion(dia *models.PlanDay) {
	entries := dia.Comidas.Entries()
	if len(entries) == 0 {
		return
	}

	prepared := 0
	for _, entry := range entries {
		if entry.Preparado {
			prepared++
		}
	}

	dia.PorcentajeCompletado = float64(prepared) / float64(len(entries)) * 100
	dia.Completado = prepared == len(entries)
}
