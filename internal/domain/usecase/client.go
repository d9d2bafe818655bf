package usecase

import (
	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateClientRepository interface {
	Create(client *models.Client) (*models.Client, error)
}

type FindClientsInputRepository struct {
	Search string
	Limit  int
	Offset int
}

type FindClientsRepository interface {
	Find(data *FindClientsInputRepository) ([]models.Client, error)
}

type FindClientByIdRepository interface {
	Find(clientId primitive.ObjectID) (*models.Client, error)
}

type UpdateClientRepository interface {
	Update(clientId primitive.ObjectID, client *models.Client) (*models.Client, error)
}

type DeleteClientRepository interface {
	Delete(clientId primitive.ObjectID) error
}
