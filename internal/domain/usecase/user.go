package usecase

import (
	"github.com/tmc-recipes/meals-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRepository interface {
	Create(user *models.User) (*models.User, error)
}

type FindUserByEmailRepository interface {
	FindByEmail(email string) (*models.User, error)
}

type FindUserByIdRepository interface {
	Find(userId primitive.ObjectID) (*models.User, error)
}

type UpdateUserLastLoginRepository interface {
	TouchLastLogin(userId primitive.ObjectID) error
}
