package factory

import (
	"github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/tmc-recipes/meals-backend/internal/presentation/controllers/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeRegisterController(db *mongo.Database) *controllers.RegisterController {
	createUser := user_repository.NewCreateUserRepository(db)
	findUser := user_repository.NewFindUserRepository(db)
	return controllers.NewRegisterController(createUser, findUser)
}

func MakeLoginController(db *mongo.Database) *controllers.LoginController {
	findUser := user_repository.NewFindUserRepository(db)
	return controllers.NewLoginController(findUser, findUser)
}

func MakeVerifyController(db *mongo.Database) *controllers.VerifyController {
	findUser := user_repository.NewFindUserRepository(db)
	return controllers.NewVerifyController(findUser)
}
