package factory

import (
	"github.com/tmc-recipes/meals-backend/internal/infra/db/mongodb/client_repository"
	controllers "github.com/tmc-recipes/meals-backend/internal/presentation/controllers/client"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateClientController(db *mongo.Database) *controllers.CreateClientController {
	createClient := client_repository.NewCreateClientRepository(db)
	return controllers.NewCreateClientController(createClient)
}

func MakeGetClientsController(db *mongo.Database) *controllers.GetClientsController {
	findClients := client_repository.NewFindClientsRepository(db)
	return controllers.NewGetClientsController(findClients)
}

func MakeGetClientByIdController(db *mongo.Database) *controllers.GetClientByIdController {
	findClientById := client_repository.NewFindClientByIdRepository(db)
	return controllers.NewGetClientByIdController(findClientById)
}

func MakeUpdateClientController(db *mongo.Database) *controllers.UpdateClientController {
	updateClient := client_repository.NewUpdateClientRepository(db)
	findClientById := client_repository.NewFindClientByIdRepository(db)
	return controllers.NewUpdateClientController(updateClient, findClientById)
}

func MakeDeleteClientController(db *mongo.Database) *controllers.DeleteClientController {
	deleteClient := client_repository.NewDeleteClientRepository(db)
	return controllers.NewDeleteClientController(deleteClient)
}
