package helpers

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Ctx = context.TODO()

// MongoHelper connects to the recipes database and fails fast when the server
// is unreachable, since every endpoint depends on it.
func MongoHelper(URI string, databaseName string) *mongo.Database {
	connectCtx, cancel := context.WithTimeout(Ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(URI)
	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		log.Fatal("error connecting to MongoDB:", err)
	}

	if err = client.Ping(connectCtx, nil); err != nil {
		log.Fatal("MongoDB unreachable:", err)
	}

	log.Println("MongoDB connection established with database", databaseName)

	return client.Database(databaseName)
}
