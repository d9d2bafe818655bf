package migration

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCollectionArchiver copies a collection into <name>_backup_<unixts>
// before a migration run mutates anything.
type MongoCollectionArchiver struct {
	Db *mongo.Database
}

func NewMongoCollectionArchiver(db *mongo.Database) *MongoCollectionArchiver {
	return &MongoCollectionArchiver{
		Db: db,
	}
}

func (a *MongoCollectionArchiver) Archive(collection string) (string, int, error) {
	cursor, err := a.Db.Collection(collection).Find(context.Background(), bson.M{})
	if err != nil {
		return "", 0, fmt.Errorf("error al leer la colección %s: %w", collection, err)
	}
	defer cursor.Close(context.Background())

	var documents []any
	if err := cursor.All(context.Background(), &documents); err != nil {
		return "", 0, err
	}

	backupName := fmt.Sprintf("%s_backup_%d", collection, time.Now().Unix())
	if len(documents) == 0 {
		return backupName, 0, nil
	}

	if _, err := a.Db.Collection(backupName).InsertMany(context.Background(), documents); err != nil {
		return "", 0, fmt.Errorf("error al crear el respaldo %s: %w", backupName, err)
	}

	return backupName, len(documents), nil
}
