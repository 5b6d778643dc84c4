package migrations

import (
	"context"
	"log"
	"time"

	"snapill/config/db"
	"snapill/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Ensure the indexes every query path depends on
* Unique email on USERS, and userId on every owner-scoped collection
* Index creation is idempotent, so this runs on every start
 */
func CreateIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userIndexes := db.OpenCollections(util.UserCollection).Indexes()
	_, err := userIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Println("Error creating email index:", err)
	}

	ownerScoped := []string{
		util.MedicationCollection,
		util.NotificationCollection,
		util.IntakeCollection,
	}
	for _, name := range ownerScoped {
		indexes := db.OpenCollections(name).Indexes()
		_, err := indexes.CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}},
		})
		if err != nil {
			log.Println("Error creating userId index on", name, ":", err)
		}
	}
}
