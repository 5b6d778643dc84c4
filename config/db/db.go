package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

/*
* Connect to MongoDB using MONGO_URI and MONGO_DB from the environment
* Ping once with a timeout so a dead database fails fast at startup
 */
func Connect() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "snapill"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := c.Ping(ctx, nil); err != nil {
		return err
	}

	client = c
	database = c.Database(dbName)
	log.Println("Connected to MongoDB database:", dbName)
	return nil
}

func Database() *mongo.Database {
	return database
}

func OpenCollections(name string) *mongo.Collection {
	return database.Collection(name)
}

func FindOne(ctx context.Context, collection *mongo.Collection, filter interface{}, result interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}
	return collection.FindOne(ctx, filter).Decode(result)
}

func FindAll(ctx context.Context, collection *mongo.Collection, filter interface{}, results interface{}, opts ...*options.FindOptions) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

func CreateOne(ctx context.Context, collection *mongo.Collection, document interface{}) (*mongo.InsertOneResult, error) {
	return collection.InsertOne(ctx, document)
}

func UpdateOne(ctx context.Context, collection *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return collection.UpdateOne(ctx, filter, update)
}

func DeleteOne(ctx context.Context, collection *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	return collection.DeleteOne(ctx, filter)
}
