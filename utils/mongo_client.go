package utils

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the shared MongoDB client used by the API server.
var MongoClient *mongo.Client

// MongoURI resolves the connection string. Older deployments used
// MONGODB_URI, newer ones MONGO_URL; both are accepted.
func MongoURI() string {
	if uri := os.Getenv("MONGO_URL"); uri != "" {
		return uri
	}
	return os.Getenv("MONGODB_URI")
}

// ConnectMongo opens a client and verifies the connection with a ping.
// Scripts use this directly so they can own the client lifecycle.
func ConnectMongo(ctx context.Context) (*mongo.Client, error) {
	uri := MongoURI()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// InitMongoClient initializes the shared client from the environment.
func InitMongoClient() {
	if MongoURI() == "" {
		log.Fatal("MONGO_URL is not set")
	}

	client, err := ConnectMongo(context.Background())
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	MongoClient = client
}
