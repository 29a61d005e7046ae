package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionOrders   = "orders"
	CollectionAdmins   = "admins"
	CollectionSettings = "settings"
	CollectionCounters = "counters"
)

// ErrNotFound is returned by the repositories when no document matches.
var ErrNotFound = errors.New("document not found")

var DB *mongo.Database

// Connect dials uri and pings the primary before returning the client.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Ping the database
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// ConnectDB connects and points DB at the named database.
func ConnectDB(uri, name string) (*mongo.Client, error) {
	client, err := Connect(context.Background(), uri)
	if err != nil {
		return nil, err
	}
	DB = client.Database(name)
	return client, nil
}
