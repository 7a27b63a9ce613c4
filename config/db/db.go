package db

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// ErrNoDocument is returned by FindOne when the filter matches nothing.
var ErrNoDocument = errors.New("no document found")

/*
* Connect to mongo and ping it
* Sets the package Client and DB
 */
func Connect(ctx context.Context, uri, database string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}
	Client = client
	DB = client.Database(database)
	log.Info().Str("database", database).Msg("MongoDB Connected Successfully")
	return nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

func OpenCollections(name string) *mongo.Collection {
	return DB.Collection(name)
}

func FindOne(ctx context.Context, collection *mongo.Collection, filter interface{}, result interface{}, opts ...*options.FindOneOptions) error {
	err := collection.FindOne(ctx, filter, opts...).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocument
	}
	return err
}

/*
* Decode every match into results, which must be a pointer to a slice
* A nil filter matches all documents
 */
func FindAll(ctx context.Context, collection *mongo.Collection, filter interface{}, results interface{}, opts ...*options.FindOptions) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
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
