package migrations

import (
	"context"

	"ClinicDesk/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddUsernameIndex makes the login name unique at the store.
func AddUsernameIndex(ctx context.Context, database *mongo.Database) error {
	name, err := database.Collection(util.AccountCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return err
	}
	log.Info().Str("index", name).Msg("Migration applied")
	return nil
}
