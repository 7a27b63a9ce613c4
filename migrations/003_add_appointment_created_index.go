package migrations

import (
	"context"

	"ClinicDesk/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func AddAppointmentCreatedAtIndex(ctx context.Context, database *mongo.Database) error {
	name, err := database.Collection(util.AppointmentCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	})
	if err != nil {
		return err
	}
	log.Info().Str("index", name).Msg("Migration applied")
	return nil
}
