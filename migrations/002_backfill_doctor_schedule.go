package migrations

import (
	"context"
	"fmt"

	"ClinicDesk/models"
	"ClinicDesk/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* Doctors written before the schedule fields existed get the defaults
* Only documents missing a field are touched
 */
func BackfillDoctorSchedule(ctx context.Context, database *mongo.Database) error {
	coll := database.Collection(util.DoctorCollection)
	defaults := bson.D{
		{Key: "isAvailable", Value: true},
		{Key: "startTime1", Value: models.DefaultStartTime1},
		{Key: "endTime1", Value: models.DefaultEndTime1},
		{Key: "startTime2", Value: models.DefaultStartTime2},
		{Key: "endTime2", Value: models.DefaultEndTime2},
	}
	for _, field := range defaults {
		result, err := coll.UpdateMany(ctx,
			bson.M{field.Key: bson.M{"$exists": false}},
			bson.M{"$set": bson.M{field.Key: field.Value}},
		)
		if err != nil {
			return fmt.Errorf("backfill %s: %w", field.Key, err)
		}
		log.Info().Str("field", field.Key).Int64("modified", result.ModifiedCount).Msg("Migration applied")
	}
	return nil
}
