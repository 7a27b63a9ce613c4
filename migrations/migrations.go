package migrations

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type migration struct {
	name string
	run  func(context.Context, *mongo.Database) error
}

var all = []migration{
	{"001_add_username_index", AddUsernameIndex},
	{"002_backfill_doctor_schedule", BackfillDoctorSchedule},
	{"003_add_appointment_created_index", AddAppointmentCreatedAtIndex},
}

// Run applies every migration in order. All of them are safe to re-run.
func Run(ctx context.Context, database *mongo.Database) error {
	for _, m := range all {
		if err := m.run(ctx, database); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
	}
	return nil
}
