package repositories

import (
	"context"

	"ClinicDesk/config/db"
	"ClinicDesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentStore struct {
	coll *mongo.Collection
}

func NewAppointmentStore(coll *mongo.Collection) *AppointmentStore {
	return &AppointmentStore{coll: coll}
}

func (s *AppointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	res, err := db.CreateOne(ctx, s.coll, appointment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		appointment.ID = oid
	}
	return nil
}

// List returns every booking in natural storage order.
func (s *AppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	if err := db.FindAll(ctx, s.coll, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
