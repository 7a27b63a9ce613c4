package repositories

import (
	"context"
	"errors"

	"ClinicDesk/config/db"
	"ClinicDesk/models"
	"ClinicDesk/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorStore struct {
	coll *mongo.Collection
}

func NewDoctorStore(coll *mongo.Collection) *DoctorStore {
	return &DoctorStore{coll: coll}
}

func (s *DoctorStore) Create(ctx context.Context, doctor *models.Doctor) error {
	res, err := db.CreateOne(ctx, s.coll, doctor)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doctor.ID = oid
	}
	return nil
}

func (s *DoctorStore) List(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	if err := db.FindAll(ctx, s.coll, nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *DoctorStore) FindByID(ctx context.Context, id string) (models.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Doctor{}, util.ErrDoctorNotFound
	}
	var doctor models.Doctor
	err = db.FindOne(ctx, s.coll, bson.M{"_id": oid}, &doctor)
	if errors.Is(err, db.ErrNoDocument) {
		return models.Doctor{}, util.ErrDoctorNotFound
	}
	return doctor, err
}

/*
* $set only the given schedule fields and return the document after the update
* An empty field set reads the document back unchanged
 */
func (s *DoctorStore) UpdateSchedule(ctx context.Context, id string, fields map[string]interface{}) (models.Doctor, error) {
	if len(fields) == 0 {
		return s.FindByID(ctx, id)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Doctor{}, util.ErrDoctorNotFound
	}
	var doctor models.Doctor
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Doctor{}, util.ErrDoctorNotFound
	}
	return doctor, err
}

// Delete removes the profile; a missing id is not an error.
func (s *DoctorStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = db.DeleteOne(ctx, s.coll, bson.M{"_id": oid})
	return err
}

func (s *DoctorStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}
