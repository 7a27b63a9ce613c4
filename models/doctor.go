package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultDoctorImage = "images/reception.png"
	DefaultDoctorBio   = "Highly experienced specialist."
	DefaultStartTime1  = "10:00"
	DefaultEndTime1    = "13:00"
	DefaultStartTime2  = "17:00"
	DefaultEndTime2    = "21:00"
)

type Doctor struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Specialization string             `json:"specialization" bson:"specialization"`
	Qualifications string             `json:"qualifications" bson:"qualifications"`
	Experience     string             `json:"experience" bson:"experience"`
	Image          string             `json:"image" bson:"image"`
	Bio            string             `json:"bio" bson:"bio"`
	Fee            int                `json:"fee,omitempty" bson:"fee,omitempty"`
	IsAvailable    bool               `json:"isAvailable" bson:"isAvailable"`
	StartTime1     string             `json:"startTime1" bson:"startTime1"`
	EndTime1       string             `json:"endTime1" bson:"endTime1"`
	StartTime2     string             `json:"startTime2" bson:"startTime2"`
	EndTime2       string             `json:"endTime2" bson:"endTime2"`
}

type CreateDoctorRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	Qualifications string `json:"qualifications" binding:"required"`
	Experience     string `json:"experience" binding:"required"`
	Image          string `json:"image"`
	Bio            string `json:"bio"`
	Fee            int    `json:"fee" binding:"gte=0"`
	IsAvailable    *bool  `json:"isAvailable"`
	StartTime1     string `json:"startTime1"`
	EndTime1       string `json:"endTime1"`
	StartTime2     string `json:"startTime2"`
	EndTime2       string `json:"endTime2"`
}

/*
* Build the profile document from the request
* Absent optional fields take the directory defaults
 */
func (r CreateDoctorRequest) Doctor() Doctor {
	d := Doctor{
		Name:           strings.TrimSpace(r.Name),
		Specialization: r.Specialization,
		Qualifications: r.Qualifications,
		Experience:     r.Experience,
		Image:          orDefault(r.Image, DefaultDoctorImage),
		Bio:            orDefault(r.Bio, DefaultDoctorBio),
		Fee:            r.Fee,
		IsAvailable:    true,
		StartTime1:     orDefault(r.StartTime1, DefaultStartTime1),
		EndTime1:       orDefault(r.EndTime1, DefaultEndTime1),
		StartTime2:     orDefault(r.StartTime2, DefaultStartTime2),
		EndTime2:       orDefault(r.EndTime2, DefaultEndTime2),
	}
	if r.IsAvailable != nil {
		d.IsAvailable = *r.IsAvailable
	}
	return d
}

// ScheduleUpdate carries the only fields a schedule change may touch; nil means unchanged.
type ScheduleUpdate struct {
	IsAvailable *bool   `json:"isAvailable"`
	StartTime1  *string `json:"startTime1"`
	EndTime1    *string `json:"endTime1"`
	StartTime2  *string `json:"startTime2"`
	EndTime2    *string `json:"endTime2"`
}

// Fields returns the bson field set for $set.
func (u ScheduleUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.IsAvailable != nil {
		fields["isAvailable"] = *u.IsAvailable
	}
	if u.StartTime1 != nil {
		fields["startTime1"] = *u.StartTime1
	}
	if u.EndTime1 != nil {
		fields["endTime1"] = *u.EndTime1
	}
	if u.StartTime2 != nil {
		fields["startTime2"] = *u.StartTime2
	}
	if u.EndTime2 != nil {
		fields["endTime2"] = *u.EndTime2
	}
	return fields
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
