package models

import (
	"time"

	"ClinicDesk/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientName   string             `json:"patientName" bson:"patientName"`
	Phone         string             `json:"phone" bson:"phone"`
	Age           int                `json:"age" bson:"age"`
	Doctor        string             `json:"doctor" bson:"doctor"`
	Date          string             `json:"date" bson:"date"`
	TimeSlot      string             `json:"timeSlot" bson:"timeSlot"`
	Fee           string             `json:"fee" bson:"fee"`
	PaymentStatus string             `json:"paymentStatus" bson:"paymentStatus"`
	Type          string             `json:"type" bson:"type"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Symptoms      string             `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
	Medications   string             `json:"medications,omitempty" bson:"medications,omitempty"`
	History       string             `json:"history,omitempty" bson:"history,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

type SubmitAppointmentRequest struct {
	PatientName   string `json:"patientName" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Age           *int   `json:"age" binding:"required,gte=0"`
	Doctor        string `json:"doctor" binding:"required"`
	Date          string `json:"date" binding:"required"`
	TimeSlot      string `json:"timeSlot" binding:"required"`
	Fee           string `json:"fee"`
	PaymentStatus string `json:"paymentStatus"`
	Type          string `json:"type"`
	TransactionID string `json:"transactionId"`
	Symptoms      string `json:"symptoms"`
	Medications   string `json:"medications"`
	History       string `json:"history"`
}

/*
* Build the booking as given
* Only the schema defaults are applied (fee, payment status, channel)
 */
func (r SubmitAppointmentRequest) Appointment() Appointment {
	a := Appointment{
		PatientName:   r.PatientName,
		Phone:         r.Phone,
		Doctor:        r.Doctor,
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		Fee:           orDefault(r.Fee, util.DEFAULT_FEE),
		PaymentStatus: orDefault(r.PaymentStatus, util.PAYMENT_STATUS_PENDING),
		Type:          orDefault(r.Type, util.APPOINTMENT_TYPE_ONLINE),
		TransactionID: r.TransactionID,
		Symptoms:      r.Symptoms,
		Medications:   r.Medications,
		History:       r.History,
	}
	if r.Age != nil {
		a.Age = *r.Age
	}
	return a
}
