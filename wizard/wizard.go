// Package wizard is the patient booking flow as a value-typed state machine.
//
// Every transition takes the current Session and returns the next one plus the
// View the patient should see. Sessions are never mutated in place, so a
// failed transition always leaves the caller holding the previous state.
package wizard

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"ClinicDesk/util"

	"github.com/go-playground/validator/v10"
)

type Step string

const (
	StepIntake            Step = "intake"
	StepDoctorSelection   Step = "doctor-selection"
	StepSlotSelection     Step = "slot-selection"
	StepSummary           Step = "summary"
	StepPaymentSimulation Step = "payment-simulation"
	StepConfirmation      Step = "confirmation"
)

// Order is the only order steps are visited in.
var Order = []Step{StepIntake, StepDoctorSelection, StepSlotSelection, StepSummary, StepPaymentSimulation, StepConfirmation}

// Slots is the fixed list offered for any doctor on any date.
var Slots = []string{"10:00 AM", "10:30 AM", "11:00 AM", "12:00 PM", "04:00 PM", "04:30 PM", "05:00 PM"}

const DefaultFee = 200

var (
	// ErrWrongStep is returned when a transition is requested from a step it does not leave.
	ErrWrongStep = fmt.Errorf("%w: action not available at this step", util.ErrValidation)
	// ErrIncomplete means the input was not enough to advance; the session is unchanged.
	ErrIncomplete        = errors.New("step incomplete")
	ErrPaymentInProgress = util.ErrPaymentInProgress
)

var validate = validator.New()

type PatientDetails struct {
	Name     string `json:"name" validate:"required"`
	Age      *int   `json:"age" validate:"required,gte=0"`
	Contact  string `json:"contact" validate:"required"`
	Symptoms string `json:"symptoms"`
}

// DoctorSnapshot is a copy of the doctor's display fields taken at selection time.
type DoctorSnapshot struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Qualification  string `json:"qualification"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	Fee            int    `json:"fee,omitempty"`
}

type Session struct {
	ID            string          `json:"id"`
	Step          Step            `json:"step"`
	Patient       PatientDetails  `json:"patientDetails"`
	Overlay       *DoctorSnapshot `json:"overlay,omitempty"`
	Doctor        *DoctorSnapshot `json:"selectedDoctor,omitempty"`
	Date          string          `json:"date,omitempty"`
	TimeSlot      string          `json:"timeSlot,omitempty"`
	Fee           int             `json:"fee"`
	Processing    bool            `json:"processing"`
	TransactionID string          `json:"transactionId,omitempty"`
}

func New(id string) Session {
	return Session{ID: id, Step: StepIntake, Fee: DefaultFee}
}

func SubmitIntake(s Session, p PatientDetails) (Session, View, error) {
	if s.Step != StepIntake {
		return s, Render(s), ErrWrongStep
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Contact = strings.TrimSpace(p.Contact)
	if err := validate.Struct(p); err != nil {
		return s, Render(s), ErrIncomplete
	}
	s.Patient = p
	s.Step = StepDoctorSelection
	return s, Render(s), nil
}

// OpenDoctorDetails shows the detail overlay for one doctor; opening another replaces it.
func OpenDoctorDetails(s Session, d DoctorSnapshot) (Session, View, error) {
	if s.Step != StepDoctorSelection {
		return s, Render(s), ErrWrongStep
	}
	s.Overlay = &d
	return s, Render(s), nil
}

func CloseDoctorDetails(s Session) (Session, View, error) {
	if s.Step != StepDoctorSelection {
		return s, Render(s), ErrWrongStep
	}
	s.Overlay = nil
	return s, Render(s), nil
}

func ConfirmDoctor(s Session) (Session, View, error) {
	if s.Step != StepDoctorSelection {
		return s, Render(s), ErrWrongStep
	}
	if s.Overlay == nil {
		return s, Render(s), ErrIncomplete
	}
	chosen := *s.Overlay
	s.Doctor = &chosen
	s.Overlay = nil
	if chosen.Fee > 0 {
		s.Fee = chosen.Fee
	}
	s.Step = StepSlotSelection
	return s, Render(s), nil
}

// PickDate loads the slot list for a date. Moving to another date drops the chosen slot.
func PickDate(s Session, date string) (Session, View, error) {
	if s.Step != StepSlotSelection {
		return s, Render(s), ErrWrongStep
	}
	date = strings.TrimSpace(date)
	if date == "" {
		return s, Render(s), ErrIncomplete
	}
	if date != s.Date {
		s.TimeSlot = ""
	}
	s.Date = date
	return s, Render(s), nil
}

// PickSlot selects one slot; the last pick wins.
func PickSlot(s Session, slot string) (Session, View, error) {
	if s.Step != StepSlotSelection {
		return s, Render(s), ErrWrongStep
	}
	if s.Date == "" || !isSlot(slot) {
		return s, Render(s), ErrIncomplete
	}
	s.TimeSlot = slot
	return s, Render(s), nil
}

func ConfirmSlot(s Session) (Session, View, error) {
	if s.Step != StepSlotSelection {
		return s, Render(s), ErrWrongStep
	}
	if s.Date == "" || s.TimeSlot == "" {
		return s, Render(s), ErrIncomplete
	}
	s.Step = StepSummary
	return s, Render(s), nil
}

// Pay starts the payment simulation and disables the pay control.
func Pay(s Session) (Session, View, error) {
	if s.Step == StepPaymentSimulation {
		return s, Render(s), ErrPaymentInProgress
	}
	if s.Step != StepSummary {
		return s, Render(s), ErrWrongStep
	}
	s.Processing = true
	s.Step = StepPaymentSimulation
	return s, Render(s), nil
}

func CompletePayment(s Session, transactionID string) (Session, View, error) {
	if s.Step != StepPaymentSimulation {
		return s, Render(s), ErrWrongStep
	}
	if transactionID == "" {
		return s, Render(s), ErrIncomplete
	}
	s.TransactionID = transactionID
	s.Processing = false
	s.Step = StepConfirmation
	return s, Render(s), nil
}

// FailPayment puts a session whose booking could not be stored back on the summary.
func FailPayment(s Session) (Session, View, error) {
	if s.Step != StepPaymentSimulation {
		return s, Render(s), ErrWrongStep
	}
	s.Processing = false
	s.Step = StepSummary
	return s, Render(s), nil
}

// Booking is what a paid session asks the appointment intake to store.
type Booking struct {
	PatientName   string
	Phone         string
	Age           int
	Doctor        string
	Date          string
	TimeSlot      string
	Fee           string
	TransactionID string
	Symptoms      string
}

func BookingFor(s Session, transactionID string) Booking {
	b := Booking{
		PatientName:   s.Patient.Name,
		Phone:         s.Patient.Contact,
		Date:          s.Date,
		TimeSlot:      s.TimeSlot,
		Fee:           FormatFee(s.Fee),
		TransactionID: transactionID,
		Symptoms:      s.Patient.Symptoms,
	}
	if s.Patient.Age != nil {
		b.Age = *s.Patient.Age
	}
	if s.Doctor != nil {
		b.Doctor = s.Doctor.Name
	}
	return b
}

func FormatFee(fee int) string {
	return "₹" + strconv.Itoa(fee)
}

func NewTransactionID() string {
	return "TXN" + strconv.Itoa(rand.IntN(10000000))
}

func isSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}
