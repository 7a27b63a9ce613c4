package services

import (
	"context"
	"errors"
	"time"

	"ClinicDesk/metrics"
	"ClinicDesk/models"
	"ClinicDesk/util"
	"ClinicDesk/wizard"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type DoctorFinder interface {
	Get(ctx context.Context, id string) (models.Doctor, error)
}

type BookingSubmitter interface {
	Submit(ctx context.Context, req models.SubmitAppointmentRequest) (models.Appointment, error)
}

// WizardService runs wizard transitions against stored sessions.
type WizardService struct {
	sessions SessionStore
	doctors  DoctorFinder
	bookings BookingSubmitter
	metrics  *metrics.Metrics
	delay    time.Duration
	sleep    func(time.Duration)
	newID    func() string
	newTxnID func() string
}

func NewWizardService(sessions SessionStore, doctors DoctorFinder, bookings BookingSubmitter, paymentDelay time.Duration, m *metrics.Metrics) *WizardService {
	return &WizardService{
		sessions: sessions,
		doctors:  doctors,
		bookings: bookings,
		metrics:  m,
		delay:    paymentDelay,
		sleep:    time.Sleep,
		newID:    uuid.NewString,
		newTxnID: wizard.NewTransactionID,
	}
}

type transition func(wizard.Session) (wizard.Session, wizard.View, error)

func (s *WizardService) Start(ctx context.Context) (wizard.Session, wizard.View, error) {
	session := wizard.New(s.newID())
	if err := s.sessions.Save(ctx, session); err != nil {
		log.Error().Err(err).Msg("Error from session Save")
		return wizard.Session{}, wizard.View{}, err
	}
	s.metrics.ObserveWizardStep(string(session.Step))
	return session, wizard.Render(session), nil
}

func (s *WizardService) View(ctx context.Context, id string) (wizard.View, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return wizard.View{}, err
	}
	return wizard.Render(session), nil
}

/*
* Load the session, run the transition and store the result
* Incomplete input is not an error for the caller: the unchanged view is returned
 */
func (s *WizardService) apply(ctx context.Context, id string, fn transition) (wizard.View, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return wizard.View{}, err
	}
	next, view, err := fn(session)
	if errors.Is(err, wizard.ErrIncomplete) {
		return view, nil
	}
	if err != nil {
		return view, err
	}
	if err := s.sessions.Save(ctx, next); err != nil {
		log.Error().Err(err).Msg("Error from session Save")
		return wizard.View{}, err
	}
	if next.Step != session.Step {
		s.metrics.ObserveWizardStep(string(next.Step))
	}
	return view, nil
}

func (s *WizardService) SubmitIntake(ctx context.Context, id string, p wizard.PatientDetails) (wizard.View, error) {
	return s.apply(ctx, id, func(session wizard.Session) (wizard.Session, wizard.View, error) {
		return wizard.SubmitIntake(session, p)
	})
}

// OpenDoctor snapshots the directory entry into the overlay.
func (s *WizardService) OpenDoctor(ctx context.Context, id, doctorID string) (wizard.View, error) {
	doctor, err := s.doctors.Get(ctx, doctorID)
	if err != nil {
		return wizard.View{}, err
	}
	snapshot := SnapshotOf(doctor)
	return s.apply(ctx, id, func(session wizard.Session) (wizard.Session, wizard.View, error) {
		return wizard.OpenDoctorDetails(session, snapshot)
	})
}

func (s *WizardService) CloseDoctor(ctx context.Context, id string) (wizard.View, error) {
	return s.apply(ctx, id, wizard.CloseDoctorDetails)
}

func (s *WizardService) ConfirmDoctor(ctx context.Context, id string) (wizard.View, error) {
	return s.apply(ctx, id, wizard.ConfirmDoctor)
}

func (s *WizardService) PickDate(ctx context.Context, id, date string) (wizard.View, error) {
	return s.apply(ctx, id, func(session wizard.Session) (wizard.Session, wizard.View, error) {
		return wizard.PickDate(session, date)
	})
}

func (s *WizardService) PickSlot(ctx context.Context, id, slot string) (wizard.View, error) {
	return s.apply(ctx, id, func(session wizard.Session) (wizard.Session, wizard.View, error) {
		return wizard.PickSlot(session, slot)
	})
}

func (s *WizardService) ConfirmSlot(ctx context.Context, id string) (wizard.View, error) {
	return s.apply(ctx, id, wizard.ConfirmSlot)
}

/*
* Take the pay lock so a double submit cannot run twice
* Mark the session processing, wait the fixed delay, then store the booking
* and confirm with a generated transaction id
* If the booking cannot be stored the session goes back to the summary
 */
func (s *WizardService) Pay(ctx context.Context, id string) (wizard.View, error) {
	ok, err := s.sessions.Lock(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("Error from session Lock")
		return wizard.View{}, err
	}
	if !ok {
		return wizard.View{}, util.ErrPaymentInProgress
	}
	// The simulation is not cancellable once started.
	ctx = context.WithoutCancel(ctx)
	defer func() {
		if err := s.sessions.Unlock(ctx, id); err != nil {
			log.Warn().Err(err).Msg("Error from session Unlock")
		}
	}()

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return wizard.View{}, err
	}
	session, view, err := wizard.Pay(session)
	if err != nil {
		return view, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return wizard.View{}, err
	}
	s.metrics.ObserveWizardStep(string(session.Step))

	s.sleep(s.delay)

	txnID := s.newTxnID()
	if _, err := s.bookings.Submit(ctx, BookingRequest(wizard.BookingFor(session, txnID))); err != nil {
		log.Error().Err(err).Str("session", id).Msg("Error from booking Submit after payment")
		failed, _, ferr := wizard.FailPayment(session)
		if ferr == nil {
			if serr := s.sessions.Save(ctx, failed); serr != nil {
				log.Error().Err(serr).Msg("Error from session Save")
			}
		}
		return wizard.Render(failed), err
	}

	session, view, err = wizard.CompletePayment(session, txnID)
	if err != nil {
		return view, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return wizard.View{}, err
	}
	s.metrics.ObserveWizardStep(string(session.Step))
	return view, nil
}

func SnapshotOf(d models.Doctor) wizard.DoctorSnapshot {
	return wizard.DoctorSnapshot{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Specialization: d.Specialization,
		Qualification:  d.Qualifications,
		Description:    d.Bio,
		Image:          d.Image,
		Fee:            d.Fee,
	}
}

// BookingRequest turns a paid wizard booking into an intake submission.
func BookingRequest(b wizard.Booking) models.SubmitAppointmentRequest {
	age := b.Age
	return models.SubmitAppointmentRequest{
		PatientName:   b.PatientName,
		Phone:         b.Phone,
		Age:           &age,
		Doctor:        b.Doctor,
		Date:          b.Date,
		TimeSlot:      b.TimeSlot,
		Fee:           b.Fee,
		PaymentStatus: util.PAYMENT_STATUS_PAID,
		Type:          util.APPOINTMENT_TYPE_ONLINE,
		TransactionID: b.TransactionID,
		Symptoms:      b.Symptoms,
	}
}
