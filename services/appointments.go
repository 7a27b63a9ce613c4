package services

import (
	"context"
	"time"

	"ClinicDesk/metrics"
	"ClinicDesk/models"

	"github.com/rs/zerolog/log"
)

type AppointmentService struct {
	appointments AppointmentRepository
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewAppointmentService(appointments AppointmentRepository, m *metrics.Metrics) *AppointmentService {
	return &AppointmentService{appointments: appointments, metrics: m, now: time.Now}
}

/*
* Persist the booking as given with the schema defaults
* The doctor is free text and the slot is not checked against other bookings
 */
func (s *AppointmentService) Submit(ctx context.Context, req models.SubmitAppointmentRequest) (models.Appointment, error) {
	appointment := req.Appointment()
	appointment.CreatedAt = s.now().UTC()

	if err := s.appointments.Create(ctx, &appointment); err != nil {
		log.Error().Err(err).Msg("Save Error")
		return models.Appointment{}, err
	}
	s.metrics.ObserveAppointment(appointment.Type)
	log.Info().Str("id", appointment.ID.Hex()).Str("transactionId", appointment.TransactionID).Msg("Appointment Saved")
	return appointment, nil
}

func (s *AppointmentService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from appointment List")
		return nil, err
	}
	return appointments, nil
}
