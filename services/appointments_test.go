package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ClinicDesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_RequiredFieldsOnlyGetsDefaults(t *testing.T) {
	store := &fakeAppointments{}
	svc := NewAppointmentService(store, nil)
	fixed := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	age := 29
	saved, err := svc.Submit(context.Background(), models.SubmitAppointmentRequest{
		PatientName: "Asha",
		Phone:       "9800000000",
		Age:         &age,
		Doctor:      "Dr. Nobody",
		Date:        "2026-10-20",
		TimeSlot:    "10:00 AM",
	})
	require.NoError(t, err)

	assert.False(t, saved.ID.IsZero())
	assert.Equal(t, "₹500", saved.Fee)
	assert.Equal(t, "Pending", saved.PaymentStatus)
	assert.Equal(t, "Online", saved.Type)
	assert.Equal(t, fixed, saved.CreatedAt)
	assert.Equal(t, "Dr. Nobody", saved.Doctor, "doctor is free text")
}

func TestSubmit_NoSlotConflictCheck(t *testing.T) {
	store := &fakeAppointments{}
	svc := NewAppointmentService(store, nil)
	age := 40
	req := models.SubmitAppointmentRequest{PatientName: "A", Phone: "1", Age: &age, Doctor: "Dr. X", Date: "2026-10-20", TimeSlot: "10:00 AM"}

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), req)
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubmit_StoreError(t *testing.T) {
	store := &fakeAppointments{createErr: errors.New("write failed")}
	svc := NewAppointmentService(store, nil)
	age := 1
	_, err := svc.Submit(context.Background(), models.SubmitAppointmentRequest{Age: &age})
	assert.Error(t, err)
}
