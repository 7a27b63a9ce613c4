package controllers

import (
	"context"

	"ClinicDesk/models"
	"ClinicDesk/services"
	"ClinicDesk/wizard"
)

type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Authenticate(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	ChangeOwnPassword(ctx context.Context, req models.ChangePasswordRequest) error
	AdminResetPassword(ctx context.Context, targetID, newPassword string) error
	ListAccounts(ctx context.Context) ([]models.AccountSummary, error)
	SyncDoctorAccounts(ctx context.Context) (int, error)
}

type DoctorService interface {
	Create(ctx context.Context, req models.CreateDoctorRequest) (services.ProvisionResult, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Get(ctx context.Context, id string) (models.Doctor, error)
	UpdateSchedule(ctx context.Context, id string, update models.ScheduleUpdate) (models.Doctor, error)
	Delete(ctx context.Context, id string) error
}

type AppointmentService interface {
	Submit(ctx context.Context, req models.SubmitAppointmentRequest) (models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
}

type WizardService interface {
	Start(ctx context.Context) (wizard.Session, wizard.View, error)
	View(ctx context.Context, id string) (wizard.View, error)
	SubmitIntake(ctx context.Context, id string, p wizard.PatientDetails) (wizard.View, error)
	OpenDoctor(ctx context.Context, id, doctorID string) (wizard.View, error)
	CloseDoctor(ctx context.Context, id string) (wizard.View, error)
	ConfirmDoctor(ctx context.Context, id string) (wizard.View, error)
	PickDate(ctx context.Context, id, date string) (wizard.View, error)
	PickSlot(ctx context.Context, id, slot string) (wizard.View, error)
	ConfirmSlot(ctx context.Context, id string) (wizard.View, error)
	Pay(ctx context.Context, id string) (wizard.View, error)
}
