package services

import (
	"context"

	"ClinicDesk/models"
	"ClinicDesk/role"
	"ClinicDesk/wizard"
)

type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	FindByID(ctx context.Context, id string) (models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	UpdatePassword(ctx context.Context, id string, hash string) (bool, error)
	List(ctx context.Context) ([]models.AccountSummary, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	List(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, id string) (models.Doctor, error)
	UpdateSchedule(ctx context.Context, id string, fields map[string]interface{}) (models.Doctor, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	List(ctx context.Context) ([]models.Appointment, error)
}

type TokenIssuer interface {
	GenerateJWT(id, username string, r role.Role) (string, error)
}

type Cache interface {
	SetCache(ctx context.Context, key string, value interface{}) error
	GetCache(ctx context.Context, key string, dest interface{}) (bool, error)
	DeleteCache(ctx context.Context, key string) error
}

type SessionStore interface {
	Get(ctx context.Context, id string) (wizard.Session, error)
	Save(ctx context.Context, s wizard.Session) error
	// Lock takes the per-session payment lock; false means someone else holds it.
	Lock(ctx context.Context, id string) (bool, error)
	Unlock(ctx context.Context, id string) error
}
