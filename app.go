package main

import (
	"time"

	"ClinicDesk/config"
	"ClinicDesk/config/db"
	"ClinicDesk/config/jwt"
	"ClinicDesk/config/redis"
	"ClinicDesk/controllers"
	"ClinicDesk/metrics"
	"ClinicDesk/repositories"
	"ClinicDesk/routes"
	"ClinicDesk/services"
	"ClinicDesk/util"
)

const doctorCacheTTL = 5 * time.Minute

// application holds the services shared by the routes and the jobs.
type application struct {
	issuer       *jwt.Issuer
	metrics      *metrics.Metrics
	accounts     *services.AccountService
	doctors      *services.DoctorService
	appointments *services.AppointmentService
	wizard       *services.WizardService
}

/*
* Build stores on the open connections and the services on the stores
* Wizard sessions fall back to process memory when redis is not connected
 */
func newApplication(cfg config.Config) *application {
	m := metrics.New(nil)
	issuer := jwt.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	accountStore := repositories.NewAccountStore(db.OpenCollections(util.AccountCollection))
	doctorStore := repositories.NewDoctorStore(db.OpenCollections(util.DoctorCollection))
	appointmentStore := repositories.NewAppointmentStore(db.OpenCollections(util.AppointmentCollection))

	var sessions services.SessionStore = repositories.NewMemorySessionStore(cfg.WizardSessionTTL)
	if redis.Rdb != nil {
		sessions = repositories.NewRedisSessionStore(redis.Rdb, cfg.WizardSessionTTL, cfg.PaymentDelay)
	}

	accounts := services.NewAccountService(accountStore, doctorStore, issuer, m)
	doctors := services.NewDoctorService(doctorStore, accounts, redis.NewCache(redis.Rdb, doctorCacheTTL), m)
	appointments := services.NewAppointmentService(appointmentStore, m)

	return &application{
		issuer:       issuer,
		metrics:      m,
		accounts:     accounts,
		doctors:      doctors,
		appointments: appointments,
		wizard:       services.NewWizardService(sessions, doctors, appointments, cfg.PaymentDelay, m),
	}
}

func (a *application) handlers() routes.Handlers {
	return routes.Handlers{
		Issuer:       a.issuer,
		Metrics:      a.metrics,
		Auth:         controllers.NewAuthController(a.accounts),
		Doctors:      controllers.NewDoctorController(a.doctors),
		Appointments: controllers.NewAppointmentController(a.appointments),
		Wizard:       controllers.NewWizardController(a.wizard),
	}
}
