package routes

import (
	"net/http"

	"ClinicDesk/config/authorization"
	"ClinicDesk/config/jwt"
	"ClinicDesk/controllers"
	"ClinicDesk/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Issuer       *jwt.Issuer
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	Auth         *controllers.AuthController
	Doctors      *controllers.DoctorController
	Appointments *controllers.AppointmentController
	Wizard       *controllers.WizardController
}

func Routes(r *gin.Engine, h Handlers) {
	r.Use(h.Metrics.Middleware())

	gatherer := h.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	//public routes register without auth, private ones take it per route
	api := r.Group("/api")
	auth := authorization.JWTAuth(h.Issuer)
	h.Auth.Routes(api, auth)
	h.Doctors.Routes(api, auth)
	h.Appointments.Routes(api, auth)
	h.Wizard.Routes(api)
}
