package controllers

import (
	"net/http"

	"ClinicDesk/config/authorization"
	"ClinicDesk/models"
	"ClinicDesk/role"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	appointments AppointmentService
}

func NewAppointmentController(appointments AppointmentService) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

func (a *AppointmentController) Routes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	api.POST("/appointments", a.Submit)
	api.GET("/appointments", auth, authorization.Authorize(role.Admin, role.Receptionist), a.List)
}

func (a *AppointmentController) Submit(c *gin.Context) {
	var req models.SubmitAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.AbortWithError(c, util.ValidationError(err), util.SAVE_APPOINTMENT_FAILED)
		return
	}
	saved, err := a.appointments.Submit(c.Request.Context(), req)
	if err != nil {
		util.AbortWithError(c, err, util.SAVE_APPOINTMENT_FAILED)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (a *AppointmentController) List(c *gin.Context) {
	appointments, err := a.appointments.ListAll(c.Request.Context())
	if err != nil {
		util.AbortWithError(c, err, util.FETCH_APPOINTMENTS_FAILED)
		return
	}
	c.JSON(http.StatusOK, appointments)
}
