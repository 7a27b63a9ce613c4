package controllers

import (
	"errors"
	"net/http"

	"ClinicDesk/util"
	"ClinicDesk/wizard"

	"github.com/gin-gonic/gin"
)

type dateRequest struct {
	Date string `json:"date"`
}

type slotRequest struct {
	TimeSlot string `json:"timeSlot"`
}

type WizardController struct {
	wizard WizardService
}

func NewWizardController(w WizardService) *WizardController {
	return &WizardController{wizard: w}
}

// Routes registers the booking wizard. Every step is public.
func (w *WizardController) Routes(api *gin.RouterGroup) {
	sessions := api.Group("/wizard/sessions")
	sessions.POST("", w.Start)
	sessions.GET("/:id", w.View)
	sessions.POST("/:id/intake", w.SubmitIntake)
	sessions.POST("/:id/doctor/:doctorId", w.OpenDoctor)
	sessions.DELETE("/:id/doctor", w.CloseDoctor)
	sessions.POST("/:id/doctor/confirm", w.ConfirmDoctor)
	sessions.POST("/:id/date", w.PickDate)
	sessions.POST("/:id/slot", w.PickSlot)
	sessions.POST("/:id/slot/confirm", w.ConfirmSlot)
	sessions.POST("/:id/pay", w.Pay)
}

func (w *WizardController) Start(c *gin.Context) {
	session, view, err := w.wizard.Start(c.Request.Context())
	if err != nil {
		util.AbortWithError(c, err, util.WIZARD_FAILED)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": session.ID, "view": view})
}

func (w *WizardController) View(c *gin.Context) {
	view, err := w.wizard.View(c.Request.Context(), c.Param("id"))
	respondView(c, view, err)
}

func (w *WizardController) SubmitIntake(c *gin.Context) {
	var details wizard.PatientDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		util.AbortWithError(c, util.ValidationError(err), util.WIZARD_FAILED)
		return
	}
	view, err := w.wizard.SubmitIntake(c.Request.Context(), c.Param("id"), details)
	respondView(c, view, err)
}

func (w *WizardController) OpenDoctor(c *gin.Context) {
	view, err := w.wizard.OpenDoctor(c.Request.Context(), c.Param("id"), c.Param("doctorId"))
	respondView(c, view, err)
}

func (w *WizardController) CloseDoctor(c *gin.Context) {
	view, err := w.wizard.CloseDoctor(c.Request.Context(), c.Param("id"))
	respondView(c, view, err)
}

func (w *WizardController) ConfirmDoctor(c *gin.Context) {
	view, err := w.wizard.ConfirmDoctor(c.Request.Context(), c.Param("id"))
	respondView(c, view, err)
}

func (w *WizardController) PickDate(c *gin.Context) {
	var req dateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.AbortWithError(c, util.ValidationError(err), util.WIZARD_FAILED)
		return
	}
	view, err := w.wizard.PickDate(c.Request.Context(), c.Param("id"), req.Date)
	respondView(c, view, err)
}

func (w *WizardController) PickSlot(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.AbortWithError(c, util.ValidationError(err), util.WIZARD_FAILED)
		return
	}
	view, err := w.wizard.PickSlot(c.Request.Context(), c.Param("id"), req.TimeSlot)
	respondView(c, view, err)
}

func (w *WizardController) ConfirmSlot(c *gin.Context) {
	view, err := w.wizard.ConfirmSlot(c.Request.Context(), c.Param("id"))
	respondView(c, view, err)
}

/*
* Runs the payment simulation and stores the booking
* A failed booking answers with the summary view so the client can retry
 */
func (w *WizardController) Pay(c *gin.Context) {
	view, err := w.wizard.Pay(c.Request.Context(), c.Param("id"))
	if err != nil && view.Step == wizard.StepSummary && !errors.Is(err, util.ErrValidation) {
		c.JSON(util.StatusFor(err), gin.H{
			"error": util.PublicMessage(err, util.SAVE_APPOINTMENT_FAILED),
			"view":  view,
		})
		return
	}
	respondView(c, view, err)
}

func respondView(c *gin.Context, view wizard.View, err error) {
	if err != nil {
		util.AbortWithError(c, err, util.WIZARD_FAILED)
		return
	}
	c.JSON(http.StatusOK, view)
}
