package controllers

import (
	"errors"
	"net/http"

	"ClinicDesk/config/authorization"
	"ClinicDesk/models"
	"ClinicDesk/role"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
)

type DoctorController struct {
	doctors DoctorService
}

func NewDoctorController(doctors DoctorService) *DoctorController {
	return &DoctorController{doctors: doctors}
}

func (d *DoctorController) Routes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	staff := authorization.Authorize(role.Admin, role.Receptionist)

	api.GET("/doctors", d.List)
	api.GET("/doctors/:id", d.Get)
	api.POST("/doctors", auth, staff, d.Create)
	api.PUT("/doctors/:id", auth, staff, d.UpdateSchedule)
	api.DELETE("/doctors/:id", auth, staff, d.Delete)
}

/*
* Bind JSON and pass to the service
* The profile is returned even when its login could not be created
 */
func (d *DoctorController) Create(c *gin.Context) {
	var req models.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.AbortWithError(c, util.ValidationError(err), util.ADD_DOCTOR_FAILED)
		return
	}
	result, err := d.doctors.Create(c.Request.Context(), req)
	if errors.Is(err, util.ErrPartialProvision) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   util.DOCTOR_LOGIN_NOT_CREATED,
			"profile": result.Profile,
		})
		return
	}
	if err != nil {
		util.AbortWithError(c, err, util.ADD_DOCTOR_FAILED)
		return
	}
	c.JSON(http.StatusCreated, result.Profile)
}

func (d *DoctorController) List(c *gin.Context) {
	doctors, err := d.doctors.List(c.Request.Context())
	if err != nil {
		util.AbortWithError(c, err, util.FETCH_DOCTORS_FAILED)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (d *DoctorController) Get(c *gin.Context) {
	doctor, err := d.doctors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.AbortWithError(c, err, util.FETCH_DOCTORS_FAILED)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

/*
* Get id from params
* Bind only the schedule fields which need to be updated
 */
func (d *DoctorController) UpdateSchedule(c *gin.Context) {
	var update models.ScheduleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		util.AbortWithError(c, util.ValidationError(err), util.UPDATE_DOCTOR_FAILED)
		return
	}
	doctor, err := d.doctors.UpdateSchedule(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		util.AbortWithError(c, err, util.UPDATE_DOCTOR_FAILED)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (d *DoctorController) Delete(c *gin.Context) {
	if err := d.doctors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		util.AbortWithError(c, err, util.DELETE_DOCTOR_FAILED)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.DOCTOR_DELETED))
}
