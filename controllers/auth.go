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

type AuthController struct {
	accounts AccountService
}

func NewAuthController(accounts AccountService) *AuthController {
	return &AuthController{accounts: accounts}
}

/*
* Register, login and own password change are public
* Listing, admin reset and doctor sync need an admin token
 */
func (a *AuthController) Routes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	admin := authorization.Authorize(role.Admin)

	api.POST("/accounts", a.Register)
	api.POST("/sessions", a.Login)
	api.PUT("/accounts/self/password", a.ChangePassword)
	api.GET("/accounts", auth, admin, a.ListAccounts)
	api.PUT("/accounts/:id/password", auth, admin, a.ResetPassword)
	api.POST("/doctors/sync-accounts", auth, admin, a.SyncDoctors)

	// routes of the first backend
	api.POST("/register", a.Register)
	api.POST("/login", a.Login)
	api.PUT("/change-password", a.ChangePassword)
	api.GET("/users", auth, admin, a.ListAccounts)
	api.PUT("/reset-password", auth, admin, a.ResetPassword)
	api.POST("/sync-doctors", auth, admin, a.SyncDoctors)
}

func (a *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.AbortWithError(c, util.ValidationError(err), util.REGISTER_FAILED)
		return
	}
	if err := a.accounts.Register(c.Request.Context(), req); err != nil {
		util.AbortWithError(c, err, util.REGISTER_FAILED)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(util.USER_CREATED))
}

/*
* Bind the credentials and pass to the service
* Unknown user and wrong password are both a 400 here
 */
func (a *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.AbortWithError(c, util.ValidationError(err), util.SERVER_ERROR)
		return
	}
	resp, err := a.accounts.Authenticate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			c.JSON(http.StatusBadRequest, util.FailedResponse(util.PublicMessage(err, util.SERVER_ERROR)))
			return
		}
		util.AbortWithError(c, err, util.SERVER_ERROR)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (a *AuthController) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.AbortWithError(c, util.ValidationError(err), util.SERVER_ERROR)
		return
	}
	if err := a.accounts.ChangeOwnPassword(c.Request.Context(), req); err != nil {
		util.AbortWithError(c, err, util.SERVER_ERROR)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.PASSWORD_UPDATED))
}

/*
* Target comes from the path, or from the body on the old route
 */
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.AbortWithError(c, util.ValidationError(err), util.SERVER_ERROR)
		return
	}
	target := c.Param("id")
	if target == "" {
		target = req.TargetUserID
	}
	if target == "" {
		util.AbortWithError(c, util.ValidationError(errors.New("targetUserId is required")), util.SERVER_ERROR)
		return
	}
	if err := a.accounts.AdminResetPassword(c.Request.Context(), target, req.NewPassword); err != nil {
		util.AbortWithError(c, err, util.SERVER_ERROR)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.PASSWORD_RESET))
}

func (a *AuthController) ListAccounts(c *gin.Context) {
	accounts, err := a.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		util.AbortWithError(c, err, util.FETCH_USERS_FAILED)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (a *AuthController) SyncDoctors(c *gin.Context) {
	count, err := a.accounts.SyncDoctorAccounts(c.Request.Context())
	if err != nil {
		util.AbortWithError(c, err, util.SYNC_FAILED)
		return
	}
	c.JSON(http.StatusOK, models.SyncResponse{Message: util.SYNC_COMPLETE, Count: count})
}
