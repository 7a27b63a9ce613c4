package models

import (
	"ClinicDesk/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Account struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"-" bson:"password"`
	Role     role.Role          `json:"role" bson:"role"`
}

// AccountSummary is the listing projection: never carries the hash.
type AccountSummary struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Role     role.Role          `json:"role" bson:"role"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token      string    `json:"token"`
	Role       role.Role `json:"role"`
	Username   string    `json:"username"`
	ForceReset bool      `json:"forceReset"`
}

type ChangePasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPasswordRequest also accepts the target id in the body for the legacy route.
type ResetPasswordRequest struct {
	TargetUserID string `json:"targetUserId"`
	NewPassword  string `json:"newPassword" binding:"required"`
}

type SyncResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
