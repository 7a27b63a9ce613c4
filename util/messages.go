package util

const (
	AccountCollection     = "users"
	DoctorCollection      = "doctors"
	AppointmentCollection = "appointments"
)

const (
	DoctorListKey = "DOCTORS:ALL"
	WizardKey     = "WIZARD:"
	WizardPayKey  = "WIZARD:PAY:"
)

// Credential every auto-provisioned doctor login starts with.
const DefaultPassword = "12345"

const (
	USER_ALREADY_EXISTS         = "User already exists"
	USER_NOT_FOUND              = "User not found"
	INVALID_CREDENTIALS         = "Invalid credentials"
	INCORRECT_OLD_PASSWORD      = "Incorrect old password"
	DOCTOR_NOT_FOUND            = "Doctor not found"
	VALIDATION_FAILED           = "Missing or invalid fields"
	INVALID_ROLE                = "Invalid role"
	USERNAME_REQUIRED           = "Username is required"
	SERVER_ERROR                = "Server error"
	DOCTOR_LOGIN_NOT_CREATED    = "Doctor profile saved but login could not be created"
	INVALID_TOKEN               = "invalid token"
	MISSING_AUTHORIZATION       = "missing the authorization header"
	ACCESS_DENIED               = "access denied"
	WIZARD_SESSION_NOT_FOUND    = "Booking session not found"
	PAYMENT_ALREADY_IN_PROGRESS = "Payment already in progress"
)

// Fallbacks for unclassified failures, one per route.
const (
	REGISTER_FAILED           = "Error registering user"
	FETCH_USERS_FAILED        = "Failed to fetch users"
	SYNC_FAILED               = "Sync failed"
	SAVE_APPOINTMENT_FAILED   = "Failed to save appointment"
	FETCH_APPOINTMENTS_FAILED = "Failed to fetch appointments"
	FETCH_DOCTORS_FAILED      = "Failed to fetch doctors"
	ADD_DOCTOR_FAILED         = "Failed to add doctor"
	UPDATE_DOCTOR_FAILED      = "Server Error updating doctor"
	DELETE_DOCTOR_FAILED      = "Failed to delete doctor"
	WIZARD_FAILED             = "Booking could not be updated"
)

const (
	USER_CREATED            = "User created successfully"
	PASSWORD_UPDATED        = "Password updated successfully"
	PASSWORD_RESET          = "User password reset successfully"
	DOCTOR_DELETED          = "Doctor deleted successfully"
	SYNC_COMPLETE           = "Sync Complete"
	PAYMENT_STATUS_PENDING  = "Pending"
	PAYMENT_STATUS_PAID     = "Paid"
	APPOINTMENT_TYPE_ONLINE = "Online"
	DEFAULT_FEE             = "₹500"
)
