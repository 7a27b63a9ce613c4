package util

import (
	"errors"
	"net/http"
)

var (
	ErrDuplicateIdentifier  = errors.New(USER_ALREADY_EXISTS)
	ErrNotFound             = errors.New("not found")
	ErrUserNotFound         = &notFound{USER_NOT_FOUND}
	ErrDoctorNotFound       = &notFound{DOCTOR_NOT_FOUND}
	ErrSessionNotFound      = &notFound{WIZARD_SESSION_NOT_FOUND}
	ErrInvalidCredentials   = errors.New(INVALID_CREDENTIALS)
	ErrIncorrectOldPassword = errors.New(INCORRECT_OLD_PASSWORD)
	ErrValidation           = errors.New(VALIDATION_FAILED)
	ErrInvalidRole          = &validation{INVALID_ROLE}
	ErrUsernameRequired     = &validation{USERNAME_REQUIRED}
	ErrServer               = errors.New(SERVER_ERROR)
	ErrPartialProvision     = errors.New(DOCTOR_LOGIN_NOT_CREATED)
	ErrPaymentInProgress    = errors.New(PAYMENT_ALREADY_IN_PROGRESS)
)

// notFound keeps its own message but matches ErrNotFound with errors.Is.
type notFound struct{ msg string }

func (e *notFound) Error() string        { return e.msg }
func (e *notFound) Is(target error) bool { return target == ErrNotFound }

type validation struct{ msg string }

func (e *validation) Error() string        { return e.msg }
func (e *validation) Is(target error) bool { return target == ErrValidation }

// ValidationError wraps a binding failure so it matches ErrValidation.
func ValidationError(err error) error {
	if err == nil {
		return nil
	}
	return &validation{err.Error()}
}

/*
* Map an error from the services to the http status
* Anything unclassified is a 500
 */
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateIdentifier),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrIncorrectOldPassword),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrPaymentInProgress):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

/*
* Message shown to the client
* Server errors never leak the underlying cause
 */
func PublicMessage(err error, fallback string) string {
	if StatusFor(err) == http.StatusInternalServerError && !errors.Is(err, ErrPartialProvision) {
		return fallback
	}
	var nf *notFound
	if errors.As(err, &nf) {
		return nf.msg
	}
	var v *validation
	if errors.As(err, &v) {
		return v.msg
	}
	for _, known := range []error{ErrDuplicateIdentifier, ErrInvalidCredentials, ErrIncorrectOldPassword, ErrPartialProvision, ErrPaymentInProgress} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return err.Error()
}
