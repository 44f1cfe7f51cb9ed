package patients

import "errors"

var (
	// ErrPatientNotFound is returned when no patient matches the lookup.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrEmailTaken is returned when the unique email constraint is violated.
	ErrEmailTaken = errors.New("email already registered")

	// ErrMissingName is returned when a registration omits the name.
	ErrMissingName = errors.New("name is required")

	// ErrMissingEmail is returned when a registration omits the email.
	ErrMissingEmail = errors.New("email is required")

	// ErrMissingPassword is returned when a registration omits the password.
	ErrMissingPassword = errors.New("password is required")
)
