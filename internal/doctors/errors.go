package doctors

import "errors"

var (
	// ErrDoctorNotFound is returned when no doctor matches the lookup.
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrUsernameTaken is returned when the unique username constraint is violated.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrMissingName is returned when a registration omits the name.
	ErrMissingName = errors.New("name is required")

	// ErrMissingUsername is returned when a registration omits the username.
	ErrMissingUsername = errors.New("username is required")

	// ErrMissingPassword is returned when a registration omits the password.
	ErrMissingPassword = errors.New("password is required")
)
