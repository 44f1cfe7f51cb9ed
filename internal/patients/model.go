package patients

import "strings"

// Patient is a registered patient account. Passwords are stored in plaintext,
// matching the product's demo security model.
type Patient struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	City     string `json:"city"`
	Age      int    `json:"age"`
}

// RegisterRequest is the request body for patient registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	City     string `json:"city"`
	Age      int    `json:"age"`
}

// Validate checks the required identity fields.
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrMissingEmail
	}
	if r.Password == "" {
		return ErrMissingPassword
	}
	return nil
}
