package doctors

import "strings"

// Doctor is a registered doctor account. Password is stored in plaintext on
// purpose: the product hands the generated credentials back to the booking
// caller as demo credentials.
type Doctor struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Specialty      string  `json:"specialty"`
	HospitalName   string  `json:"hospital_name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	Rating         float64 `json:"rating"`
	GoogleMapsLink string  `json:"google_maps_link"`
	Username       string  `json:"username"`
	Password       string  `json:"-"`
}

// RegisterRequest is the request body for explicit doctor registration.
type RegisterRequest struct {
	Name           string `json:"name"`
	Specialty      string `json:"specialty"`
	HospitalName   string `json:"hospital_name"`
	City           string `json:"city"`
	Address        string `json:"address"`
	GoogleMapsLink string `json:"google_maps_link"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

// Validate checks the required identity fields.
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(r.Username) == "" {
		return ErrMissingUsername
	}
	if r.Password == "" {
		return ErrMissingPassword
	}
	return nil
}
