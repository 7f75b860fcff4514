package auth

import (
	"strings"

	"github.com/hrportal/employee-portal/internal"
)

// RegisterDTO is the registration form input. Fields are trimmed and the
// email is case-normalized before validation.
type RegisterDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims the name fields and lowercases the email in place.
func (d *RegisterDTO) Normalize() {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
}

func (d *RegisterDTO) Validate() error {
	if d.FirstName == "" {
		return internal.NewValidationError("first name is required", internal.ErrCodeFieldRequired)
	}
	if d.LastName == "" {
		return internal.NewValidationError("last name is required", internal.ErrCodeFieldRequired)
	}
	if d.Email == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeFieldRequired)
	}
	if len(d.Password) < 6 {
		return internal.ErrPasswordTooShort
	}
	return nil
}

func (d *LoginDTO) Validate() error {
	if strings.TrimSpace(d.Email) == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeFieldRequired)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeFieldRequired)
	}
	return nil
}
