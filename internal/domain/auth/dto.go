package auth

import (
	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/user"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	Name          *string `json:"name"`
	EmployeeID    *string `json:"employee_id"`
	Email         *string `json:"email"`
	Role          *string `json:"role"`
	Department    *string `json:"department"`
	FingerprintID *string `json:"fingerprint_id"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if len(r.Username) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must not exceed 200 characters",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 200 characters",
		})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Role != nil && !validator.IsEmpty(*r.Role) && !validator.IsInSlice(*r.Role, user.Roles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, employee, manager",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh"`
}

// SessionTrackingRequest carries request metadata stored next to refresh
// tokens.
type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
}

// TokenResponse mirrors the signup/login payload: the created or
// authenticated user plus both tokens.
type TokenResponse struct {
	User                  user.UserResponse `json:"user"`
	RefreshToken          string            `json:"refresh"`
	AccessToken           string            `json:"access"`
	AccessTokenExpiresIn  int64             `json:"-"`
	RefreshTokenExpiresIn int64             `json:"-"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access"`
	AccessTokenExpiresIn int64  `json:"-"`
}
