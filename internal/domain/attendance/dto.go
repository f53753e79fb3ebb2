package attendance

import (
	"time"

	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	FingerprintID string `json:"fingerprint_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FingerprintID) {
		errs = append(errs, validator.ValidationError{
			Field:   "fingerprint_id",
			Message: "fingerprint_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	FingerprintID string `json:"fingerprint_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FingerprintID) {
		errs = append(errs, validator.ValidationError{
			Field:   "fingerprint_id",
			Message: "fingerprint_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user"`
	Date         string     `json:"date"`
	CheckIn      *time.Time `json:"check_in"`
	CheckOut     *time.Time `json:"check_out"`
	WorkingHours float64    `json:"working_hours"`
	Status       string     `json:"status"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		Date:         a.Date.Format("2006-01-02"),
		CheckIn:      a.CheckIn,
		CheckOut:     a.CheckOut,
		WorkingHours: a.WorkingHours,
		Status:       a.Status,
	}
}
