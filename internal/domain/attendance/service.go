package attendance

import "context"

type AttendanceService interface {
	// CheckIn resolves the fingerprint to a user and records today's
	// check-in. Fails with user.ErrFingerprintNotFound for an unknown
	// fingerprint and ErrAlreadyCheckedIn for a second attempt on the
	// same day.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's open attendance record and computes working
	// hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
}
