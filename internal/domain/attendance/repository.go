package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// ClockIn creates today's record, or claims the existing one, in a
	// single statement guarded by the UNIQUE(user_id, date) constraint.
	// Returns ErrAlreadyCheckedIn when check_in is already set, so racing
	// requests for the same user and date resolve to exactly one winner.
	ClockIn(ctx context.Context, userID string, date time.Time, checkIn time.Time) (Attendance, error)

	// ClockOut sets check_out once and computes working hours. The guarded
	// update only matches a row that has checked in and not yet out.
	ClockOut(ctx context.Context, userID string, date time.Time, checkOut time.Time) (Attendance, error)

	// GetByUserAndDate retrieves the attendance record for a user on a
	// calendar date. Returns pgx.ErrNoRows when absent.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Attendance, error)
}
