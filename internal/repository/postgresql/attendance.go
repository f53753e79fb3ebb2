package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// ClockIn implements attendance.AttendanceRepository.
//
// The write is a single upsert guarded by the UNIQUE(user_id, date)
// constraint: the insert claims the day if no row exists, the conflict branch
// claims an existing row only while check_in is still NULL. Whichever of N
// concurrent requests the constraint lets through first gets a row back;
// everyone else matches nothing and is reported as already checked in.
func (a *attendanceRepositoryImpl) ClockIn(ctx context.Context, userID string, date time.Time, checkIn time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (user_id, date, check_in, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in, status = EXCLUDED.status
		WHERE attendances.check_in IS NULL
		RETURNING id, user_id, date, check_in, check_out, working_hours, status
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date, checkIn, attendance.StatusPresent).Scan(
		&att.ID,
		&att.UserID,
		&att.Date,
		&att.CheckIn,
		&att.CheckOut,
		&att.WorkingHours,
		&att.Status,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to clock in: %w", err)
	}

	return att, nil
}

// ClockOut implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ClockOut(ctx context.Context, userID string, date time.Time, checkOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $3,
			working_hours = EXTRACT(EPOCH FROM ($3 - check_in)) / 3600.0
		WHERE user_id = $1
		  AND date = $2
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
		RETURNING id, user_id, date, check_in, check_out, working_hours, status
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date, checkOut).Scan(
		&att.ID,
		&att.UserID,
		&att.Date,
		&att.CheckIn,
		&att.CheckOut,
		&att.WorkingHours,
		&att.Status,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, working_hours, status
		FROM attendances
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&att.ID,
		&att.UserID,
		&att.Date,
		&att.CheckIn,
		&att.CheckOut,
		&att.WorkingHours,
		&att.Status,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return att, nil
}
