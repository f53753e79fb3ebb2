package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/user"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	user.UserRepository
}

func NewAttendanceService(db *database.DB, attendanceRepository attendance.AttendanceRepository, userRepository user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
	}
}

// today truncates now to its calendar date.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userData, err := a.UserRepository.GetByFingerprintID(ctx, req.FingerprintID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, user.ErrFingerprintNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get user by fingerprint id: %w", err)
	}

	now := time.Now().UTC()
	att, err := a.AttendanceRepository.ClockIn(ctx, userData.ID, today(now), now)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock in: %w", err)
	}

	return attendance.ToResponse(att), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userData, err := a.UserRepository.GetByFingerprintID(ctx, req.FingerprintID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, user.ErrFingerprintNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get user by fingerprint id: %w", err)
	}

	now := time.Now().UTC()
	att, err := a.AttendanceRepository.ClockOut(ctx, userData.ID, today(now), now)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock out: %w", err)
		}
		// The guarded update matched nothing, find out which precondition
		// failed
		existing, getErr := a.AttendanceRepository.GetByUserAndDate(ctx, userData.ID, today(now))
		if getErr != nil || existing.CheckIn == nil {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	return attendance.ToResponse(att), nil
}
