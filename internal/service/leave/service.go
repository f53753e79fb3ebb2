package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/leave"
	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/user"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	user.UserRepository
}

func NewLeaveService(db *database.DB, leaveRepository leave.LeaveRepository, userRepository user.UserRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepository,
		UserRepository:  userRepository,
	}
}

// SubmitLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) SubmitLeave(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	userData, err := l.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, user.ErrUserNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	newLeave := leave.Leave{
		UserID:    userData.ID,
		LeaveType: req.LeaveType,
		StartDate: req.ParsedStartDate,
		EndDate:   req.ParsedEndDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}
	created, err := l.LeaveRepository.Create(ctx, newLeave)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}
