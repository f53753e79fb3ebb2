package report

import (
	"context"
	"fmt"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/leave"
	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/report"
	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	userRepository  user.UserRepository
	leaveRepository leave.LeaveRepository
}

func NewReportService(userRepository user.UserRepository, leaveRepository leave.LeaveRepository) report.ReportService {
	return &ReportServiceImpl{
		userRepository:  userRepository,
		leaveRepository: leaveRepository,
	}
}

// ListUsers implements report.ReportService.
func (r *ReportServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := r.userRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return user.ToResponseList(users), nil
}

// ListLeaveRequests implements report.ReportService.
func (r *ReportServiceImpl) ListLeaveRequests(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := r.leaveRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.ToResponseList(leaves), nil
}
