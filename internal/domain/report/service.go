package report

import (
	"context"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/leave"
	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/user"
)

// ReportService exposes the read-only aggregation endpoints. Both methods
// are pure reads with no side effects.
type ReportService interface {
	ListUsers(ctx context.Context) ([]user.UserResponse, error)
	ListLeaveRequests(ctx context.Context) ([]leave.LeaveResponse, error)
}
