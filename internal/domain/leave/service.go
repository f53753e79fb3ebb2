package leave

import "context"

type LeaveService interface {
	// SubmitLeave stores a leave request for the referenced user with
	// status "Pending". Fails with user.ErrUserNotFound when the user id
	// does not exist.
	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)
}
