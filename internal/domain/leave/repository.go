package leave

import "context"

type LeaveRepository interface {
	// Create inserts a leave request with status "Pending".
	Create(ctx context.Context, newLeave Leave) (Leave, error)

	// List returns all leave requests ordered by creation time.
	List(ctx context.Context) ([]Leave, error)
}
