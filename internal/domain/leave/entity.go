package leave

import "time"

const (
	StatusPending = "Pending"
)

type Leave struct {
	ID        string
	UserID    string
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    string
	CreatedAt time.Time
}
