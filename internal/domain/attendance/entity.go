package attendance

import "time"

const (
	StatusPresent = "Present"
)

type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	CheckIn      *time.Time
	CheckOut     *time.Time
	WorkingHours float64
	Status       string
}
