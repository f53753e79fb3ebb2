package attendance

import "errors"

var (
	ErrAlreadyCheckedIn  = errors.New("Already checked in")
	ErrNotCheckedIn      = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
)
