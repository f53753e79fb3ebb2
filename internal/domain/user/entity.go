package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages accounts
	RoleManager  Role = "manager"  // Can review attendance and leave
	RoleEmployee Role = "employee" // Regular employee
)

// Roles lists every valid role value, used for input validation.
func Roles() []string {
	return []string{string(RoleAdmin), string(RoleManager), string(RoleEmployee)}
}

type User struct {
	ID            string
	Name          *string
	Username      string
	EmployeeID    *string
	Email         *string
	Role          Role
	Department    *string
	PasswordHash  string
	FingerprintID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin checks if user has full administrative access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
