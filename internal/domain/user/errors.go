package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already registered")
	ErrEmailExists            = errors.New("email already registered")
	ErrEmployeeIDExists       = errors.New("employee id already registered")
	ErrFingerprintIDExists    = errors.New("fingerprint id already registered")
	ErrFingerprintNotFound    = errors.New("no user matches this fingerprint")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
