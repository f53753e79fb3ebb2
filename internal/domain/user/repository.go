package user

import "context"

type UserRepository interface {
	// Create inserts a new user. Unique violations on username, email,
	// employee_id or fingerprint_id surface as pgconn errors with code 23505.
	Create(ctx context.Context, newUser User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByFingerprintID resolves a biometric device identifier to its user.
	GetByFingerprintID(ctx context.Context, fingerprintID string) (User, error)

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]User, error)
}
