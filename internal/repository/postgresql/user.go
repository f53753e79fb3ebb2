package postgresql

import (
	"context"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/user"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			name, username, employee_id, email, role, department, password_hash, fingerprint_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, username, employee_id, email, role, department, password_hash,
				  fingerprint_id, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.Name,
		newUser.Username,
		newUser.EmployeeID,
		newUser.Email,
		newUser.Role,
		newUser.Department,
		newUser.PasswordHash,
		newUser.FingerprintID,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Username,
		&created.EmployeeID,
		&created.Email,
		&created.Role,
		&created.Department,
		&created.PasswordHash,
		&created.FingerprintID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getByField(ctx, "id", id)
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return r.getByField(ctx, "username", username)
}

// GetByFingerprintID implements user.UserRepository.
func (r *userRepositoryImpl) GetByFingerprintID(ctx context.Context, fingerprintID string) (user.User, error) {
	return r.getByField(ctx, "fingerprint_id", fingerprintID)
}

func (r *userRepositoryImpl) getByField(ctx context.Context, field string, value string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, username, employee_id, email, role, department, password_hash,
			   fingerprint_id, created_at, updated_at
		FROM users
		WHERE ` + field + ` = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, value).Scan(
		&found.ID,
		&found.Name,
		&found.Username,
		&found.EmployeeID,
		&found.Email,
		&found.Role,
		&found.Department,
		&found.PasswordHash,
		&found.FingerprintID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, username, employee_id, email, role, department, password_hash,
			   fingerprint_id, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Username,
			&u.EmployeeID,
			&u.Email,
			&u.Role,
			&u.Department,
			&u.PasswordHash,
			&u.FingerprintID,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
