package postgresql

import (
	"context"
	"fmt"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/leave"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (user_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, leave_type, start_date, end_date, reason, status, created_at
	`

	var created leave.Leave
	err := q.QueryRow(ctx, query,
		newLeave.UserID,
		newLeave.LeaveType,
		newLeave.StartDate,
		newLeave.EndDate,
		newLeave.Reason,
		newLeave.Status,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.LeaveType,
		&created.StartDate,
		&created.EndDate,
		&created.Reason,
		&created.Status,
		&created.CreatedAt,
	)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, reason, status, created_at
		FROM leaves
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.LeaveType,
			&l.StartDate,
			&l.EndDate,
			&l.Reason,
			&l.Status,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}
