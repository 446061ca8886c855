package store

import (
	"context"
	"fmt"

	"admin-console/internal/database"
	"admin-console/internal/model"
)

func CreateSubmissionAttempt(ctx context.Context, db database.DB, a *model.SubmissionAttempt) (*model.SubmissionAttempt, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO submission_attempts (admin_id, form_id, email, outcome, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		a.AdminID,
		a.FormID,
		a.Email,
		a.Outcome,
		a.Message,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateSubmissionAttempt: %w", err)
	}
	return a, nil
}

// ListSubmissionAttempts returns the newest attempts first.
func ListSubmissionAttempts(ctx context.Context, db database.DB, limit int) ([]model.SubmissionAttempt, error) {
	rows, err := db.Query(ctx,
		`SELECT id, admin_id, form_id, email, outcome, message, created_at
		 FROM submission_attempts
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSubmissionAttempts: %w", err)
	}
	defer rows.Close()

	var list []model.SubmissionAttempt
	for rows.Next() {
		var a model.SubmissionAttempt
		if err := rows.Scan(
			&a.ID,
			&a.AdminID,
			&a.FormID,
			&a.Email,
			&a.Outcome,
			&a.Message,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListSubmissionAttempts scan: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSubmissionAttempts rows: %w", err)
	}
	return list, nil
}
