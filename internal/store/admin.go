package store

import (
	"context"
	"fmt"

	"admin-console/internal/database"
	"admin-console/internal/model"
)

func GetAdminByEmail(ctx context.Context, db database.DB, email string) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at
		 FROM admins WHERE email = $1`,
		email,
	)
	a := &model.Admin{}
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetAdminByEmail: %w", err)
	}
	return a, nil
}

func CreateAdmin(ctx context.Context, db database.DB, a *model.Admin) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO admins (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		a.Name,
		a.Email,
		a.PasswordHash,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateAdmin: %w", err)
	}
	return a, nil
}
