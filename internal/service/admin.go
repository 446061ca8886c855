package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"admin-console/internal/database"
	"admin-console/internal/model"
	"admin-console/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	getAdminByEmail = store.GetAdminByEmail
	createAdmin     = store.CreateAdmin
)

// EnsureAdmin 建立啟動用的管理員帳號；帳號已存在時不做任何事
func EnsureAdmin(ctx context.Context, db database.DB, name, email, password string) (bool, error) {
	email = strings.ToLower(email)
	if _, err := getAdminByEmail(ctx, db, email); err == nil {
		return false, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("EnsureAdmin: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("EnsureAdmin: %w", err)
	}
	if _, err := createAdmin(ctx, db, &model.Admin{Name: name, Email: email, PasswordHash: hash}); err != nil {
		return false, fmt.Errorf("EnsureAdmin: %w", err)
	}
	return true, nil
}
