package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"admin-console/internal/database"
	"admin-console/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func stubAdminStore(t *testing.T, lookupErr, createErr error) *model.Admin {
	origGet, origCreate := getAdminByEmail, createAdmin
	t.Cleanup(func() { getAdminByEmail, createAdmin = origGet, origCreate })

	created := &model.Admin{}
	getAdminByEmail = func(ctx context.Context, db database.DB, email string) (*model.Admin, error) {
		if lookupErr != nil {
			return nil, lookupErr
		}
		return &model.Admin{ID: 1, Email: email}, nil
	}
	createAdmin = func(ctx context.Context, db database.DB, a *model.Admin) (*model.Admin, error) {
		if createErr != nil {
			return nil, createErr
		}
		*created = *a
		return a, nil
	}
	return created
}

func TestEnsureAdminExisting(t *testing.T) {
	created := stubAdminStore(t, nil, errors.New("should not be called"))
	ok, err := EnsureAdmin(context.Background(), &database.FakeDB{}, "root", "root@example.com", "pw")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, created.Email)
}

func TestEnsureAdminCreates(t *testing.T) {
	origGen := bcryptGenerateFromPassword
	t.Cleanup(func() { bcryptGenerateFromPassword = origGen })
	bcryptGenerateFromPassword = func(pw []byte, cost int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(pw, bcrypt.MinCost)
	}

	created := stubAdminStore(t, fmt.Errorf("GetAdminByEmail: %w", pgx.ErrNoRows), nil)
	ok, err := EnsureAdmin(context.Background(), &database.FakeDB{}, "root", "Root@Example.com", "pw")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "root@example.com", created.Email)
	require.Equal(t, "root", created.Name)
	require.NoError(t, ComparePassword(created.PasswordHash, "pw"))
}

func TestEnsureAdminErrors(t *testing.T) {
	stubAdminStore(t, errors.New("db down"), nil)
	_, err := EnsureAdmin(context.Background(), &database.FakeDB{}, "root", "a@b.c", "pw")
	require.ErrorContains(t, err, "db down")

	stubAdminStore(t, pgx.ErrNoRows, errors.New("insert"))
	_, err = EnsureAdmin(context.Background(), &database.FakeDB{}, "root", "a@b.c", "pw")
	require.ErrorContains(t, err, "insert")

	origGen := bcryptGenerateFromPassword
	t.Cleanup(func() { bcryptGenerateFromPassword = origGen })
	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("hash") }
	_, err = EnsureAdmin(context.Background(), &database.FakeDB{}, "root", "a@b.c", "pw")
	require.ErrorContains(t, err, "hash")
}
