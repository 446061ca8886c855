package users

import (
	"context"

	"admin-console/internal/api"
	"admin-console/internal/service"

	"github.com/google/uuid"
)

// Submitter forwards a validated create-user request.
type Submitter interface {
	Submit(ctx context.Context, formID string, adminID int, req api.CreateUserRequest) service.Outcome
}

var newFormID = func() string { return uuid.NewString() }
