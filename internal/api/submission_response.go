package api

import (
	"encoding/json"
	"time"
)

// swagger:model api.CreateUserResponse
type CreateUserResponse struct {
	Message string          `json:"message" example:"User created"`
	Data    json.RawMessage `json:"data,omitempty" swaggertype:"object"`
}

// swagger:model api.SubmissionAttemptResponse
type SubmissionAttemptResponse struct {
	ID        int       `json:"id" example:"1"`
	AdminID   int       `json:"admin_id" example:"1"`
	FormID    string    `json:"form_id" example:"5f0c2a9e-1b7d-4c43-9b7b-3f5d0e1d2a10"`
	Email     string    `json:"email" example:"alice@example.com"`
	Outcome   string    `json:"outcome" example:"rejected"`
	Message   string    `json:"message" example:"duplicate user"`
	CreatedAt time.Time `json:"created_at"`
}

// swagger:model api.PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
