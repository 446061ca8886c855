package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"admin-console/internal/api"
	"admin-console/internal/client"
	"admin-console/internal/database"
	"admin-console/internal/events"
	"admin-console/internal/model"
	"admin-console/internal/store"
	"admin-console/internal/worker"

	"github.com/labstack/echo/v4"
)

const (
	MsgCreated      = "User created"
	MsgGenericError = "An error occurred"
	MsgBusy         = "A submission is already in progress"

	StatusBusy = "busy"
)

var createSubmissionAttempt = store.CreateSubmissionAttempt

// UserCreator sends a validated request to the user service.
type UserCreator interface {
	CreateUser(ctx context.Context, adminID int, req api.CreateUserRequest) (json.RawMessage, error)
}

// Locker guards a form instance against overlapping submissions.
// Release must only remove a guard still holding token.
type Locker interface {
	Acquire(ctx context.Context, formID string) (token string, ok bool, err error)
	Release(ctx context.Context, formID, token string) error
}

// Outcome is what the form shows after a submit.
type Outcome struct {
	Status  string
	Message string
	Data    json.RawMessage
}

func (o Outcome) OK() bool { return o.Status == model.OutcomeCreated }

type Submitter struct {
	users     UserCreator
	lock      Locker
	db        database.DB
	pool      worker.Pool
	publisher events.Publisher
	logger    echo.Logger
	timeout   time.Duration
}

type SubmitterConfig struct {
	Users     UserCreator
	Lock      Locker
	DB        database.DB
	Pool      worker.Pool
	Publisher events.Publisher
	Logger    echo.Logger
	Timeout   time.Duration
}

func NewSubmitter(cfg SubmitterConfig) *Submitter {
	if cfg.Publisher == nil {
		cfg.Publisher = events.Nop{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Submitter{
		users:     cfg.Users,
		lock:      cfg.Lock,
		db:        cfg.DB,
		pool:      cfg.Pool,
		publisher: cfg.Publisher,
		logger:    cfg.Logger,
		timeout:   cfg.Timeout,
	}
}

// Submit sends req once per form instance at a time. Upstream errors never
// escape: they are turned into the message the form displays.
func (s *Submitter) Submit(ctx context.Context, formID string, adminID int, req api.CreateUserRequest) Outcome {
	token, ok, err := s.lock.Acquire(ctx, formID)
	if err != nil {
		s.logger.Errorf("form %s: acquire submit lock: %v", formID, err)
		return Outcome{Status: model.OutcomeFailed, Message: MsgGenericError}
	}
	if !ok {
		return Outcome{Status: StatusBusy, Message: MsgBusy}
	}
	defer func() {
		if err := s.lock.Release(context.WithoutCancel(ctx), formID, token); err != nil {
			s.logger.Warnf("form %s: release submit lock: %v", formID, err)
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	data, err := s.users.CreateUser(callCtx, adminID, req)
	out := s.classify(formID, data, err)

	s.record(model.SubmissionAttempt{
		AdminID: adminID,
		FormID:  formID,
		Email:   req.Email,
		Outcome: out.Status,
		Message: out.Message,
	})
	if out.OK() {
		s.publish(events.UserCreated{
			AdminID:     adminID,
			FormID:      formID,
			Email:       req.Email,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			LicenseName: req.LicenseName,
			Response:    data,
			CreatedAt:   time.Now().UTC(),
		})
	}
	return out
}

func (s *Submitter) classify(formID string, data json.RawMessage, err error) Outcome {
	if err == nil {
		s.logger.Infof("form %s: user created: %s", formID, string(data))
		return Outcome{Status: model.OutcomeCreated, Message: MsgCreated, Data: data}
	}
	var rejected *client.RejectedError
	if errors.As(err, &rejected) {
		s.logger.Warnf("form %s: %v", formID, rejected)
		msg := rejected.Message
		if msg == "" {
			msg = MsgGenericError
		}
		return Outcome{Status: model.OutcomeRejected, Message: msg, Data: rejected.Body}
	}
	s.logger.Errorf("form %s: create user: %v", formID, err)
	return Outcome{Status: model.OutcomeFailed, Message: MsgGenericError}
}

func (s *Submitter) record(attempt model.SubmissionAttempt) {
	if s.db == nil {
		return
	}
	queued := s.pool.Submit(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if _, err := createSubmissionAttempt(ctx, s.db, &attempt); err != nil {
			s.logger.Errorf("form %s: record attempt: %v", attempt.FormID, err)
		}
	})
	if !queued {
		s.logger.Warnf("form %s: worker pool stopped, attempt not recorded", attempt.FormID)
	}
}

func (s *Submitter) publish(ev events.UserCreated) {
	queued := s.pool.Submit(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := s.publisher.PublishUserCreated(ctx, ev); err != nil {
			s.logger.Errorf("form %s: publish user created: %v", ev.FormID, err)
		}
	})
	if !queued {
		s.logger.Warnf("form %s: worker pool stopped, event dropped", ev.FormID)
	}
}
