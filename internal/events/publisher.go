package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const DefaultSubject = "admin.users.created"

// UserCreated is published after the user service accepted a request.
type UserCreated struct {
	AdminID     int             `json:"adminId"`
	FormID      string          `json:"formId"`
	Email       string          `json:"email"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	LicenseName int             `json:"licenseName"`
	Response    json.RawMessage `json:"response,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Publisher interface {
	PublishUserCreated(ctx context.Context, ev UserCreated) error
	Close()
}

// Nop drops every event. It is used when NATS is not configured.
type Nop struct{}

func (Nop) PublishUserCreated(context.Context, UserCreated) error { return nil }
func (Nop) Close()                                                {}

type natsConn interface {
	Publish(subj string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

var natsConnect = func(url string, opts ...nats.Option) (natsConn, error) {
	return nats.Connect(url, opts...)
}

type NATSPublisher struct {
	conn    natsConn
	subject string
}

func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	if subject == "" {
		subject = DefaultSubject
	}
	conn, err := natsConnect(url, nats.Name("admin-console"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("NATS 連線失敗: %w", err)
	}
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

func (p *NATSPublisher) PublishUserCreated(ctx context.Context, ev UserCreated) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("PublishUserCreated: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("PublishUserCreated: %w", err)
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("PublishUserCreated flush: %w", err)
	}
	return nil
}

func (p *NATSPublisher) Close() {
	_ = p.conn.Drain()
}
