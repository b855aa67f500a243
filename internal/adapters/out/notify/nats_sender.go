package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// DefaultSubject is where the SMS gateway listens.
const DefaultSubject = "notifications.sms"

// Publisher is the part of *nats.Conn the sender needs.
type Publisher interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
}

// SMSMessage is the payload published for the SMS gateway.
type SMSMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// NatsSender publishes notifications to a NATS subject consumed by the SMS
// gateway.
type NatsSender struct {
	publisher Publisher
	subject   string
	logger    *slog.Logger
}

func NewNatsSender(publisher Publisher, subject string, logger *slog.Logger) *NatsSender {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NatsSender{
		publisher: publisher,
		subject:   subject,
		logger:    logger.With("component", "nats_sender"),
	}
}

// Connect dials url with reconnects enabled.
func Connect(url string, logger *slog.Logger) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("luggage"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
}

// Send reports whether the message reached the server.
func (s *NatsSender) Send(ctx context.Context, to, message string) bool {
	if to == "" {
		s.logger.WarnContext(ctx, "notification without recipient dropped")
		return false
	}

	data, err := json.Marshal(SMSMessage{To: to, Body: message})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode notification", "error", err)
		return false
	}

	if err = s.publisher.Publish(s.subject, data); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish notification", "subject", s.subject, "error", err)
		return false
	}
	if err = s.publisher.FlushWithContext(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to flush notification", "subject", s.subject, "error", err)
		return false
	}

	return true
}
