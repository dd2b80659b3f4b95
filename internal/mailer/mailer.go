package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studentorg/internal/config"
	"github.com/studentorg/internal/logger"
)

// ErrNoRecipient is returned when a message has nobody to go to.
var ErrNoRecipient = errors.New("mail recipient is required")

// Message is a rendered outbound email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a message through one provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New builds the sender selected by cfg.Provider.
func New(ctx context.Context, cfg config.MailConfig, log logger.Logger) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "ses":
		return NewSESSender(ctx, cfg.AWSRegion)
	case "resend":
		if strings.TrimSpace(cfg.ResendAPIKey) == "" {
			return nil, errors.New("RESEND_API_KEY is required for the resend provider")
		}
		return NewResendSender(cfg.ResendAPIKey), nil
	case "", "log":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

func validate(msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipient
	}
	for _, to := range msg.To {
		if strings.TrimSpace(to) == "" {
			return ErrNoRecipient
		}
	}
	return nil
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	log logger.Logger
}

// NewLogSender returns a sender for development setups without a provider.
func NewLogSender(log logger.Logger) *LogSender {
	if log == nil {
		log = logger.Get()
	}
	return &LogSender{log: log.WithComponent("mailer")}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	if err := validate(msg); err != nil {
		return err
	}
	s.log.Info("mail not delivered, log provider active",
		logger.String("to", strings.Join(msg.To, ",")),
		logger.String("subject", msg.Subject),
	)
	return nil
}
