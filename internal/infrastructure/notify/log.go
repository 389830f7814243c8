// Package notify outbound notifications: login alert mail (gomail), follow-up
// SMS (Twilio), and log-only fallbacks when those are not configured.
package notify

import (
	"context"
	"time"

	"github.com/jhoicas/progarden-crm/internal/application/auth"
	"github.com/jhoicas/progarden-crm/internal/application/followup"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

// LogNotifier writes notifications to the log instead of sending them.
type LogNotifier struct {
	log *logger.Logger
}

var (
	_ auth.LoginNotifier = (*LogNotifier)(nil)
	_ followup.SMSSender = (*LogNotifier)(nil)
)

// NewLogNotifier builds the fallback.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log.Named("notify")}
}

// NotifyLogin logs the login.
func (n *LogNotifier) NotifyLogin(_ context.Context, email, username string, at time.Time) error {
	n.log.Info().Str("email", email).Str("username", username).Time("at", at).Msg("login alert (mail disabled)")
	return nil
}

// SendSMS logs the message.
func (n *LogNotifier) SendSMS(_ context.Context, to, body string) error {
	n.log.Info().Str("to", to).Str("body", body).Msg("follow-up sms (twilio disabled)")
	return nil
}
