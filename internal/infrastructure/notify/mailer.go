package notify

import (
	"context"
	"fmt"
	"html"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/progarden-crm/internal/application/auth"
	"github.com/jhoicas/progarden-crm/pkg/config"
)

// LoginAlertSubject subject of the login notification.
const LoginAlertSubject = "New Login Alert - Pro Garden CRM"

// mailDialer the part of *gomail.Dialer the mailer uses.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer sends the login notification through SMTP.
type SMTPMailer struct {
	from   string
	dialer mailDialer
}

var _ auth.LoginNotifier = (*SMTPMailer)(nil)

// NewSMTPMailer builds a mailer authenticated as cfg.User, which is also the sender.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		from:   cfg.User,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// NotifyLogin mails the account owner. gomail has no context support, so ctx
// is only checked before dialing.
func (m *SMTPMailer) NotifyLogin(ctx context.Context, email, username string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", LoginAlertSubject)
	msg.SetBody("text/html", LoginAlertBody(email, username, at))
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("notify: send login alert: %w", err)
	}
	return nil
}

// LoginAlertBody HTML body of the login notification.
func LoginAlertBody(email, username string, at time.Time) string {
	return fmt.Sprintf(`<html>
<body>
<h2>New Login Detected</h2>
<p>Hello Admin,</p>
<p>A new login was detected for the account <strong>%s</strong> (%s).</p>
<p>Time: %s</p>
<p>If this was not you, please change your password immediately.</p>
<p>Pro Garden CRM</p>
</body>
</html>`, html.EscapeString(username), html.EscapeString(email), at.Format("2006-01-02 15:04:05"))
}
