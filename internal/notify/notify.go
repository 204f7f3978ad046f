// Package notify delivers leave decision messages to employees.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"dayflow-backend/internal/model"
)

// LeaveNotifier is told about every admin decision on a leave request.
type LeaveNotifier interface {
	LeaveDecided(ctx context.Context, to model.User, leave model.LeaveRequest)
}

// Nop drops every notification.
type Nop struct{}

func (Nop) LeaveDecided(context.Context, model.User, model.LeaveRequest) {}

// SMTPConfig describes the outgoing mail server.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// Sender abstracts gomail's dialer so tests can capture messages.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends leave decisions by email. Delivery is best effort: it runs in
// its own goroutine and failures are only logged.
type Mailer struct {
	from    string
	company func() string
	sender  Sender
	log     *slog.Logger
}

// NewMailer builds a Mailer on a gomail dialer. company supplies the current
// company name for the message subject.
func NewMailer(cfg SMTPConfig, company func() string, log *slog.Logger) *Mailer {
	return NewMailerWithSender(cfg.From, gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password), company, log)
}

func NewMailerWithSender(from string, sender Sender, company func() string, log *slog.Logger) *Mailer {
	return &Mailer{from: from, company: company, sender: sender, log: log}
}

func (m *Mailer) LeaveDecided(ctx context.Context, to model.User, leave model.LeaveRequest) {
	if to.Email == "" {
		return
	}
	msg := m.leaveMessage(to, leave)

	go func() {
		if err := m.sender.DialAndSend(msg); err != nil {
			m.log.WarnContext(ctx, "Failed to send leave notification",
				"leave_id", leave.ID, "to", to.Email, "error", err)
			return
		}
		m.log.DebugContext(ctx, "Leave notification sent", "leave_id", leave.ID, "to", to.Email)
	}()
}

func (m *Mailer) leaveMessage(to model.User, leave model.LeaveRequest) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", to.Email, to.Name)
	msg.SetHeader("Subject", fmt.Sprintf("[%s] Leave request %s", m.company(), leave.Status))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour %s leave request from %s to %s is now %s.\n",
		to.Name, leave.LeaveType, leave.StartDate, leave.EndDate, leave.Status,
	))
	return msg
}

var (
	_ LeaveNotifier = Nop{}
	_ LeaveNotifier = (*Mailer)(nil)
	_ Sender        = (*gomail.Dialer)(nil)
)
