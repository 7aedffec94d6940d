package delivery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

const implicitTLSPort = 465

// State records whether this run already sent its reports. It is passed in and
// returned explicitly so a second delivery within the same run is a no-op.
type State struct {
	Delivered bool
}

type Settings struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Sender    string
	Recipient string
}

// Sender is the part of the SMTP client used for delivery.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type Mailer struct {
	settings Settings
	sender   Sender
}

// NewMailer creates a mailer sending through an authenticated relay with TLS required.
func NewMailer(settings Settings) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(settings.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(settings.Username),
		mail.WithPassword(settings.Password),
	}
	if settings.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(settings.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating mail client: %w", err)
	}
	return NewMailerWithSender(settings, client), nil
}

func NewMailerWithSender(settings Settings, sender Sender) *Mailer {
	return &Mailer{settings: settings, sender: sender}
}

// Deliver sends one message with every attachment. Nothing is sent when the
// state is already delivered or there is nothing to attach. Report files are
// never touched, whatever the outcome.
func (m *Mailer) Deliver(ctx context.Context, state State, period string, attachments []string) (State, error) {
	if state.Delivered {
		log.Warn("Reports were already delivered in this run, skipping")
		return state, nil
	}
	if len(attachments) == 0 {
		log.Info("No reports to deliver")
		return state, nil
	}

	msg, err := m.buildMessage(period, attachments)
	if err != nil {
		return state, err
	}

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		log.Errorf("Failed to send email: %v", err)
		return state, fmt.Errorf("sending reports to %s: %w", m.settings.Recipient, err)
	}

	log.Infof("Email sent to %s with %d attachment(s)", m.settings.Recipient, len(attachments))
	return State{Delivered: true}, nil
}

func (m *Mailer) buildMessage(period string, attachments []string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.settings.Sender); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.settings.Recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("Worklog reports %s", period))
	msg.SetDate()
	msg.SetMessageID()

	names := make([]string, 0, len(attachments))
	for _, path := range attachments {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("attachment %s does not exist", path)
			}
			return nil, fmt.Errorf("attachment %s: %w", path, err)
		}
		msg.AttachFile(path)
		names = append(names, filepath.Base(path))
	}

	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Attached are the worklog reports for %s:\n\n%s\n", period, strings.Join(names, "\n")))
	return msg, nil
}
