package services

import (
	"context"
	"fmt"
	"time"

	"github.com/freshnest/freshnest-cleaning-api/config"
	"github.com/freshnest/freshnest-cleaning-api/models"
	"github.com/freshnest/freshnest-cleaning-api/utils"
	"github.com/wneessen/go-mail"
)

// Notifier sends customer-facing booking notifications. Delivery is
// best-effort: callers log failures and never fail the booking on them.
type Notifier interface {
	SendBookingConfirmation(booking *models.Booking) error
}

// SMTPNotifier implements Notifier over an SMTP transport
type SMTPNotifier struct {
	client   *mail.Client
	from     string
	fromName string
	timeout  time.Duration
}

// NewSMTPNotifier builds a notifier from the application's SMTP configuration
func NewSMTPNotifier(cfg *config.Config) (*SMTPNotifier, error) {
	client, err := mail.NewClient(
		cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize smtp client: %w", err)
	}

	return &SMTPNotifier{
		client:   client,
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
		timeout:  10 * time.Second,
	}, nil
}

// SendBookingConfirmation emails the customer their booking details. The
// booking must have its Service association loaded. The SMTP dial and send
// are bounded by the notifier's timeout so a slow mail server cannot hold
// up the request path.
func (n *SMTPNotifier) SendBookingConfirmation(booking *models.Booking) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(n.fromName, n.from); err != nil {
		return fmt.Errorf("failed to set from address: %w", err)
	}
	if err := msg.To(booking.CustomerEmail); err != nil {
		return fmt.Errorf("failed to set to address: %w", err)
	}
	msg.Subject("Cleaning Service Booking Confirmation")
	msg.SetBodyString(mail.TypeTextPlain, confirmationBody(booking))

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

// confirmationBody composes the plain-text confirmation message
func confirmationBody(booking *models.Booking) string {
	return fmt.Sprintf(`Dear %s,

Thank you for booking our cleaning service!

Booking Reference: %s
Service: %s
Date: %s
Time: %s
Address: %s
Total Price: $%.2f

We will contact you soon to confirm your booking.

Best regards,
FreshNest Cleaning Team
`,
		booking.CustomerName,
		booking.BookingReference,
		booking.Service.Name,
		booking.BookingDate.Format(utils.BookingDateLayout),
		booking.BookingTime,
		booking.CustomerAddress,
		booking.TotalPrice,
	)
}

// NoopNotifier is used when no SMTP transport is configured
type NoopNotifier struct{}

// SendBookingConfirmation does nothing and reports success
func (NoopNotifier) SendBookingConfirmation(*models.Booking) error {
	return nil
}
