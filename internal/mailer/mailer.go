package mailer

import (
	"context"
	"fmt"
	"io"
	"log"

	"gopkg.in/gomail.v2"

	"tingz-storefront/internal/domain"
)

// SMTP sends order notifications through an SMTP relay. When no SMTP
// credentials are configured the dialer is nil and Send only logs, so the
// storefront stays usable in local setups without a mail account.
type SMTP struct {
	dialer *gomail.Dialer
	from   string
	to     string
	logger *log.Logger
}

type Config struct {
	Host string
	Port int
	User string
	Pass string
	To   string
}

func NewSMTP(cfg Config, logger *log.Logger) *SMTP {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.User == "" || cfg.Pass == "" {
		logger.Printf("mailer: SMTP credentials unset, order emails disabled")
		return &SMTP{from: "noreply@tingz.example", to: cfg.To, logger: logger}
	}
	return &SMTP{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   cfg.User,
		to:     cfg.To,
		logger: logger,
	}
}

func (m *SMTP) Send(ctx context.Context, n domain.OrderNotification) error {
	if m.dialer == nil {
		m.logger.Printf("mailer: skipping send (disabled), order from %s total %s", n.FromEmail, n.TotalPrice)
		return nil
	}

	body := fmt.Sprintf(
		"New order from %s <%s>\nPhone: %s\nPayment code: %s\n\n%s\n\nTotal: %s\n",
		n.FromName, n.FromEmail, n.Phone, n.PaymentCode, n.OrderDetails, n.TotalPrice,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", n.FromEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Order confirmation - %s", n.FromName))
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Printf("mailer: send failed: %v", err)
		return err
	}
	m.logger.Printf("mailer: order notification sent to %s", m.to)
	return nil
}
