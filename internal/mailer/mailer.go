package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional notifications to property owners.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(host string, port int, from, password string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, from, password),
		from:   from,
	}
}

func (m *Mailer) SendPropertyPublishedEmail(to, propertyTitle string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your listing is now live")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello,\n\nYour property %q has been published and is now visible to buyers.\n\nThank you for using our marketplace.",
		propertyTitle))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send publish notification to %s: %w", to, err)
	}
	return nil
}
