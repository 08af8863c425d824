package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

type Confirmation struct {
	CustomerName  string
	CustomerEmail string
	ServiceName   string
	StaffName     string
	BookingTime   time.Time
}

type Sender interface {
	SendBookingConfirmation(c Confirmation) error
}

// SMTPSender delivers plain-text mail over unauthenticated SMTP
// (Mailpit-compatible in development, a relay in production).
type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(host, port, from string) *SMTPSender {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "NuBarber <noreply@nubarber.com>"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
	}
}

func (s *SMTPSender) SendBookingConfirmation(c Confirmation) error {
	msg := buildMessage(s.from, c.CustomerEmail, "Your Booking is Confirmed!", confirmationBody(c))
	return smtp.SendMail(s.addr, nil, s.from, []string{c.CustomerEmail}, []byte(msg))
}

func confirmationBody(c Confirmation) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour booking is confirmed.\n\nService: %s\nWith: %s\nWhen: %s\n\nWe look forward to seeing you soon!\n",
		c.CustomerName,
		c.ServiceName,
		c.StaffName,
		c.BookingTime.Format("Monday, January 2, 2006 at 15:04"),
	)
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
