package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("NuBarber <noreply@nubarber.com>", "jamie@example.com", "Your Booking is Confirmed!", "body text")

	assert.True(t, strings.HasPrefix(msg, "From: NuBarber <noreply@nubarber.com>\r\n"))
	assert.Contains(t, msg, "To: jamie@example.com\r\n")
	assert.Contains(t, msg, "Subject: Your Booking is Confirmed!\r\n")
	assert.Contains(t, msg, "\r\n\r\nbody text\r\n")
}

func TestConfirmationBody(t *testing.T) {
	body := confirmationBody(Confirmation{
		CustomerName: "Jamie",
		ServiceName:  "Haircut",
		StaffName:    "Alex",
		BookingTime:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, body, "Hi Jamie,")
	assert.Contains(t, body, "Service: Haircut")
	assert.Contains(t, body, "With: Alex")
	assert.Contains(t, body, "Monday, March 2, 2026 at 10:00")
}

func TestNewSMTPSender_DefaultFrom(t *testing.T) {
	s := NewSMTPSender(" localhost ", " 1025 ", "")

	assert.Equal(t, "localhost:1025", s.addr)
	assert.Equal(t, "NuBarber <noreply@nubarber.com>", s.from)
}
