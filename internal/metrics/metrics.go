package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nubarber",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by payment path.",
		},
		[]string{"payment"},
	)

	bookingConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nubarber",
			Name:      "booking_confirmed_total",
			Help:      "Count of bookings confirmed as paid.",
		},
	)

	checkoutFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nubarber",
			Name:      "checkout_failed_total",
			Help:      "Count of checkout sessions that could not be created.",
		},
	)

	confirmationEmail = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nubarber",
			Name:      "confirmation_email_total",
			Help:      "Count of confirmation email attempts by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingConfirmed, checkoutFailed, confirmationEmail)
	})
}

func IncBookingCreated(payment string) {
	bookingCreated.WithLabelValues(payment).Inc()
}

func IncBookingConfirmed() {
	bookingConfirmed.Inc()
}

func IncCheckoutFailed() {
	checkoutFailed.Inc()
}

func IncConfirmationEmail(result string) {
	confirmationEmail.WithLabelValues(result).Inc()
}
