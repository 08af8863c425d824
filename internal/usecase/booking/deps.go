package booking

import (
	"context"

	"github.com/nubarber/booking-api/internal/audit"
	"github.com/nubarber/booking-api/internal/payments"
)

// AuditSink receives lifecycle events without blocking the request path.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

// CheckoutStarter opens a hosted payment session for a pending booking.
type CheckoutStarter interface {
	CreateBookingCheckout(ctx context.Context, p payments.CheckoutParams) (string, error)
}
