package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/account"
	"github.com/stripe/stripe-go/v79/accountlink"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"

	"github.com/nubarber/booking-api/internal/httperr"
)

// platformFeePercent is the cut taken on every paid booking before the
// transfer to the shop's connected account.
const platformFeePercent = 10

type Client struct {
	log zerolog.Logger
}

func New(secretKey string, log zerolog.Logger) *Client {
	stripe.Key = secretKey
	return &Client{log: log}
}

type CheckoutParams struct {
	BookingID          uint
	ShopSlug           string
	ConnectedAccountID string
	ServiceName        string
	StaffName          string
	CustomerEmail      string
	Price              float64
	Origin             string
}

// CreateBookingCheckout opens a hosted checkout session for one booking. The
// charge lands on the platform account with a destination transfer to the
// shop, minus the platform fee. The success URL routes back through the
// public confirmation endpoint carrying the session and booking ids.
func (c *Client) CreateBookingCheckout(ctx context.Context, p CheckoutParams) (string, error) {
	if p.ConnectedAccountID == "" {
		return "", httperr.ErrBusiness("stripe_not_connected")
	}

	amount := int64(math.Round(p.Price * 100))
	fee := int64(math.Round(float64(amount) * platformFeePercent / 100))

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(p.CustomerEmail),
		SuccessURL: stripe.String(fmt.Sprintf(
			"%s/api/public/%s/bookings/confirm?session_id={CHECKOUT_SESSION_ID}&booking_id=%d",
			p.Origin, p.ShopSlug, p.BookingID,
		)),
		CancelURL: stripe.String(fmt.Sprintf("%s/%s", p.Origin, p.ShopSlug)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(p.ServiceName),
						Description: stripe.String("Appointment with " + p.StaffName),
					},
					UnitAmount: stripe.Int64(amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(fee),
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(p.ConnectedAccountID),
			},
		},
		Metadata: map[string]string{
			"booking_id": fmt.Sprintf("%d", p.BookingID),
			"shop_slug":  p.ShopSlug,
		},
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(uuid.NewString())

	sess, err := checkoutsession.New(params)
	if err != nil {
		c.log.Error().Err(err).Uint("booking_id", p.BookingID).Msg("stripe checkout session create failed")
		return "", err
	}

	return sess.URL, nil
}

// CreateConnectAccount provisions an express account for a shop owner.
func (c *Client) CreateConnectAccount(ctx context.Context) (string, error) {
	params := &stripe.AccountParams{
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Country: stripe.String("US"),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	params.Context = ctx

	acct, err := account.New(params)
	if err != nil {
		c.log.Error().Err(err).Msg("stripe connect account create failed")
		return "", err
	}
	return acct.ID, nil
}

// CreateOnboardingLink returns the hosted onboarding URL for an express
// account; the return URL marks the connection as complete.
func (c *Client) CreateOnboardingLink(ctx context.Context, accountID, origin string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(origin + "/dashboard/settings"),
		ReturnURL:  stripe.String(origin + "/dashboard/settings?stripe_connected=true"),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := accountlink.New(params)
	if err != nil {
		c.log.Error().Err(err).Str("account_id", accountID).Msg("stripe onboarding link create failed")
		return "", err
	}
	return link.URL, nil
}
