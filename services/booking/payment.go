package booking

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentGateway creates payment intents for card bookings. Cash-on-delivery
// bookings never touch the gateway.
type PaymentGateway interface {
	// CreateIntent registers an intent for the amount and returns its id.
	CreateIntent(ctx context.Context, amount float64, currency, transactionID string) (string, error)
}

// StripeGateway is the production PaymentGateway backed by Stripe.
type StripeGateway struct{}

// CreateIntent creates a Stripe PaymentIntent tagged with the transaction id
// so webhooks can be matched back to the booking.
func (StripeGateway) CreateIntent(ctx context.Context, amount float64, currency, transactionID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("transactionId", transactionID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ID, nil
}
