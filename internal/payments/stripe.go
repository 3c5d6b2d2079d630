package payments

import (
	"context"
	"fmt"
	"math"
	"strings"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

// StripeProvider wraps stripe-go PaymentIntent creation and lookup for
// the online payment method.
type StripeProvider struct {
	currency string
}

// NewStripeProvider configures the global stripe client with the API key.
func NewStripeProvider(apiKey, currency string) *StripeProvider {
	stripe.Key = apiKey
	return &StripeProvider{currency: strings.ToLower(currency)}
}

// CreateIntent opens an intent for amount (major currency units) with
// the booking and client ids attached as metadata for reconciliation.
func (p *StripeProvider) CreateIntent(ctx context.Context, bookingID, clientID string, amount float64) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(p.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("booking_id", bookingID)
	params.AddMetadata("client_id", clientID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// IntentSucceeded reports whether the intent has reached succeeded.
func (p *StripeProvider) IntentSucceeded(ctx context.Context, intentID string) (bool, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(intentID, params)
	if err != nil {
		return false, fmt.Errorf("stripe get intent: %w", err)
	}

	return pi.Status == stripe.PaymentIntentStatusSucceeded, nil
}
