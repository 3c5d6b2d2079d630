package ports

import (
	"context"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

// PaymentProvider creates and inspects payment intents at the external
// gateway. Refunds stay a manual admin action and are not modeled here.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, bookingID, clientID string, amount float64) (*domain.PaymentIntent, error)
	IntentSucceeded(ctx context.Context, intentID string) (bool, error)
}
