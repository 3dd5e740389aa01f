package ports

import "context"

// PaymentGateway abstracts the card payment provider. The service never
// touches card data itself; it opens an intent with the provider and hands
// the client secret to the browser, which completes the charge directly.
type PaymentGateway interface {
	// CreateIntent opens a payment intent for the given amount (in the
	// provider's smallest currency unit) and returns the client secret the
	// frontend needs to confirm the charge.
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}
