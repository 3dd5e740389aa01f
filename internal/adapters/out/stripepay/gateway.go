// Package stripepay implements the payment gateway port on top of Stripe
// payment intents. The service only ever handles intent metadata and client
// secrets; card data goes from the browser straight to Stripe.
package stripepay

import (
	"context"

	"parcelshift/internal/pkg/errs"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Gateway creates Stripe payment intents for parcel delivery charges.
type Gateway struct {
	api *client.API
}

// NewGateway creates a gateway authenticated with the given secret key.
func NewGateway(secretKey string) (*Gateway, error) {
	if secretKey == "" {
		return nil, errs.NewValueIsRequiredError("secretKey")
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &Gateway{api: api}, nil
}

// CreateIntent opens a payment intent for the given amount in the smallest
// currency unit and returns its client secret.
func (g *Gateway) CreateIntent(
	ctx context.Context,
	amountCents int64,
	currency string,
) (string, error) {
	if amountCents <= 0 {
		return "", errs.NewValueIsInvalidError("amountCents")
	}
	if currency == "" {
		return "", errs.NewValueIsRequiredError("currency")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}
