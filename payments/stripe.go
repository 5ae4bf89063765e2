// stripe.go - Thin wrapper around the Stripe API client
// One client is constructed at startup and shared by all requests.

package payments // Declares the package name

import (
	"context"

	stripe "github.com/stripe/stripe-go/v79" // Stripe API types
	"github.com/stripe/stripe-go/v79/client" // Stripe API client
)

// Client - Process-wide Stripe client
type Client struct {
	api *client.API
}

// New - Builds a Stripe client from the secret key
func New(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

// CreateIntent - Creates a card payment intent for the given amount in
// minor units (cents), fixed to USD, and returns its client secret.
// No idempotency key is attached; duplicate calls create duplicate intents.
func (c *Client) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
