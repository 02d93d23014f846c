package payment

import (
	"context"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
)

type StripeProvider struct {
	successURL string
	cancelURL  string
}

var _ Provider = (*StripeProvider)(nil)

func NewStripeProvider(secretKey, successURL, cancelURL string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CreateSession opens a one-item card checkout in payment mode and returns
// the hosted session id.
func (p *StripeProvider) CreateSession(ctx context.Context, item LineItem) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(item.Currency),
					UnitAmount: stripe.Int64(item.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(item.Name),
						Description: stripe.String(item.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
	}
	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.ID, nil
}

// SessionPaid looks the session up at Stripe and reports whether its
// payment has settled.
func (p *StripeProvider) SessionPaid(ctx context.Context, sessionID string) (bool, error) {
	s, err := session.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
	})
	if err != nil {
		return false, err
	}
	return s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}
