package payment

import (
	"encoding/json"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

type stripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway builds the Stripe-backed gateway. An empty secret key
// yields a nil Gateway, which switches the whole payment subsystem into
// pass-through mode rather than erroring at call sites.
func NewStripeGateway(secretKey, webhookSecret string) Gateway {
	if secretKey == "" {
		return nil
	}
	return &stripeGateway{
		api:           client.New(secretKey, nil),
		webhookSecret: webhookSecret,
	}
}

func (g *stripeGateway) CreateSession(p SessionParams) (string, error) {
	params := &stripe.CheckoutSessionParams{
		SuccessURL:         stripe.String(p.SuccessURL),
		CancelURL:          stripe.String(p.CancelURL),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice(p.PaymentMethods),
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	for _, li := range p.LineItems {
		item := &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(li.PriceID),
			Quantity: stripe.Int64(li.Quantity),
		}
		if li.LockQuantity {
			item.AdjustableQuantity = &stripe.CheckoutSessionLineItemAdjustableQuantityParams{
				Enabled: stripe.Bool(false),
			}
		}
		params.LineItems = append(params.LineItems, item)
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

func (g *stripeGateway) ConstructEvent(payload []byte, sigHeader string) (Event, error) {
	ev, err := webhook.ConstructEvent(payload, sigHeader, g.webhookSecret)
	if err != nil {
		return Event{}, err
	}

	var sess stripe.CheckoutSession
	if len(ev.Data.Raw) > 0 {
		if err := json.Unmarshal(ev.Data.Raw, &sess); err != nil {
			return Event{}, err
		}
	}
	return Event{Type: string(ev.Type), Metadata: sess.Metadata}, nil
}
