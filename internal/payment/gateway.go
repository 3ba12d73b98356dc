package payment

// EventCheckoutCompleted is the only event type that triggers an order
// mutation; every other type is acknowledged and ignored.
const EventCheckoutCompleted = "checkout.session.completed"

// LineItem references a gateway-side price. LockQuantity disables quantity
// adjustment in the hosted checkout (used for the platform fee).
type LineItem struct {
	PriceID      string
	Quantity     int64
	LockQuantity bool
}

type SessionParams struct {
	SuccessURL     string
	CancelURL      string
	PaymentMethods []string
	LineItems      []LineItem
	Metadata       map[string]string
}

// Event is a verified webhook event reduced to what the handler needs.
type Event struct {
	Type     string
	Metadata map[string]string
}

// Gateway wraps the payment provider. A nil Gateway is the first-class
// "payment disabled" mode: callers branch on it instead of failing.
type Gateway interface {
	CreateSession(p SessionParams) (url string, err error)
	// ConstructEvent verifies the raw webhook body against the signature
	// header and the shared webhook secret.
	ConstructEvent(payload []byte, sigHeader string) (Event, error)
}
