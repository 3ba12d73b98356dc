package payment

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"

	"github.com/digitalhippo/checkout-backend/internal/order"
	"github.com/digitalhippo/checkout-backend/internal/product"
)

var (
	// ErrEmptyCart is returned when the request carries no resolvable products.
	ErrEmptyCart = errors.New("productIds cannot be empty")
	// ErrGatewayUnavailable surfaces a failed checkout-session creation when
	// degraded fallback is switched off.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// platformFeeCents is the amount behind the platform fee price: a flat $1
// charge added to every checkout session. The receipt bills the same value.
const platformFeeCents = 100

// SessionConfig holds the session-creation knobs taken from the environment.
type SessionConfig struct {
	PublicServerURL    string
	PlatformFeePriceID string
	// DegradeOnGatewayFailure, when set, converts gateway errors into the
	// same mark-paid fallback as the gateway-disabled mode. Every fallback
	// is logged so auto-approved orders stay traceable.
	DegradeOnGatewayFailure bool
}

// Service implements checkout-session creation and order-status polling.
type Service struct {
	orders   order.ServiceInterface
	products product.ServiceInterface
	gateway  Gateway
	cfg      SessionConfig
}

func NewService(orders order.ServiceInterface, products product.ServiceInterface, gateway Gateway, cfg SessionConfig) *Service {
	return &Service{orders: orders, products: products, gateway: gateway, cfg: cfg}
}

// GatewayEnabled reports whether a payment provider is configured. False
// means every order is auto-approved (pass-through mode).
func (s *Service) GatewayEnabled() bool {
	return s.gateway != nil
}

// CreateSession creates an order for userID covering productIDs and returns
// the URL the customer should be redirected to. Unknown product ids are
// dropped during resolution; an input that resolves to nothing fails with
// ErrEmptyCart and creates no order.
func (s *Service) CreateSession(userID int, productIDs []int) (string, error) {
	if len(productIDs) == 0 {
		return "", ErrEmptyCart
	}

	products, err := s.products.ListByIDs(productIDs)
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "", ErrEmptyCart
	}

	resolved := make([]int, 0, len(products))
	for _, p := range products {
		resolved = append(resolved, p.ID)
	}

	// user and paid flag are forced server-side inside the order service
	ord, err := s.orders.Create(userID, resolved)
	if err != nil {
		return "", err
	}

	thankYouURL := fmt.Sprintf("%s/thank-you?orderId=%d", s.cfg.PublicServerURL, ord.ID)

	if s.gateway == nil {
		return s.approveWithoutPayment(ord.ID, "gateway not configured", thankYouURL)
	}

	// only products with a gateway price reference are billable; the rest
	// ride along unbilled
	lineItems := make([]LineItem, 0, len(products)+1)
	for _, p := range products {
		if p.PriceID == nil || *p.PriceID == "" {
			continue
		}
		lineItems = append(lineItems, LineItem{PriceID: *p.PriceID, Quantity: 1})
	}
	lineItems = append(lineItems, LineItem{
		PriceID:      s.cfg.PlatformFeePriceID,
		Quantity:     1,
		LockQuantity: true,
	})

	url, err := s.gateway.CreateSession(SessionParams{
		SuccessURL:     thankYouURL,
		CancelURL:      s.cfg.PublicServerURL + "/cart",
		PaymentMethods: []string{"card", "paypal"},
		LineItems:      lineItems,
		Metadata: map[string]string{
			"userId":  strconv.Itoa(userID),
			"orderId": strconv.Itoa(ord.ID),
		},
	})
	if err != nil {
		if !s.cfg.DegradeOnGatewayFailure {
			return "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
		}
		return s.approveWithoutPayment(ord.ID, err.Error(), thankYouURL)
	}
	return url, nil
}

// approveWithoutPayment marks the order paid and sends the customer to the
// thank-you page. Each call is logged with a fallback id so auto-approved
// orders can be reconciled later.
func (s *Service) approveWithoutPayment(orderID int, reason, thankYouURL string) (string, error) {
	fallbackID := uuid.NewString()
	log.Printf("payment: auto-approving order %d without collection (fallback %s): %s", orderID, fallbackID, reason)

	if err := s.orders.MarkPaid(orderID); err != nil {
		return "", err
	}
	return thankYouURL, nil
}

// PollOrderStatus returns only the paid flag of the order, within the
// caller's access scope.
func (s *Service) PollOrderStatus(orderID int, scope order.Scope) (bool, error) {
	return s.orders.IsPaid(orderID, scope)
}
