package mail

import (
	"time"

	"github.com/digitalhippo/checkout-backend/internal/product"
)

// Receipt carries everything the receipt email renders. Fee is the flat
// transaction fee in cents; zero omits the fee row.
type Receipt struct {
	Date     time.Time
	Email    string
	OrderID  int
	Products []product.Product
	Fee      int
}

// Total is the amount billed: the product prices plus the transaction fee.
func (r Receipt) Total() int {
	total := r.Fee
	for _, p := range r.Products {
		total += p.Price
	}
	return total
}

// Mailer dispatches a rendered receipt and returns the provider's message
// id. Implementations must treat a failed send as an error; the caller
// decides whether payment state survives it (it does).
type Mailer interface {
	SendReceipt(r Receipt) (string, error)
}
