package product

// Product maps to the `product` table. PriceID is the payment gateway's
// price reference; products without one are sold but never billed through
// the gateway (they are skipped when building checkout line items).
type Product struct {
	ID          int     `json:"productId"`
	Name        string  `json:"productName"`
	Price       int     `json:"productPrice"`
	Description string  `json:"productDesc,omitempty"`
	PriceID     *string `json:"priceId,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}
