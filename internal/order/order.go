package order

import "github.com/digitalhippo/checkout-backend/internal/product"

// Order links a user to the products of a single checkout. UserID and
// IsPaid are always server-assigned: create requests never carry them and
// the paid flag only ever transitions false to true.
type Order struct {
	ID         int   `json:"orderId"`
	UserID     int   `json:"userId"`
	ProductIDs []int `json:"products"`
	IsPaid     bool  `json:"isPaid"`

	// Products holds the expanded product rows when the order was loaded
	// with its relations (receipt rendering needs names and prices).
	Products []product.Product `json:"productDetails,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
