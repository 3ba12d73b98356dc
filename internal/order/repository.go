package order

import "errors"

var ErrNotFound = errors.New("order not found")

type Repository interface {
	// Create persists a new order. The paid flag is written as false no
	// matter what the passed struct carries.
	Create(ord Order) (Order, error)
	GetByID(id int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	// MarkPaid sets is_paid unconditionally. Repeated calls are safe: the
	// flag is monotonic, so duplicate webhook deliveries converge on the
	// same row state.
	MarkPaid(id int) error
	Delete(id int) error
}
