package product

import "errors"

var ErrNotFound = errors.New("product not found")

type Repository interface {
	List() ([]Product, error)
	GetByID(id int) (Product, error)
	// ListByIDs returns the products whose id appears in ids. Ids with no
	// matching row are simply absent from the result. An empty ids slice
	// returns an empty slice without querying.
	ListByIDs(ids []int) ([]Product, error)
	Create(p Product) (Product, error)
	Update(p Product) (Product, error)
	Delete(id int) error
}
