package order

import (
	"errors"
	"time"

	"github.com/digitalhippo/checkout-backend/internal/product"
)

// Scope identifies the caller for access-rule enforcement: admins read and
// mutate any order, everyone else only their own.
type Scope struct {
	UserID int
	Admin  bool
}

// SystemScope is used by server-internal callers (the payment workflow),
// which bypass per-user restrictions.
var SystemScope = Scope{Admin: true}

type ServiceInterface interface {
	Create(userID int, productIDs []int) (Order, error)
	GetByID(id int, scope Scope) (Order, error)
	GetWithProducts(id int, scope Scope) (Order, error)
	IsPaid(id int, scope Scope) (bool, error)
	ListByUser(userID int) ([]Order, error)
	MarkPaid(id int) error
	Delete(id int, scope Scope) error
}

type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(r Repository, ps product.ServiceInterface) *Service {
	return &Service{repo: r, products: ps}
}

var _ ServiceInterface = (*Service)(nil)

// Create stores a new unpaid order owned by userID. The owner and the paid
// flag come from the server, never from the request payload.
func (s *Service) Create(userID int, productIDs []int) (Order, error) {
	if userID <= 0 {
		return Order{}, errors.New("invalid user")
	}
	if len(productIDs) == 0 {
		return Order{}, errors.New("order must reference at least one product")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(Order{
		UserID:     userID,
		ProductIDs: productIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *Service) GetByID(id int, scope Scope) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	// non-admins must not learn whether someone else's order exists
	if !scope.Admin && ord.UserID != scope.UserID {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

// GetWithProducts loads an order together with its product rows expanded.
func (s *Service) GetWithProducts(id int, scope Scope) (Order, error) {
	ord, err := s.GetByID(id, scope)
	if err != nil {
		return Order{}, err
	}
	prods, err := s.products.ListByIDs(ord.ProductIDs)
	if err != nil {
		return Order{}, err
	}
	ord.Products = prods
	return ord, nil
}

// IsPaid returns only the paid flag, for status polling.
func (s *Service) IsPaid(id int, scope Scope) (bool, error) {
	ord, err := s.GetByID(id, scope)
	if err != nil {
		return false, err
	}
	return ord.IsPaid, nil
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) MarkPaid(id int) error {
	return s.repo.MarkPaid(id)
}

func (s *Service) Delete(id int, scope Scope) error {
	if !scope.Admin {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
