package product

import (
	"errors"
	"time"
)

// ServiceInterface is consumed by the payment session service.
type ServiceInterface interface {
	List() ([]Product, error)
	GetByID(id int) (Product, error)
	ListByIDs(ids []int) ([]Product, error)
	Create(p Product) (Product, error)
	Update(p Product) (Product, error)
	Delete(id int) error
}

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Create(p Product) (Product, error) {
	if p.Name == "" {
		return Product{}, errors.New("product name is required")
	}
	if p.Price < 0 {
		return Product{}, errors.New("price must be non-negative")
	}
	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(p)
}

// Update replaces every mutable field of the product, price_id included,
// so a gateway price can be attached after creation.
func (s *Service) Update(p Product) (Product, error) {
	if p.Name == "" {
		return Product{}, errors.New("product name is required")
	}
	if p.Price < 0 {
		return Product{}, errors.New("price must be non-negative")
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
