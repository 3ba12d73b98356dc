package order

import (
	"testing"

	"github.com/digitalhippo/checkout-backend/internal/product"
)

type stubRepo struct {
	orders map[int]*Order
	nextID int
}

func newStubRepo() *stubRepo {
	return &stubRepo{orders: map[int]*Order{}, nextID: 1}
}

func (r *stubRepo) Create(ord Order) (Order, error) {
	ord.ID = r.nextID
	ord.IsPaid = false
	r.orders[ord.ID] = &ord
	r.nextID++
	return ord, nil
}

func (r *stubRepo) GetByID(id int) (Order, error) {
	ord, ok := r.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return *ord, nil
}

func (r *stubRepo) ListByUser(userID int) ([]Order, error) {
	out := []Order{}
	for _, ord := range r.orders {
		if ord.UserID == userID {
			out = append(out, *ord)
		}
	}
	return out, nil
}

func (r *stubRepo) MarkPaid(id int) error {
	ord, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	ord.IsPaid = true
	return nil
}

func (r *stubRepo) Delete(id int) error {
	if _, ok := r.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

type stubProducts struct{}

func (stubProducts) List() ([]product.Product, error) { return nil, nil }
func (stubProducts) GetByID(id int) (product.Product, error) { return product.Product{}, nil }
func (stubProducts) Create(p product.Product) (product.Product, error) { return p, nil }
func (stubProducts) Update(p product.Product) (product.Product, error) { return p, nil }
func (stubProducts) Delete(id int) error { return nil }
func (stubProducts) ListByIDs(ids []int) ([]product.Product, error) {
	out := make([]product.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, product.Product{ID: id, Name: "p"})
	}
	return out, nil
}

func TestGetByID_ScopedToOwner(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, stubProducts{})

	ord, err := svc.Create(7, []int{1})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetByID(ord.ID, Scope{UserID: 7}); err != nil {
		t.Fatalf("owner should read own order: %v", err)
	}
	// another customer sees NotFound, not Forbidden, to avoid existence leaks
	if _, err := svc.GetByID(ord.ID, Scope{UserID: 8}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign reader, got %v", err)
	}
	if _, err := svc.GetByID(ord.ID, Scope{UserID: 99, Admin: true}); err != nil {
		t.Fatalf("admin should read any order: %v", err)
	}
}

func TestCreate_ForcesServerFields(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, stubProducts{})

	ord, err := svc.Create(7, []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if ord.UserID != 7 {
		t.Errorf("user = %d, want 7", ord.UserID)
	}
	if ord.IsPaid {
		t.Error("new orders are always unpaid")
	}

	if _, err := svc.Create(7, nil); err == nil {
		t.Error("expected error for empty product list")
	}
	if _, err := svc.Create(0, []int{1}); err == nil {
		t.Error("expected error for missing user")
	}
}

func TestGetWithProducts(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, stubProducts{})

	ord, err := svc.Create(7, []int{3, 5})
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.GetWithProducts(ord.ID, SystemScope)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Products) != 2 {
		t.Fatalf("expected 2 expanded products, got %d", len(got.Products))
	}
}

func TestDelete_AdminOnly(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, stubProducts{})

	ord, _ := svc.Create(7, []int{1})

	if err := svc.Delete(ord.ID, Scope{UserID: 7}); err != ErrNotFound {
		t.Fatalf("non-admin delete should fail, got %v", err)
	}
	if err := svc.Delete(ord.ID, Scope{Admin: true}); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}
