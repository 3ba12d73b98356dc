package order

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

// rfc3339Arg matches any string in the timestamp format the repositories
// write, keeping the updated_at column single-format.
type rfc3339Arg struct{}

func (rfc3339Arg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func TestCreate_ForcesUnpaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"order_id", "is_paid"}).AddRow(42, false)
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(7, pq.Array([]int{1, 2}), "t", "t").
		WillReturnRows(rows)

	// the caller's IsPaid value must be ignored
	ord, err := repo.Create(Order{UserID: 7, ProductIDs: []int{1, 2}, IsPaid: true, CreatedAt: "t", UpdatedAt: "t"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ord.ID != 42 {
		t.Errorf("order id = %d, want 42", ord.ID)
	}
	if ord.IsPaid {
		t.Error("created order must be unpaid")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT order_id").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "user_id", "products", "is_paid", "created_at", "updated_at"}))

	if _, err := repo.GetByID(404); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET is_paid = true").
		WithArgs(rfc3339Arg{}, 42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkPaid(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkPaid_UnknownOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET is_paid = true").
		WithArgs(rfc3339Arg{}, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkPaid(404); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"order_id", "user_id", "products", "is_paid", "created_at", "updated_at"}).
		AddRow(2, 7, "{3,4}", true, "t", "t").
		AddRow(1, 7, "{1}", false, "t", "t")
	mock.ExpectQuery("FROM orders WHERE user_id").WithArgs(7).WillReturnRows(rows)

	orders, err := repo.ListByUser(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if !orders[0].IsPaid || orders[1].IsPaid {
		t.Errorf("paid flags = %v, %v", orders[0].IsPaid, orders[1].IsPaid)
	}
	if len(orders[0].ProductIDs) != 2 {
		t.Errorf("products = %v, want two entries", orders[0].ProductIDs)
	}
}
