package order

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	// is_paid is forced false at the SQL level; the caller's value is ignored
	err := r.db.QueryRow(`INSERT INTO orders (user_id, products, is_paid, created_at, updated_at)
        VALUES ($1,$2,false,$3,$4)
        RETURNING order_id, is_paid`,
		ord.UserID, pq.Array(ord.ProductIDs), ord.CreatedAt, ord.UpdatedAt).Scan(&ord.ID, &ord.IsPaid)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	var ord Order
	err := r.db.QueryRow(`SELECT order_id, user_id, products, is_paid, created_at, updated_at FROM orders WHERE order_id = $1`, id).
		Scan(&ord.ID, &ord.UserID, pq.Array(&ord.ProductIDs), &ord.IsPaid, &ord.CreatedAt, &ord.UpdatedAt)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(`SELECT order_id, user_id, products, is_paid, created_at, updated_at
		FROM orders WHERE user_id = $1 ORDER BY order_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var ord Order
		if err := rows.Scan(&ord.ID, &ord.UserID, pq.Array(&ord.ProductIDs), &ord.IsPaid, &ord.CreatedAt, &ord.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) MarkPaid(id int) error {
	// updated_at stays in the same RFC3339 format the other writers use
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.Exec(`UPDATE orders SET is_paid = true, updated_at = $1 WHERE order_id = $2`, now, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
