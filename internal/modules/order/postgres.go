package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context) ([]*OrderDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.quantity, c.name AS customer_name,
		       p.product_name, pr.price, o.total
		FROM orders o
		JOIN customer c ON o.customer_id = c.id
		JOIN product p ON o.product_id = p.id
		JOIN price pr ON p.id = pr.product_id
		ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*OrderDetail
	for rows.Next() {
		d := &OrderDetail{}
		if err := rows.Scan(&d.ID, &d.Quantity, &d.CustomerName,
			&d.ProductName, &d.ProductPrice, &d.Total); err != nil {
			return nil, err
		}
		orders = append(orders, d)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	o := &Order{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, product_id, quantity, total, created_at, updated_at
		FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.Total,
			&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) CurrentPrice(ctx context.Context, productID uuid.UUID) (decimal.Decimal, bool, error) {
	var price decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`SELECT price FROM price WHERE product_id=$1 ORDER BY effective_date DESC LIMIT 1`,
		productID).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Decimal{}, false, nil
	}
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	return price, true, nil
}

func (r *postgresRepo) Create(ctx context.Context, o *Order) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, product_id, quantity, total, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW())`,
		o.ID, o.CustomerID, o.ProductID, o.Quantity, o.Total)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, o *Order) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE orders SET customer_id=$1, product_id=$2, quantity=$3, total=$4, updated_at=NOW()
		WHERE id=$5`,
		o.CustomerID, o.ProductID, o.Quantity, o.Total, o.ID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}
