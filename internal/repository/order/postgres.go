package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"photogifthub/internal/domain"
)

// EventOrderPlaced is written to the outbox alongside every new order.
const EventOrderPlaced = "order.placed"

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	totals, err := json.Marshal(o.Totals)
	if err != nil {
		return fmt.Errorf("marshal totals: %w", err)
	}
	payload, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO orders (id, user_id, items, customer, totals, payment_method, delivery_type, status, points_earned, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, o.ID, o.UserID, items, customer, totals, o.PaymentMethod, o.DeliveryType, o.Status, o.PointsEarned, o.CreatedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO outbox_events (order_id, event_type, payload)
VALUES ($1, $2, $3)
`, o.ID, EventOrderPlaced, payload); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id, user_id, items, customer, totals, payment_method, delivery_type, status, points_earned, created_at
FROM orders
WHERE id = $1
`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id, user_id, items, customer, totals, payment_method, delivery_type, status, points_earned, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	return r.list(ctx, q, userID)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id, user_id, items, customer, totals, payment_method, delivery_type, status, points_earned, created_at
FROM orders
ORDER BY created_at DESC
`
	return r.list(ctx, q)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET status = $1
WHERE id = $2
`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var items, customer, totals []byte
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&items,
		&customer,
		&totals,
		&o.PaymentMethod,
		&o.DeliveryType,
		&o.Status,
		&o.PointsEarned,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	if err := json.Unmarshal(totals, &o.Totals); err != nil {
		return nil, fmt.Errorf("unmarshal totals: %w", err)
	}
	return &o, nil
}
