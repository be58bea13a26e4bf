// Package outbox reads the transactional event rows written alongside orders.
// Publishing is asynchronous: a failed publish leaves the row unprocessed and
// the next poll retries it.
package outbox

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Event struct {
	ID        int64
	OrderID   string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

type Repository interface {
	Unprocessed(ctx context.Context, limit int) ([]Event, error)
	MarkProcessed(ctx context.Context, id int64) error
}

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Unprocessed(ctx context.Context, limit int) ([]Event, error) {
	const q = `
SELECT id, order_id, event_type, payload, created_at
FROM outbox_events
WHERE processed_at IS NULL
ORDER BY created_at ASC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.ID, &ev.OrderID, &ev.EventType, &ev.Payload, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *postgresRepo) MarkProcessed(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `
UPDATE outbox_events
SET processed_at = now()
WHERE id = $1
`, id)
	return err
}
