package review

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"photogifthub/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Review, error) {
	const q = `
INSERT INTO reviews (product_id, reviewer, rating, comment)
VALUES ($1, $2, $3, $4)
RETURNING id::text, product_id, reviewer, rating, comment, created_at
`
	var rev domain.Review
	if err := r.pool.QueryRow(ctx, q, in.ProductID, in.Reviewer, in.Rating, in.Comment).Scan(
		&rev.ID,
		&rev.ProductID,
		&rev.Reviewer,
		&rev.Rating,
		&rev.Comment,
		&rev.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Review, error) {
	const q = `
SELECT id::text, product_id, reviewer, rating, comment, created_at
FROM reviews
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(
			&rev.ID,
			&rev.ProductID,
			&rev.Reviewer,
			&rev.Rating,
			&rev.Comment,
			&rev.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *postgresRepo) Stats(ctx context.Context) (*domain.ReviewStats, error) {
	const q = `
SELECT rating, COUNT(*)
FROM reviews
GROUP BY rating
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := domain.ReviewStats{Distribution: map[int]int64{}}
	var weighted int64
	for rows.Next() {
		var rating int
		var count int64
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		stats.Distribution[rating] = count
		stats.Count += count
		weighted += int64(rating) * count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if stats.Count > 0 {
		stats.Average = float64(weighted) / float64(stats.Count)
	}
	return &stats, nil
}
