package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"photogifthub/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context, category string) ([]domain.Product, error) {
	q := `
SELECT id::text, name, description, category, base_price, sizes, materials, colors, image_url, created_at
FROM products
`
	args := []interface{}{}
	if category != "" {
		q += `WHERE category = $1
`
		args = append(args, category)
	}
	q += `ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, name, description, category, base_price, sizes, materials, colors, image_url, created_at
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var sizes, materials, colors []byte
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.BasePrice,
		&sizes,
		&materials,
		&colors,
		&p.ImageURL,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sizes, &p.Sizes); err != nil {
		return nil, fmt.Errorf("unmarshal sizes: %w", err)
	}
	if err := json.Unmarshal(materials, &p.Materials); err != nil {
		return nil, fmt.Errorf("unmarshal materials: %w", err)
	}
	if err := json.Unmarshal(colors, &p.Colors); err != nil {
		return nil, fmt.Errorf("unmarshal colors: %w", err)
	}
	return &p, nil
}
