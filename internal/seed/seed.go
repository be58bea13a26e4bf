package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"photogifthub/internal/domain"
	productsvc "photogifthub/internal/service/product"
)

// Apply loads the built-in catalog into the products table so a fresh
// database serves the same items as degraded mode. Idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range productsvc.SampleCatalog() {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return fmt.Errorf("marshal sizes: %w", err)
	}
	materials, err := json.Marshal(p.Materials)
	if err != nil {
		return fmt.Errorf("marshal materials: %w", err)
	}
	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return fmt.Errorf("marshal colors: %w", err)
	}

	const q = `
INSERT INTO products (id, name, description, category, base_price, sizes, materials, colors, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    category = EXCLUDED.category,
    base_price = EXCLUDED.base_price,
    sizes = EXCLUDED.sizes,
    materials = EXCLUDED.materials,
    colors = EXCLUDED.colors,
    image_url = EXCLUDED.image_url
`
	_, err = pool.Exec(ctx, q, p.ID, p.Name, p.Description, p.Category, p.BasePrice, sizes, materials, colors, p.ImageURL)
	return err
}
