package domain

import "time"

// ProductOption is one selectable customization (size, material or color)
// with the surcharge it adds to the base price.
type ProductOption struct {
	Name     string `json:"name"`
	PriceAdd int64  `json:"priceAdd"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	BasePrice   int64           `json:"basePrice"`
	Sizes       []ProductOption `json:"sizes,omitempty"`
	Materials   []ProductOption `json:"materials,omitempty"`
	Colors      []ProductOption `json:"colors,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
