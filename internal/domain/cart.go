package domain

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one cart entry: a product plus its customization and quantity.
// Unit price is in whole currency units and already includes customization
// surcharges.
type LineItem struct {
	ID            string            `json:"id"`
	ProductID     string            `json:"productId"`
	Name          string            `json:"name"`
	Image         string            `json:"image,omitempty"`
	Category      string            `json:"category"`
	Price         int64             `json:"price"`
	Quantity      int               `json:"quantity"`
	Customization map[string]string `json:"customization,omitempty"`
	AddedAt       time.Time         `json:"addedAt"`
}

// NewLineItem builds a fresh line item for the product. Every call produces a
// new identity so two customizations of the same product never merge; merging
// by product id alone would corrupt customization-specific pricing.
func NewLineItem(p Product, customization map[string]string, quantity int) LineItem {
	if quantity < 1 {
		quantity = 1
	}
	return LineItem{
		ID:            uuid.NewString(),
		ProductID:     p.ID,
		Name:          p.Name,
		Image:         p.ImageURL,
		Category:      p.Category,
		Price:         p.BasePrice + customizationSurcharge(p, customization),
		Quantity:      quantity,
		Customization: customization,
		AddedAt:       time.Now().UTC(),
	}
}

// customizationSurcharge resolves the selected size/material/color against the
// product's option lists. Unknown keys are carried opaquely and add nothing.
func customizationSurcharge(p Product, customization map[string]string) int64 {
	var add int64
	add += optionPriceAdd(p.Sizes, customization["size"])
	add += optionPriceAdd(p.Materials, customization["material"])
	add += optionPriceAdd(p.Colors, customization["color"])
	return add
}

func optionPriceAdd(options []ProductOption, name string) int64 {
	if name == "" {
		return 0
	}
	for _, opt := range options {
		if opt.Name == name {
			return opt.PriceAdd
		}
	}
	return 0
}

// Cart is the ordered collection of a user's line items. Insertion order is
// preserved for display only.
type Cart struct {
	UserID string     `json:"userId"`
	Items  []LineItem `json:"items"`
}

// Count is the total quantity across all line items.
func (c Cart) Count() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// Subtotal is Σ price×quantity, recomputed on demand.
func (c Cart) Subtotal() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}
