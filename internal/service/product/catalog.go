package product

import "photogifthub/internal/domain"

// SampleCatalog is the built-in product set. It seeds an empty database and
// serves as the degraded-mode fallback when the catalog repository is
// unreachable, so the storefront keeps rendering.
func SampleCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "sample-classic-wooden-frame",
			Name:        "Classic Wooden Frame",
			Description: "Handcrafted wooden frame perfect for cherished memories",
			Category:    "frames",
			BasePrice:   899,
			Sizes: []domain.ProductOption{
				{Name: "8x10", PriceAdd: 0},
				{Name: "12x16", PriceAdd: 200},
				{Name: "16x20", PriceAdd: 400},
			},
			Materials: []domain.ProductOption{
				{Name: "Oak", PriceAdd: 0},
				{Name: "Teak", PriceAdd: 300},
				{Name: "Mahogany", PriceAdd: 500},
			},
			Colors: []domain.ProductOption{
				{Name: "Natural", PriceAdd: 0},
				{Name: "Dark Brown", PriceAdd: 50},
				{Name: "Black", PriceAdd: 50},
			},
			ImageURL: "https://images.unsplash.com/photo-1465161191540-aac346fcbaff",
		},
		{
			ID:          "sample-premium-acrylic-frame",
			Name:        "Premium Acrylic Frame",
			Description: "Modern acrylic frame with crystal-clear finish",
			Category:    "frames",
			BasePrice:   1299,
			Sizes: []domain.ProductOption{
				{Name: "8x10", PriceAdd: 0},
				{Name: "12x16", PriceAdd: 300},
				{Name: "16x20", PriceAdd: 600},
			},
			Materials: []domain.ProductOption{
				{Name: "Clear Acrylic", PriceAdd: 0},
				{Name: "Frosted Acrylic", PriceAdd: 200},
			},
			Colors: []domain.ProductOption{
				{Name: "Clear", PriceAdd: 0},
				{Name: "Smoky", PriceAdd: 100},
			},
			ImageURL: "https://images.unsplash.com/photo-1505841468529-d99f8d82ef8f",
		},
		{
			ID:          "sample-custom-photo-mug",
			Name:        "Custom Photo Mug",
			Description: "Personalized ceramic mug with your favorite photo",
			Category:    "mugs",
			BasePrice:   349,
			Sizes: []domain.ProductOption{
				{Name: "11oz", PriceAdd: 0},
				{Name: "15oz", PriceAdd: 100},
			},
			Materials: []domain.ProductOption{
				{Name: "Ceramic", PriceAdd: 0},
				{Name: "Magic Mug", PriceAdd: 200},
			},
			Colors: []domain.ProductOption{
				{Name: "White", PriceAdd: 0},
				{Name: "Black", PriceAdd: 50},
				{Name: "Blue", PriceAdd: 50},
			},
			ImageURL: "https://images.unsplash.com/photo-1513885535751-8b9238bd345a",
		},
		{
			ID:          "sample-led-photo-frame",
			Name:        "LED Photo Frame",
			Description: "Illuminated frame that brings your photos to life",
			Category:    "led",
			BasePrice:   1999,
			Sizes: []domain.ProductOption{
				{Name: "8x10", PriceAdd: 0},
				{Name: "12x16", PriceAdd: 500},
			},
			Materials: []domain.ProductOption{
				{Name: "LED Backlit", PriceAdd: 0},
				{Name: "RGB LED", PriceAdd: 800},
			},
			Colors: []domain.ProductOption{
				{Name: "White Light", PriceAdd: 0},
				{Name: "Warm Light", PriceAdd: 0},
				{Name: "Cool Light", PriceAdd: 0},
			},
			ImageURL: "https://images.unsplash.com/photo-1510284876186-b1a84b94418f",
		},
	}
}
