package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId,omitempty"`
	Reviewer  string    `json:"reviewer"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewStats aggregates ratings for the storefront header widget.
type ReviewStats struct {
	Count        int64         `json:"count"`
	Average      float64       `json:"average"`
	Distribution map[int]int64 `json:"distribution"`
}
