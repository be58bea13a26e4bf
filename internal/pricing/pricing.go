// Package pricing computes order totals from cart state and checkout inputs.
// Every function is pure: same inputs always produce the same result, and no
// call has memory of a prior one.
package pricing

import "photogifthub/internal/domain"

// Delivery types accepted by the calculator.
const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

const (
	// FreeDeliveryThreshold is the subtotal at which home delivery becomes
	// free. The boundary is inclusive: exactly 1000 ships free.
	FreeDeliveryThreshold int64 = 1000

	// FlatDeliveryFee applies to home delivery below the threshold.
	FlatDeliveryFee int64 = 50

	// TaxRatePercent is the GST rate applied to the subtotal.
	TaxRatePercent int64 = 18
)

// OrderContext carries the checkout inputs pricing depends on. It is never
// persisted on its own.
type OrderContext struct {
	DeliveryType  string
	UseWallet     bool
	WalletBalance int64
}

// Quote is the derived pricing breakdown. All fields are non-negative.
type Quote struct {
	Subtotal       int64 `json:"subtotal"`
	Delivery       int64 `json:"delivery"`
	Tax            int64 `json:"tax"`
	WalletDiscount int64 `json:"walletDiscount"`
	Total          int64 `json:"total"`
}

// Subtotal is Σ price×quantity across the line items.
func Subtotal(items []domain.LineItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// DeliveryCharge is zero for pickup and for orders at or above the free
// delivery threshold; otherwise the flat fee applies.
func DeliveryCharge(subtotal int64, deliveryType string) int64 {
	if deliveryType == DeliveryTypePickup {
		return 0
	}
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	return FlatDeliveryFee
}

// Tax rounds subtotal×18% half up to the nearest whole currency unit.
// Integer arithmetic only; totals never carry fractional currency.
func Tax(subtotal int64) int64 {
	return (subtotal*TaxRatePercent + 50) / 100
}

// WalletDiscount is capped at the subtotal: the wallet can never discount
// more than the goods are worth, nor more than it holds. A zero balance with
// the flag set is a zero discount, not an error.
func WalletDiscount(subtotal int64, useWallet bool, balance int64) int64 {
	if !useWallet || balance <= 0 {
		return 0
	}
	if balance < subtotal {
		return balance
	}
	return subtotal
}

// Total clamps at zero. The clamp is unreachable while the discount is capped
// at the subtotal, but it is enforced so a future discount extension cannot
// produce a negative total.
func Total(subtotal, delivery, tax, walletDiscount int64) int64 {
	total := subtotal + delivery + tax - walletDiscount
	if total < 0 {
		return 0
	}
	return total
}

// Compute derives the full quote for a cart and checkout context.
func Compute(items []domain.LineItem, octx OrderContext) Quote {
	subtotal := Subtotal(items)
	delivery := DeliveryCharge(subtotal, octx.DeliveryType)
	tax := Tax(subtotal)
	discount := WalletDiscount(subtotal, octx.UseWallet, octx.WalletBalance)
	return Quote{
		Subtotal:       subtotal,
		Delivery:       delivery,
		Tax:            tax,
		WalletDiscount: discount,
		Total:          Total(subtotal, delivery, tax, discount),
	}
}
