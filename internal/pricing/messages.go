package pricing

import (
	"fmt"
	"strings"

	"photogifthub/internal/domain"
)

// DeliveryMessage is a storefront note shown alongside the quote.
type DeliveryMessage struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// DeliveryMessages derives the storefront notes for the current cart and
// delivery type: preparation time for pickup, fee/threshold hints and the
// frame-packaging note for delivery.
func DeliveryMessages(items []domain.LineItem, deliveryType string) []DeliveryMessage {
	subtotal := Subtotal(items)
	var msgs []DeliveryMessage

	if deliveryType == DeliveryTypePickup {
		if hasCustomItems(items) {
			msgs = append(msgs, DeliveryMessage{Kind: "warning", Text: "Custom items require 2-3 working days preparation"})
		} else {
			msgs = append(msgs, DeliveryMessage{Kind: "success", Text: "Standard items ready in 2-4 hours"})
		}
		return msgs
	}

	if subtotal >= FreeDeliveryThreshold {
		msgs = append(msgs, DeliveryMessage{Kind: "success", Text: "Free home delivery (2-3 business days)"})
	} else {
		msgs = append(msgs, DeliveryMessage{
			Kind: "info",
			Text: fmt.Sprintf("₹%d delivery charge • Add ₹%d more for FREE delivery", FlatDeliveryFee, FreeDeliveryThreshold-subtotal),
		})
	}
	if hasFrames(items) {
		msgs = append(msgs, DeliveryMessage{Kind: "info", Text: "Frames will be carefully packaged for safe delivery"})
	}
	return msgs
}

func hasFrames(items []domain.LineItem) bool {
	for _, it := range items {
		if it.Category == "frames" || strings.Contains(strings.ToLower(it.Name), "frame") {
			return true
		}
	}
	return false
}

func hasCustomItems(items []domain.LineItem) bool {
	for _, it := range items {
		if len(it.Customization) > 0 {
			return true
		}
	}
	return false
}
