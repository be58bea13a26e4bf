// Package checkout turns a cart plus contact form into an immutable order.
// Submission walks an explicit state machine: Editing -> Validating ->
// Submitting -> Confirmed, with Failed returning control to Editing.
package checkout

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"photogifthub/internal/domain"
	"photogifthub/internal/pricing"
)

type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

// Payment methods accepted at checkout.
const (
	PaymentCOD    = "cod"
	PaymentWallet = "wallet"
	PaymentOnline = "online"
)

// rewardRatePercent of the order total is credited as reward points.
const rewardRatePercent = 2

type cartService interface {
	Get(ctx context.Context, userID string) (domain.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type walletService interface {
	Get(ctx context.Context, userID string) (domain.Wallet, error)
	Debit(ctx context.Context, userID string, amount int64, orderID string) error
	AddPoints(ctx context.Context, userID string, points int64) error
	RecordCompensation(ctx context.Context, userID string, amount int64, orderID string) error
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) error
}

type Service struct {
	carts   cartService
	wallets walletService
	orders  orderRepo
	logger  *log.Logger
}

func New(carts cartService, wallets walletService, orders orderRepo, logger *log.Logger) *Service {
	return &Service{carts: carts, wallets: wallets, orders: orders, logger: logger}
}

// FormData is the checkout contact and payment form.
type FormData struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternatePhone"`
	Address        string `json:"address"`
	PaymentMethod  string `json:"paymentMethod"`
	PickupPayment  string `json:"pickupPayment"`
}

// Confirmation is the view-model returned after a successful submission.
type Confirmation struct {
	State   State        `json:"state"`
	Order   domain.Order `json:"order"`
	Message string       `json:"message"`
}

// Validate applies the checkout rules in order; the first failing rule wins
// and its message is surfaced verbatim.
func Validate(form FormData, deliveryType string) error {
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Email) == "" || strings.TrimSpace(form.Phone) == "" {
		return domain.Validation("Please fill in all required fields")
	}
	if form.AlternatePhone != "" && form.AlternatePhone == form.Phone {
		return domain.Validation("Alternate phone number must be different from your primary phone")
	}
	if form.PaymentMethod == PaymentCOD && strings.TrimSpace(form.AlternatePhone) == "" {
		return domain.Validation("Cash on Delivery requires an alternate phone number")
	}
	if deliveryType == pricing.DeliveryTypeDelivery && strings.TrimSpace(form.Address) == "" {
		return domain.Validation("Please provide delivery address")
	}
	if deliveryType == pricing.DeliveryTypePickup && strings.TrimSpace(form.PickupPayment) == "" {
		return domain.Validation("Please select a payment method for store pickup")
	}
	return nil
}

// Submit re-validates, prices the cart, persists the order (with its outbox
// event) and only then debits the wallet and clears the cart. Ordering
// matters: a failure after the order is written leaves the order intact and
// logs what remains unreconciled rather than losing it.
func (s *Service) Submit(ctx context.Context, userID string, form FormData, deliveryType string, useWallet bool) (*Confirmation, error) {
	// Never trust that validation already ran.
	if err := Validate(form, deliveryType); err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.Validation("Your cart is empty")
	}

	wallet, err := s.wallets.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	quote := pricing.Compute(cart.Items, pricing.OrderContext{
		DeliveryType:  deliveryType,
		UseWallet:     useWallet,
		WalletBalance: wallet.Balance,
	})

	order := domain.Order{
		ID:     "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
		UserID: userID,
		Items:  cart.Items,
		Customer: domain.Customer{
			Name:           strings.TrimSpace(form.Name),
			Email:          strings.TrimSpace(form.Email),
			Phone:          strings.TrimSpace(form.Phone),
			AlternatePhone: strings.TrimSpace(form.AlternatePhone),
			Address:        strings.TrimSpace(form.Address),
		},
		Totals: domain.Totals{
			Subtotal:       quote.Subtotal,
			Delivery:       quote.Delivery,
			Tax:            quote.Tax,
			WalletDiscount: quote.WalletDiscount,
			Total:          quote.Total,
		},
		PaymentMethod: form.PaymentMethod,
		DeliveryType:  deliveryType,
		Status:        domain.OrderStatusPending,
		PointsEarned:  quote.Total * rewardRatePercent / 100,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The order is committed; everything below is best-effort against local
	// state and must not undo it.
	if quote.WalletDiscount > 0 {
		if err := s.wallets.Debit(ctx, userID, quote.WalletDiscount, order.ID); err != nil {
			s.logger.Printf("wallet debit failed for order %s, recording compensation: %v", order.ID, err)
			if compErr := s.wallets.RecordCompensation(ctx, userID, quote.WalletDiscount, order.ID); compErr != nil {
				s.logger.Printf("compensation record failed for order %s: %v", order.ID, compErr)
			}
		}
	}

	if order.PointsEarned > 0 {
		if err := s.wallets.AddPoints(ctx, userID, order.PointsEarned); err != nil {
			s.logger.Printf("reward points credit failed for order %s: %v", order.ID, err)
		}
	}

	conf := &Confirmation{
		State:   StateConfirmed,
		Order:   order,
		Message: confirmationMessage(order),
	}

	// The cart clears only once the confirmation exists; a crash before this
	// point leaves the order placed and the cart intact.
	if err := s.carts.Clear(ctx, userID); err != nil {
		s.logger.Printf("cart clear failed after order %s: %v", order.ID, err)
	}

	return conf, nil
}

func confirmationMessage(o domain.Order) string {
	frames := false
	for _, it := range o.Items {
		if it.Category == "frames" || strings.Contains(strings.ToLower(it.Name), "frame") {
			frames = true
			break
		}
	}
	pickup := o.DeliveryType == pricing.DeliveryTypePickup

	switch {
	case frames && pickup:
		return fmt.Sprintf("Custom frames will be ready for pickup in 2-3 days • Order ID: %s", o.ID)
	case frames:
		return fmt.Sprintf("Your custom photo frames are being crafted • Delivery in 3-5 days • Order ID: %s", o.ID)
	case pickup:
		return fmt.Sprintf("Ready for pickup at our store • Order ID: %s", o.ID)
	default:
		return fmt.Sprintf("Order placed successfully • Order ID: %s", o.ID)
	}
}
