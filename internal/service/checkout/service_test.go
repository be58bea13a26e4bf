package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"photogifthub/internal/domain"
	"photogifthub/internal/kv"
	"photogifthub/internal/pricing"
	cartsvc "photogifthub/internal/service/cart"
	walletsvc "photogifthub/internal/service/wallet"
)

type stubOrderRepo struct {
	created []domain.Order
	err     error
}

func (s *stubOrderRepo) Create(_ context.Context, o domain.Order) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, o)
	return nil
}

type failingWallet struct {
	wallet        domain.Wallet
	debitErr      error
	compensations []string
	points        int64
}

func (f *failingWallet) Get(_ context.Context, _ string) (domain.Wallet, error) {
	return f.wallet, nil
}

func (f *failingWallet) Debit(_ context.Context, _ string, _ int64, _ string) error {
	return f.debitErr
}

func (f *failingWallet) AddPoints(_ context.Context, _ string, points int64) error {
	f.points += points
	return nil
}

func (f *failingWallet) RecordCompensation(_ context.Context, _ string, _ int64, orderID string) error {
	f.compensations = append(f.compensations, orderID)
	return nil
}

var frameProduct = domain.Product{
	ID:        "p1",
	Name:      "Classic Wooden Frame",
	Category:  "frames",
	BasePrice: 899,
}

var validForm = FormData{
	Name:          "Asha",
	Email:         "asha@example.com",
	Phone:         "9000000001",
	PickupPayment: "card",
	PaymentMethod: PaymentOnline,
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestValidateRules(t *testing.T) {
	cases := []struct {
		name         string
		form         FormData
		deliveryType string
		wantMsg      string
	}{
		{
			name:         "missing contact fields",
			form:         FormData{Name: "Asha"},
			deliveryType: pricing.DeliveryTypePickup,
			wantMsg:      "Please fill in all required fields",
		},
		{
			name: "duplicate phones",
			form: FormData{
				Name: "Asha", Email: "a@b.c", Phone: "9000000001", AlternatePhone: "9000000001",
			},
			deliveryType: pricing.DeliveryTypePickup,
			wantMsg:      "Alternate phone number must be different from your primary phone",
		},
		{
			name: "cod without alternate phone",
			form: FormData{
				Name: "Asha", Email: "a@b.c", Phone: "9000000001", PaymentMethod: PaymentCOD, Address: "12 Lane",
			},
			deliveryType: pricing.DeliveryTypeDelivery,
			wantMsg:      "Cash on Delivery requires an alternate phone number",
		},
		{
			name: "delivery without address",
			form: FormData{
				Name: "Asha", Email: "a@b.c", Phone: "9000000001",
			},
			deliveryType: pricing.DeliveryTypeDelivery,
			wantMsg:      "Please provide delivery address",
		},
		{
			name: "pickup without payment choice",
			form: FormData{
				Name: "Asha", Email: "a@b.c", Phone: "9000000001",
			},
			deliveryType: pricing.DeliveryTypePickup,
			wantMsg:      "Please select a payment method for store pickup",
		},
	}

	for _, tc := range cases {
		err := Validate(tc.form, tc.deliveryType)
		if err == nil {
			t.Fatalf("%s: expected validation failure", tc.name)
		}
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if ve.Message != tc.wantMsg {
			t.Fatalf("%s: got %q, want %q", tc.name, ve.Message, tc.wantMsg)
		}
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := Validate(validForm, pricing.DeliveryTypePickup); err != nil {
		t.Fatalf("valid pickup form rejected: %v", err)
	}
	form := validForm
	form.Address = "12 MG Road"
	if err := Validate(form, pricing.DeliveryTypeDelivery); err != nil {
		t.Fatalf("valid delivery form rejected: %v", err)
	}
}

func TestSubmitPickupScenario(t *testing.T) {
	store := kv.NewMemory()
	carts := cartsvc.New(store)
	wallets := walletsvc.New(store)
	orders := &stubOrderRepo{}
	svc := New(carts, wallets, orders, testLogger())
	ctx := context.Background()

	if _, err := carts.Add(ctx, "u1", frameProduct, nil, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}

	conf, err := svc.Submit(ctx, "u1", validForm, pricing.DeliveryTypePickup, false)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if conf.State != StateConfirmed {
		t.Fatalf("expected confirmed state, got %s", conf.State)
	}

	want := domain.Totals{Subtotal: 899, Delivery: 0, Tax: 162, WalletDiscount: 0, Total: 1061}
	if conf.Order.Totals != want {
		t.Fatalf("totals mismatch: got %+v want %+v", conf.Order.Totals, want)
	}
	if len(orders.created) != 1 {
		t.Fatalf("expected one persisted order")
	}
	if conf.Order.Status != domain.OrderStatusPending {
		t.Fatalf("new order must be pending, got %s", conf.Order.Status)
	}

	cart, _ := carts.Get(ctx, "u1")
	if len(cart.Items) != 0 {
		t.Fatalf("cart must clear after confirmation, got %+v", cart.Items)
	}
}

func TestSubmitDebitsWalletAndCreditsPoints(t *testing.T) {
	store := kv.NewMemory()
	carts := cartsvc.New(store)
	wallets := walletsvc.New(store)
	orders := &stubOrderRepo{}
	svc := New(carts, wallets, orders, testLogger())
	ctx := context.Background()

	big := frameProduct
	big.BasePrice = 1200
	carts.Add(ctx, "u1", big, nil, 1)
	wallets.Credit(ctx, "u1", 300, "Signup bonus")

	form := validForm
	form.Address = "12 MG Road"
	conf, err := svc.Submit(ctx, "u1", form, pricing.DeliveryTypeDelivery, true)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	want := domain.Totals{Subtotal: 1200, Delivery: 0, Tax: 216, WalletDiscount: 300, Total: 1116}
	if conf.Order.Totals != want {
		t.Fatalf("totals mismatch: got %+v want %+v", conf.Order.Totals, want)
	}

	w, _ := wallets.Get(ctx, "u1")
	if w.Balance != 0 {
		t.Fatalf("wallet must be debited by the discount, balance %d", w.Balance)
	}
	if w.RewardPoints != 1116*2/100 {
		t.Fatalf("expected %d reward points, got %d", 1116*2/100, w.RewardPoints)
	}

	txns, _ := wallets.Transactions(ctx, "u1")
	if len(txns) == 0 || txns[0].Type != domain.TxnDebit || txns[0].OrderID != conf.Order.ID {
		t.Fatalf("expected debit ledger entry for order, got %+v", txns)
	}
}

func TestSubmitValidationFailureMutatesNothing(t *testing.T) {
	store := kv.NewMemory()
	carts := cartsvc.New(store)
	wallets := walletsvc.New(store)
	orders := &stubOrderRepo{}
	svc := New(carts, wallets, orders, testLogger())
	ctx := context.Background()

	carts.Add(ctx, "u1", frameProduct, nil, 1)

	form := validForm
	form.PaymentMethod = PaymentCOD
	form.AlternatePhone = ""
	_, err := svc.Submit(ctx, "u1", form, pricing.DeliveryTypePickup, false)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Cash on Delivery requires an alternate phone number" {
		t.Fatalf("wrong message: %v", err)
	}
	if len(orders.created) != 0 {
		t.Fatalf("failed validation must not create an order")
	}
	cart, _ := carts.Get(ctx, "u1")
	if len(cart.Items) != 1 {
		t.Fatalf("failed validation must not mutate the cart")
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	store := kv.NewMemory()
	svc := New(cartsvc.New(store), walletsvc.New(store), &stubOrderRepo{}, testLogger())

	_, err := svc.Submit(context.Background(), "u1", validForm, pricing.DeliveryTypePickup, false)
	if !domain.IsValidation(err) || err.Error() != "Your cart is empty" {
		t.Fatalf("expected empty-cart validation error, got %v", err)
	}
}

func TestSubmitOrderFailureLeavesWalletUntouched(t *testing.T) {
	store := kv.NewMemory()
	carts := cartsvc.New(store)
	wallets := walletsvc.New(store)
	orders := &stubOrderRepo{err: errors.New("db down")}
	svc := New(carts, wallets, orders, testLogger())
	ctx := context.Background()

	carts.Add(ctx, "u1", frameProduct, nil, 1)
	wallets.Credit(ctx, "u1", 500, "Signup bonus")

	_, err := svc.Submit(ctx, "u1", validForm, pricing.DeliveryTypePickup, true)
	if err == nil {
		t.Fatalf("expected submit failure")
	}
	if domain.IsValidation(err) {
		t.Fatalf("storage failure must not look like a validation failure: %v", err)
	}

	w, _ := wallets.Get(ctx, "u1")
	if w.Balance != 500 {
		t.Fatalf("wallet must stay untouched when order persistence fails, balance %d", w.Balance)
	}
	cart, _ := carts.Get(ctx, "u1")
	if len(cart.Items) != 1 {
		t.Fatalf("cart must survive a failed submission")
	}
}

func TestSubmitDebitFailureRecordsCompensation(t *testing.T) {
	store := kv.NewMemory()
	carts := cartsvc.New(store)
	wallets := &failingWallet{
		wallet:   domain.Wallet{UserID: "u1", Balance: 300, Tier: "Silver"},
		debitErr: errors.New("store unavailable"),
	}
	orders := &stubOrderRepo{}
	svc := New(carts, wallets, orders, testLogger())
	ctx := context.Background()

	carts.Add(ctx, "u1", frameProduct, nil, 1)

	conf, err := svc.Submit(ctx, "u1", validForm, pricing.DeliveryTypePickup, true)
	if err != nil {
		t.Fatalf("debit failure after commit must not fail the order: %v", err)
	}
	if len(orders.created) != 1 {
		t.Fatalf("order must stand")
	}
	if len(wallets.compensations) != 1 || wallets.compensations[0] != conf.Order.ID {
		t.Fatalf("expected compensation record for %s, got %v", conf.Order.ID, wallets.compensations)
	}
}
