package checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/Armeldehe/ivoirestore-client/internal/cart"
	"github.com/Armeldehe/ivoirestore-client/internal/marketplace"
)

// fakeOrderAPI records every CreateOrder call and fails the products listed
// in failOn.
type fakeOrderAPI struct {
	calls  []marketplace.OrderRequest
	failOn map[string]error
}

func newFakeOrderAPI() *fakeOrderAPI {
	return &fakeOrderAPI{failOn: map[string]error{}}
}

func (f *fakeOrderAPI) CreateOrder(ctx context.Context, req marketplace.OrderRequest) (*marketplace.Order, error) {
	f.calls = append(f.calls, req)
	if err, ok := f.failOn[req.Product]; ok {
		return nil, err
	}
	return &marketplace.Order{
		ID:       fmt.Sprintf("ord-%d", len(f.calls)),
		Product:  req.Product,
		Quantity: req.Quantity,
	}, nil
}

func validForm() CustomerForm {
	return CustomerForm{Name: "Jean Kouassi", Phone: "0700000000", Location: "Abidjan"}
}

func TestSubmit_BlockedByValidation(t *testing.T) {
	api := newFakeOrderAPI()
	sub := NewSubmitter(api, zap.NewNop())

	form := CustomerForm{Name: "   ", Phone: "0700000000", Location: "Abidjan"}
	_, err := sub.Submit(context.Background(), form, []cart.Line{{ProductID: "A", Quantity: 1}})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 1 {
		t.Fatalf("expected exactly one field error, got %v", vErr.Fields)
	}
	if _, ok := vErr.Fields["name"]; !ok {
		t.Fatalf("expected a 'name' entry, got %v", vErr.Fields)
	}
	if len(api.calls) != 0 {
		t.Fatalf("expected no network call, got %d", len(api.calls))
	}
}

func TestSubmit_SequentialOneOrderPerLine(t *testing.T) {
	api := newFakeOrderAPI()
	sub := NewSubmitter(api, zap.NewNop())

	lines := []cart.Line{
		{ProductID: "A", UnitPrice: 5000, Quantity: 2},
		{ProductID: "B", UnitPrice: 12000, Quantity: 1},
		{ProductID: "C", UnitPrice: 800, Quantity: 3},
	}
	results, err := sub.Submit(context.Background(), validForm(), lines)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(api.calls) != 3 {
		t.Fatalf("expected 3 order calls, got %d", len(api.calls))
	}
	// server-observed order matches cart order
	for i, want := range []string{"A", "B", "C"} {
		if api.calls[i].Product != want {
			t.Fatalf("call %d went to %s, want %s", i, api.calls[i].Product, want)
		}
	}
	if CommittedCount(results) != 3 {
		t.Fatalf("expected 3 committed lines, got %d", CommittedCount(results))
	}
}

func TestSubmit_AbortsOnFirstFailureWithoutRollback(t *testing.T) {
	api := newFakeOrderAPI()
	api.failOn["B"] = &marketplace.APIError{StatusCode: 500, Message: "Stock épuisé"}
	sub := NewSubmitter(api, zap.NewNop())

	lines := []cart.Line{
		{ProductID: "A", Quantity: 1},
		{ProductID: "B", Quantity: 1},
		{ProductID: "C", Quantity: 1},
	}
	results, err := sub.Submit(context.Background(), validForm(), lines)
	if err == nil {
		t.Fatal("expected submission error")
	}

	// line A once, line B once, line C never; no retry of B, no rollback of A
	if len(api.calls) != 2 {
		t.Fatalf("expected 2 order calls, got %d", len(api.calls))
	}
	if api.calls[0].Product != "A" || api.calls[1].Product != "B" {
		t.Fatalf("unexpected call order: %+v", api.calls)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Err != nil || results[0].OrderID == "" {
		t.Fatalf("line A should be committed: %+v", results[0])
	}
	if results[1].Err == nil {
		t.Fatal("line B should carry the failure")
	}
	if CommittedCount(results) != 1 {
		t.Fatalf("expected 1 committed line, got %d", CommittedCount(results))
	}
}

func TestSubmit_TrimsCustomerFields(t *testing.T) {
	api := newFakeOrderAPI()
	sub := NewSubmitter(api, zap.NewNop())

	form := CustomerForm{Name: "  Jean Kouassi  ", Phone: " 0700000000 ", Location: " Abidjan "}
	if _, err := sub.Submit(context.Background(), form, []cart.Line{{ProductID: "A", Quantity: 1}}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if api.calls[0].CustomerName != "Jean Kouassi" {
		t.Fatalf("expected trimmed name, got %q", api.calls[0].CustomerName)
	}
}

func TestSubmit_CanceledContextStopsFold(t *testing.T) {
	api := newFakeOrderAPI()
	sub := NewSubmitter(api, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := sub.Submit(ctx, validForm(), []cart.Line{{ProductID: "A", Quantity: 1}})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if len(api.calls) != 0 || len(results) != 0 {
		t.Fatalf("expected no calls after cancellation, got %d", len(api.calls))
	}
}

func TestCheckoutCart_SuccessClearsCartAndClosesModal(t *testing.T) {
	api := newFakeOrderAPI()
	sub := NewSubmitter(api, zap.NewNop())

	crt := cart.NewStore()
	if _, err := crt.AddItem(cart.Product{ID: "A", Name: "Sac", UnitPrice: 5000}, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	ui := NewCoordinator(crt)
	ui.OpenOrderModal()

	conf, results, err := sub.CheckoutCart(context.Background(), validForm(), crt, ui)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if crt.Snapshot().TotalItems() != 0 {
		t.Fatal("expected cart to be cleared after success")
	}
	if ui.ModalOpen() {
		t.Fatal("expected order modal to be closed after success")
	}
	if conf.CustomerName != "Jean Kouassi" {
		t.Fatalf("confirmation should carry the customer name, got %q", conf.CustomerName)
	}
	if conf.FirstLine.ProductID != "A" || conf.Multi {
		t.Fatalf("unexpected confirmation: %+v", conf)
	}
	if CommittedCount(results) != 1 {
		t.Fatalf("expected 1 committed line, got %d", CommittedCount(results))
	}
}

func TestCheckoutCart_FailureKeepsCart(t *testing.T) {
	api := newFakeOrderAPI()
	api.failOn["A"] = errors.New("boom")
	sub := NewSubmitter(api, zap.NewNop())

	crt := cart.NewStore()
	_, _ = crt.AddItem(cart.Product{ID: "A", UnitPrice: 5000}, 2)
	ui := NewCoordinator(crt)

	_, _, err := sub.CheckoutCart(context.Background(), validForm(), crt, ui)
	if err == nil {
		t.Fatal("expected checkout error")
	}
	if crt.Snapshot().TotalItems() != 2 {
		t.Fatal("cart must not be cleared on failure")
	}
}

func TestCheckoutCart_EmptyCart(t *testing.T) {
	sub := NewSubmitter(newFakeOrderAPI(), zap.NewNop())
	crt := cart.NewStore()

	_, _, err := sub.CheckoutCart(context.Background(), validForm(), crt, NewCoordinator(crt))
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestBuyNow_DefaultsQuantityToOne(t *testing.T) {
	api := newFakeOrderAPI()
	sub := NewSubmitter(api, zap.NewNop())
	crt := cart.NewStore()

	conf, _, err := sub.BuyNow(context.Background(), validForm(), cart.Product{ID: "A", Name: "Montre", UnitPrice: 15000}, 0, NewCoordinator(crt))
	if err != nil {
		t.Fatalf("buy now: %v", err)
	}
	if api.calls[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", api.calls[0].Quantity)
	}
	if conf.Multi {
		t.Fatal("buy-now confirmation must not be multi")
	}
}
