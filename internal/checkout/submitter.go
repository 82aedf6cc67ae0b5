package checkout

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Armeldehe/ivoirestore-client/internal/cart"
	"github.com/Armeldehe/ivoirestore-client/internal/marketplace"
)

// ErrEmptyCart is returned when a cart checkout is requested with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// OrderPlacer is the slice of the marketplace client the submitter needs.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, req marketplace.OrderRequest) (*marketplace.Order, error)
}

// Submitter turns cart lines into upstream orders. The upstream API takes
// exactly one product per order, so a multi-line cart is submitted as one
// order per line, strictly in cart order, each awaited before the next.
type Submitter struct {
	orders OrderPlacer
	logger *zap.Logger
}

// NewSubmitter returns a Submitter with its dependencies injected.
func NewSubmitter(orders OrderPlacer, logger *zap.Logger) *Submitter {
	return &Submitter{
		orders: orders,
		logger: logger,
	}
}

// Submit validates the form and folds over the lines issuing one order each.
// It returns a result per attempted line. The first failing request stops the
// fold; earlier lines stay committed upstream and are NOT rolled back — the
// returned results are how callers account for that partial completion.
func (s *Submitter) Submit(ctx context.Context, form CustomerForm, lines []cart.Line) ([]LineResult, error) {
	if fields := form.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	form = form.trimmed()

	results := make([]LineResult, 0, len(lines))
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("submission canceled: %w", err)
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}

		order, err := s.orders.CreateOrder(ctx, marketplace.OrderRequest{
			CustomerName:     form.Name,
			CustomerPhone:    form.Phone,
			CustomerLocation: form.Location,
			Product:          line.ProductID,
			Quantity:         quantity,
		})

		result := LineResult{ProductID: line.ProductID, Quantity: quantity, Err: err}
		if err == nil {
			result.OrderID = order.ID
		}
		results = append(results, result)

		if err != nil {
			s.logger.Warn("order submission aborted",
				zap.String("product", line.ProductID),
				zap.Int("committed", CommittedCount(results)),
				zap.Error(err),
			)
			return results, fmt.Errorf("place order for product %s: %w", line.ProductID, err)
		}

		s.logger.Info("order placed",
			zap.String("product", line.ProductID),
			zap.String("order", result.OrderID),
			zap.Int("quantity", quantity),
		)
	}
	return results, nil
}

// CheckoutCart runs the full flow for a session cart: submit every line, then
// clear the cart and close the order modal. The confirmation carries the
// customer name and the first line for the success view.
func (s *Submitter) CheckoutCart(ctx context.Context, form CustomerForm, crt *cart.Store, ui *Coordinator) (*Confirmation, []LineResult, error) {
	lines := crt.Snapshot().Lines
	if len(lines) == 0 {
		return nil, nil, ErrEmptyCart
	}

	results, err := s.Submit(ctx, form, lines)
	if err != nil {
		return nil, results, err
	}

	crt.Clear()
	ui.CloseOrderModal()

	return &Confirmation{
		CustomerName: form.trimmed().Name,
		FirstLine:    lines[0],
		Multi:        len(lines) > 1,
	}, results, nil
}

// BuyNow places a single ad-hoc order that bypasses the cart. A quantity
// below 1 defaults to 1.
func (s *Submitter) BuyNow(ctx context.Context, form CustomerForm, product cart.Product, quantity int, ui *Coordinator) (*Confirmation, []LineResult, error) {
	if quantity < 1 {
		quantity = 1
	}
	line := cart.Line{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		ImageURL:  product.ImageURL,
		Quantity:  quantity,
	}

	results, err := s.Submit(ctx, form, []cart.Line{line})
	if err != nil {
		return nil, results, err
	}

	ui.CloseOrderModal()

	return &Confirmation{
		CustomerName: form.trimmed().Name,
		FirstLine:    line,
		Multi:        false,
	}, results, nil
}
