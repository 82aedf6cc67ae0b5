package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Armeldehe/ivoirestore-client/internal/cart"
	"github.com/Armeldehe/ivoirestore-client/internal/checkout"
	"github.com/Armeldehe/ivoirestore-client/internal/marketplace"
	"github.com/Armeldehe/ivoirestore-client/internal/validation"
)

// lineResultView renders a per-line submission outcome.
type lineResultView struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	OrderID   string `json:"orderId,omitempty"`
	Error     string `json:"error,omitempty"`
}

func resultViews(results []checkout.LineResult) []lineResultView {
	views := make([]lineResultView, 0, len(results))
	for _, r := range results {
		v := lineResultView{ProductID: r.ProductID, Quantity: r.Quantity, OrderID: r.OrderID}
		if r.Err != nil {
			v.Error = userMessage(r.Err)
		}
		views = append(views, v)
	}
	return views
}

// userMessage surfaces the upstream server's message when there is one,
// mirroring the storefront's toast behavior.
func userMessage(err error) string {
	var apiErr *marketplace.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "the request could not be completed, please try again"
}

// RegisterCheckoutRoutes registers the checkout flow and the modal state routes.
func RegisterCheckoutRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	submitter := checkout.NewSubmitter(cfg.Marketplace, cfg.Logger)

	r.POST("/checkout", func(c *gin.Context) {
		ctx := c.Request.Context()
		sess := resolveSession(c, cfg)

		var req validation.CheckoutRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			cfg.Metrics.CheckoutRejected.Inc()
			return
		}

		form := checkout.CustomerForm{
			Name:     req.CustomerName,
			Phone:    req.CustomerPhone,
			Location: req.CustomerLocation,
		}

		var (
			conf    *checkout.Confirmation
			results []checkout.LineResult
			err     error
		)
		if req.BuyNow != nil {
			conf, results, err = submitter.BuyNow(ctx, form, cart.Product{
				ID:        req.BuyNow.ProductID,
				Name:      req.BuyNow.Name,
				UnitPrice: req.BuyNow.UnitPrice,
				ImageURL:  req.BuyNow.ImageURL,
			}, req.BuyNow.Quantity, sess.UI)
		} else {
			conf, results, err = submitter.CheckoutCart(ctx, form, sess.Cart, sess.UI)
		}

		if err != nil {
			var vErr *checkout.ValidationError
			switch {
			case errors.As(err, &vErr):
				cfg.Metrics.CheckoutRejected.Inc()
				c.JSON(http.StatusBadRequest, gin.H{
					"error":  "validation_failed",
					"fields": vErr.Fields,
				})
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "empty_cart"})
			default:
				cfg.Metrics.OrdersFailed.Inc()
				// lines committed before the failure stay committed
				// upstream; the count tells the client how far it got
				c.JSON(http.StatusBadGateway, gin.H{
					"error":     userMessage(err),
					"committed": checkout.CommittedCount(results),
					"results":   resultViews(results),
				})
			}
			return
		}

		for range results {
			cfg.Metrics.OrdersSubmitted.Inc()
		}
		c.JSON(http.StatusCreated, gin.H{
			"confirmation": conf,
			"results":      resultViews(results),
		})
	})

	r.PUT("/checkout/modal", func(c *gin.Context) {
		sess := resolveSession(c, cfg)

		var req struct {
			Open bool `json:"open"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}
		if req.Open {
			sess.UI.OpenOrderModal()
		} else {
			sess.UI.CloseOrderModal()
		}
		c.JSON(http.StatusOK, gin.H{
			"modalOpen":  sess.UI.ModalOpen(),
			"drawerOpen": sess.Cart.Snapshot().DrawerOpen,
		})
	})
}
