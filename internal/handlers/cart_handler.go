package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Armeldehe/ivoirestore-client/internal/cart"
	"github.com/Armeldehe/ivoirestore-client/internal/validation"
)

// cartView is the JSON rendering of a cart snapshot with its derived totals.
type cartView struct {
	Lines      []cart.Line `json:"lines"`
	TotalItems int         `json:"totalItems"`
	TotalPrice int64       `json:"totalPrice"`
	DrawerOpen bool        `json:"drawerOpen"`
}

func viewOf(s cart.State) cartView {
	lines := s.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartView{
		Lines:      lines,
		TotalItems: s.TotalItems(),
		TotalPrice: s.TotalPrice(),
		DrawerOpen: s.DrawerOpen,
	}
}

// RegisterCartRoutes registers the cart CRUD routes.
func RegisterCartRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.GET("/cart", func(c *gin.Context) {
		sess := resolveSession(c, cfg)
		c.JSON(http.StatusOK, viewOf(sess.Cart.Snapshot()))
	})

	r.POST("/cart/items", func(c *gin.Context) {
		sess := resolveSession(c, cfg)

		var req validation.AddItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}

		effects, err := sess.Cart.AddItem(cart.Product{
			ID:        req.ProductID,
			Name:      req.Name,
			UnitPrice: req.UnitPrice,
			ImageURL:  req.ImageURL,
		}, quantity)
		if err != nil {
			if errors.Is(err, cart.ErrInvalidQuantity) || errors.Is(err, cart.ErrNegativePrice) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		cfg.Metrics.CartItemsAdded.Inc()
		if effects == nil {
			effects = []string{}
		}
		c.JSON(http.StatusOK, gin.H{
			"cart":    viewOf(sess.Cart.Snapshot()),
			"effects": effects,
		})
	})

	r.PATCH("/cart/items/:id", func(c *gin.Context) {
		sess := resolveSession(c, cfg)

		var req validation.UpdateQuantityRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		// below-1 quantities are ignored by the store, matching the
		// drawer's quantity stepper behavior
		sess.Cart.UpdateQuantity(c.Param("id"), req.Quantity)
		c.JSON(http.StatusOK, viewOf(sess.Cart.Snapshot()))
	})

	r.DELETE("/cart/items/:id", func(c *gin.Context) {
		sess := resolveSession(c, cfg)
		sess.Cart.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, viewOf(sess.Cart.Snapshot()))
	})

	r.DELETE("/cart", func(c *gin.Context) {
		sess := resolveSession(c, cfg)
		sess.Cart.Clear()
		c.JSON(http.StatusOK, viewOf(sess.Cart.Snapshot()))
	})

	r.PUT("/cart/drawer", func(c *gin.Context) {
		sess := resolveSession(c, cfg)

		var req validation.DrawerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}
		if req.Open {
			sess.Cart.OpenDrawer()
		} else {
			sess.Cart.CloseDrawer()
		}
		c.JSON(http.StatusOK, viewOf(sess.Cart.Snapshot()))
	})
}
