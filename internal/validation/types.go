package validation

// AddItemRequest is the payload for POST /cart/items.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	UnitPrice int64  `json:"unitPrice" validate:"gte=0"` // FCFA, integral
	ImageURL  string `json:"imageUrl,omitempty"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"` // defaults to 1
}

// UpdateQuantityRequest is the payload for PATCH /cart/items/:id. Any
// quantity is accepted here; the store ignores values below 1.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// DrawerRequest toggles the cart drawer.
type DrawerRequest struct {
	Open bool `json:"open"`
}

// BuyNowItem is the ad-hoc product of a checkout that bypasses the cart.
type BuyNowItem struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice" validate:"gte=0"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// CheckoutRequest is the payload for POST /checkout. The three customer
// fields must be non-empty after trimming; a struct-level rule enforces it so
// whitespace-only values are rejected like missing ones.
type CheckoutRequest struct {
	CustomerName     string      `json:"customerName" validate:"required"`
	CustomerPhone    string      `json:"customerPhone" validate:"required"`
	CustomerLocation string      `json:"customerLocation" validate:"required"`
	BuyNow           *BuyNowItem `json:"buyNow,omitempty"`
}

// ReviewRequest is the payload for POST /avis.
type ReviewRequest struct {
	Product string `json:"product" validate:"required"`
	Author  string `json:"author" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}
