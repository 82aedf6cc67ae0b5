package cart

// Effect values emitted by the reducer for the UI layer to act on.
const (
	EffectOpenDrawer = "openDrawer"
)

// Product is the subset of catalog data a cart line is built from.
type Product struct {
	ID        string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"` // FCFA; the currency has no subdivision
	ImageURL  string `json:"imageUrl,omitempty"`
}

// Line is one product entry in the cart, uniquely keyed by ProductID.
type Line struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Subtotal returns UnitPrice * Quantity for the line.
func (l Line) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// State is a session's cart: selected lines in insertion order plus the
// drawer visibility flag. Totals are derived on read, never stored.
type State struct {
	Lines      []Line `json:"lines"`
	DrawerOpen bool   `json:"drawerOpen"`
}

// TotalItems returns the sum of quantities across all lines.
func (s State) TotalItems() int {
	var n int
	for _, l := range s.Lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice returns the sum of line subtotals.
func (s State) TotalPrice() int64 {
	var sum int64
	for _, l := range s.Lines {
		sum += l.Subtotal()
	}
	return sum
}

// Action is a cart state transition request handled by Apply.
type Action interface {
	isAction()
}

// AddItem merges the product into the cart: an existing line's quantity is
// incremented, otherwise a new line is appended. Forces the drawer open.
type AddItem struct {
	Product  Product
	Quantity int
}

// RemoveItem deletes the line with the given product id. No-op if absent.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity sets a line's quantity. Requests below 1 are ignored;
// RemoveItem is the way to take a line out of the cart.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// Clear empties the cart.
type Clear struct{}

// OpenDrawer and CloseDrawer toggle drawer visibility independently of
// line mutations.
type OpenDrawer struct{}
type CloseDrawer struct{}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()          {}
func (OpenDrawer) isAction()     {}
func (CloseDrawer) isAction()    {}
