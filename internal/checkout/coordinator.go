package checkout

import (
	"sync"

	"github.com/Armeldehe/ivoirestore-client/internal/cart"
)

// Coordinator keeps the cart drawer and the order modal mutually exclusive:
// opening the modal closes the drawer, and closing the modal never reopens
// it. The drawer flag itself lives in the cart store; the coordinator owns
// only the modal flag.
type Coordinator struct {
	mu        sync.Mutex
	cart      *cart.Store
	modalOpen bool
}

// NewCoordinator binds a coordinator to a session's cart store.
func NewCoordinator(crt *cart.Store) *Coordinator {
	return &Coordinator{cart: crt}
}

// OpenOrderModal shows the order form and hides the drawer.
func (c *Coordinator) OpenOrderModal() {
	c.mu.Lock()
	c.modalOpen = true
	c.mu.Unlock()
	c.cart.CloseDrawer()
}

// CloseOrderModal hides the order form. Whether the close comes from a user
// cancel or a successful submission, the drawer stays closed.
func (c *Coordinator) CloseOrderModal() {
	c.mu.Lock()
	c.modalOpen = false
	c.mu.Unlock()
}

// ModalOpen reports whether the order modal is showing.
func (c *Coordinator) ModalOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modalOpen
}
