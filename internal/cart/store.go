package cart

import "sync"

// Store wraps the reducer with a mutex so concurrent handlers for the same
// session can mutate the cart safely. There is one logical writer (the
// shopper), but nothing stops their browser from firing requests in parallel.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{}
}

// AddItem merges the product into the cart and returns the effects the UI
// should perform (the drawer is forced open on every add).
func (st *Store) AddItem(p Product, quantity int) ([]string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, effects, err := Apply(st.state, AddItem{Product: p, Quantity: quantity})
	if err != nil {
		return nil, err
	}
	st.state = next
	return effects, nil
}

// RemoveItem deletes the matching line. No-op if the id is not in the cart.
func (st *Store) RemoveItem(productID string) {
	st.apply(RemoveItem{ProductID: productID})
}

// UpdateQuantity sets a line's quantity; requests below 1 are ignored.
func (st *Store) UpdateQuantity(productID string, quantity int) {
	st.apply(UpdateQuantity{ProductID: productID, Quantity: quantity})
}

// Clear empties the cart. Used after a successful checkout.
func (st *Store) Clear() {
	st.apply(Clear{})
}

// OpenDrawer and CloseDrawer toggle the drawer flag.
func (st *Store) OpenDrawer()  { st.apply(OpenDrawer{}) }
func (st *Store) CloseDrawer() { st.apply(CloseDrawer{}) }

// Snapshot returns a copy of the current state safe for the caller to keep.
func (st *Store) Snapshot() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return cloneState(st.state)
}

func (st *Store) apply(a Action) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, _, _ := Apply(st.state, a)
	st.state = next
}
