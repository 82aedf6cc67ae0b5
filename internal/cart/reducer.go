package cart

import "errors"

var (
	// ErrInvalidQuantity is returned when AddItem is asked for less than one unit.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrNegativePrice is returned when AddItem carries a negative unit price.
	ErrNegativePrice = errors.New("unit price must not be negative")
)

// Apply is the pure cart reducer: it returns the next state and the effects
// the UI layer should perform, leaving the input state untouched.
//
// Invariant kept here: at most one line per product id. Adding a product that
// is already in the cart increments its quantity instead of duplicating the
// line. Insertion order is display order.
func Apply(s State, a Action) (State, []string, error) {
	switch act := a.(type) {
	case AddItem:
		if act.Quantity < 1 {
			return s, nil, ErrInvalidQuantity
		}
		if act.Product.UnitPrice < 0 {
			return s, nil, ErrNegativePrice
		}
		next := cloneState(s)
		merged := false
		for i := range next.Lines {
			if next.Lines[i].ProductID == act.Product.ID {
				next.Lines[i].Quantity += act.Quantity
				merged = true
				break
			}
		}
		if !merged {
			next.Lines = append(next.Lines, Line{
				ProductID: act.Product.ID,
				Name:      act.Product.Name,
				UnitPrice: act.Product.UnitPrice,
				ImageURL:  act.Product.ImageURL,
				Quantity:  act.Quantity,
			})
		}
		next.DrawerOpen = true
		return next, []string{EffectOpenDrawer}, nil

	case RemoveItem:
		next := cloneState(s)
		for i := range next.Lines {
			if next.Lines[i].ProductID == act.ProductID {
				next.Lines = append(next.Lines[:i], next.Lines[i+1:]...)
				break
			}
		}
		return next, nil, nil

	case UpdateQuantity:
		// Below-1 requests are silently ignored: the quantity stepper in the
		// drawer decrements to this path, and the line must survive it.
		if act.Quantity < 1 {
			return s, nil, nil
		}
		next := cloneState(s)
		for i := range next.Lines {
			if next.Lines[i].ProductID == act.ProductID {
				next.Lines[i].Quantity = act.Quantity
				break
			}
		}
		return next, nil, nil

	case Clear:
		next := cloneState(s)
		next.Lines = nil
		return next, nil, nil

	case OpenDrawer:
		next := cloneState(s)
		next.DrawerOpen = true
		return next, nil, nil

	case CloseDrawer:
		next := cloneState(s)
		next.DrawerOpen = false
		return next, nil, nil

	default:
		return s, nil, nil
	}
}

func cloneState(s State) State {
	next := State{DrawerOpen: s.DrawerOpen}
	if len(s.Lines) > 0 {
		next.Lines = make([]Line, len(s.Lines))
		copy(next.Lines, s.Lines)
	}
	return next
}
