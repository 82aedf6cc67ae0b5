package checkout

import (
	"strings"

	"github.com/Armeldehe/ivoirestore-client/internal/cart"
)

// CustomerForm carries the three delivery fields every order needs.
type CustomerForm struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Validate checks that every field is non-empty after trimming and returns a
// field -> message map. An empty map means the form is valid. No order
// request is made while this map is non-empty.
func (f CustomerForm) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "phone is required"
	}
	if strings.TrimSpace(f.Location) == "" {
		errs["location"] = "delivery location is required"
	}
	return errs
}

// trimmed returns a copy of the form with surrounding whitespace removed,
// which is what gets sent upstream.
func (f CustomerForm) trimmed() CustomerForm {
	return CustomerForm{
		Name:     strings.TrimSpace(f.Name),
		Phone:    strings.TrimSpace(f.Phone),
		Location: strings.TrimSpace(f.Location),
	}
}

// ValidationError reports a rejected form; Fields is keyed by form field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "customer form validation failed"
}

// LineResult is the outcome of submitting one cart line. The upstream accepts
// a single product per order, so an N-line cart yields up to N results; lines
// after the first failure are never attempted.
type LineResult struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	OrderID   string `json:"orderId,omitempty"`
	Err       error  `json:"-"`
}

// CommittedCount returns how many results carry a successfully created order.
func CommittedCount(results []LineResult) int {
	var n int
	for _, r := range results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Confirmation is the payload the confirmation view renders after a
// successful checkout. FirstLine is display-only, not authoritative.
type Confirmation struct {
	CustomerName string    `json:"customerName"`
	FirstLine    cart.Line `json:"firstLine"`
	Multi        bool      `json:"multi"`
}
