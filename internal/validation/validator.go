package validation

import (
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level validation
// registered. Field names in error reports follow the json tags so the
// frontend can key inline messages directly.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// required catches missing fields; the struct-level rule additionally
	// rejects whitespace-only customer fields.
	v.RegisterStructValidation(checkoutStructValidation, CheckoutRequest{})

	return v
}

// checkoutStructValidation rejects customer fields that are blank after trimming.
func checkoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CheckoutRequest)

	if req.CustomerName != "" && strings.TrimSpace(req.CustomerName) == "" {
		sl.ReportError(req.CustomerName, "customerName", "CustomerName", "notblank", "")
	}
	if req.CustomerPhone != "" && strings.TrimSpace(req.CustomerPhone) == "" {
		sl.ReportError(req.CustomerPhone, "customerPhone", "CustomerPhone", "notblank", "")
	}
	if req.CustomerLocation != "" && strings.TrimSpace(req.CustomerLocation) == "" {
		sl.ReportError(req.CustomerLocation, "customerLocation", "CustomerLocation", "notblank", "")
	}
}
