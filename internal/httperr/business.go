package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// Códigos de negócio usados pelo estoque e pela agenda.
const (
	CodeInsufficientStock = "insufficient_stock"
	CodeInvalidState      = "invalid_state"
	CodeProductNotFound   = "product_not_found"
	CodeServiceNotFound   = "service_not_found"
	CodeEventNotFound     = "event_not_found"
	CodeClientNotFound    = "client_not_found"
)
