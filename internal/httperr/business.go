package httperr

import "errors"

// BusinessError is a recoverable, user-facing failure. Handlers translate the
// code into flash text; it never surfaces as an HTTP error status.
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
