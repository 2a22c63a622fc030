package services

import "errors"

// InvalidStateError menandakan precondition status entity tidak terpenuhi
// (meja tidak AVAILABLE, party tidak WAITING, dst). Controller memetakan
// error ini ke HTTP 400.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return e.Reason
}

func invalidState(reason string) error {
	return &InvalidStateError{Reason: reason}
}

// IsInvalidState reports whether err is an InvalidStateError.
func IsInvalidState(err error) bool {
	var ise *InvalidStateError
	return errors.As(err, &ise)
}
