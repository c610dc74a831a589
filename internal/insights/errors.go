package insights

import "errors"

// NoDataError marks an empty or missing section of an otherwise well-formed
// record. The dispatcher surfaces these as user-visible notices; nothing in
// this package is fatal.
type NoDataError struct {
	msg string
}

func (e *NoDataError) Error() string { return e.msg }

func noData(msg string) error { return &NoDataError{msg: msg} }

func IsNoData(err error) bool {
	var nd *NoDataError
	return errors.As(err, &nd)
}
