package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidSource = errors.New("invalid source")
	ErrNoData        = errors.New("no data")
	ErrMalformedRow  = errors.New("malformed row")
)
