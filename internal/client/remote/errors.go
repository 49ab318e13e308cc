package remote

import "errors"

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrBadRequest  = errors.New("request rejected")
)
