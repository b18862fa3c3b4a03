package apierrors

import (
	"github.com/pkg/errors"
)

var (
	ErrNotFound   = errors.New("no data")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal error")
)
