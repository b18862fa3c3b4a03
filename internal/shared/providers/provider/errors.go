package provider

import "github.com/pkg/errors"

var (
	ErrUnauthorized = errors.New("no VCS provider authorization")
	ErrForbidden    = errors.New("access forbidden by VCS provider")
	ErrNotFound     = errors.New("not found in VCS provider")
)

// IsPermanentError reports errors which won't go away on retry.
func IsPermanentError(err error) bool {
	causeErr := errors.Cause(err)
	return causeErr == ErrNotFound || causeErr == ErrUnauthorized || causeErr == ErrForbidden
}
