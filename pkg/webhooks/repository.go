package webhooks

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

//go:generate mockgen -package webhooks -source repository.go -destination repository_mock.go

// ErrAccessLost is returned by Repository when admin access disappeared after resolution.
var ErrAccessLost = errors.New("repository admin access was lost")

// Repository is a remote repository handle valid for the lifetime of its API session.
type Repository interface {
	FullName() string
	HasAdminAccess() bool

	GetHooks(ctx context.Context) ([]Hook, error)
	CreateHook(ctx context.Context, endpoint *url.URL, events EventSet) (*Hook, error)
	DeleteHook(ctx context.Context, hook Hook) error
}

// Resolver looks up every remote repository a name refers to. Zero repositories is not an error.
// On error already resolved repositories can be returned along with it.
type Resolver interface {
	Resolve(ctx context.Context, name RepositoryName) ([]Repository, error)
}
