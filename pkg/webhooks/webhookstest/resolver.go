package webhookstest

import (
	"context"
	"strings"

	"github.com/golangci/golangci-hooks/pkg/webhooks"
)

// Resolver resolves names by case-insensitive owner/name, hosts are ignored.
type Resolver struct {
	repos map[string][]webhooks.Repository
	Err   error
}

var _ webhooks.Resolver = &Resolver{}

func NewResolver() *Resolver {
	return &Resolver{
		repos: map[string][]webhooks.Repository{},
	}
}

func key(name webhooks.RepositoryName) string {
	return strings.ToLower(name.FullName())
}

// Add makes name resolve to repos in addition to already added ones.
func (r *Resolver) Add(name webhooks.RepositoryName, repos ...webhooks.Repository) *Resolver {
	r.repos[key(name)] = append(r.repos[key(name)], repos...)
	return r
}

func (r *Resolver) Resolve(ctx context.Context, name webhooks.RepositoryName) ([]webhooks.Repository, error) {
	return r.repos[key(name)], r.Err
}
