package githubrepo

import (
	"context"

	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/golangci/golangci-hooks/internal/shared/providers"
	"github.com/golangci/golangci-hooks/internal/shared/providers/implementations"
	"github.com/golangci/golangci-hooks/internal/shared/providers/provider"
	"github.com/golangci/golangci-hooks/pkg/webhooks"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Resolver looks a name up with every configured credential of its host.
// Each credential is an independent session and can see a different
// repository or the same one with different permissions.
type Resolver struct {
	host      string
	providers []provider.Provider
	secret    string
	log       logutil.Log
}

var _ webhooks.Resolver = &Resolver{}

func NewResolver(pf providers.Factory, host string, tokens []string, secret string, log logutil.Log) (*Resolver, error) {
	r := &Resolver{
		host:   host,
		secret: secret,
		log:    log,
	}

	for i, token := range tokens {
		p, err := pf.BuildForToken(implementations.GithubProviderName, token)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build provider for token #%d", i+1)
		}
		r.providers = append(r.providers, p)
	}

	return r, nil
}

func (r Resolver) Resolve(ctx context.Context, name webhooks.RepositoryName) ([]webhooks.Repository, error) {
	if !name.OnHost(r.host) {
		r.log.Infof("Repository %s isn't on %s, nothing to resolve", name, r.host)
		return nil, nil
	}

	var result *multierror.Error
	var ret []webhooks.Repository
	seen := map[int]int{} // repo id -> index in ret

	for i, p := range r.providers {
		repo, err := p.GetRepoByName(ctx, name.Owner, name.Name)
		if err != nil {
			if provider.IsPermanentError(err) {
				r.log.Debugf("resolve", "Token #%d can't see %s: %s", i+1, name, err)
				continue
			}

			result = multierror.Append(result, errors.Wrapf(err, "token #%d", i+1))
			continue
		}

		handle := NewRepository(p, *repo, r.secret)
		if idx, ok := seen[repo.ID]; ok {
			// the same repository through another credential: keep the stronger one
			if !ret[idx].HasAdminAccess() && repo.IsAdmin {
				ret[idx] = handle
			}
			continue
		}

		seen[repo.ID] = len(ret)
		ret = append(ret, handle)
	}

	return ret, result.ErrorOrNil()
}
