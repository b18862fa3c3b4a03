package githubrepo

import (
	"context"
	"net/url"

	"github.com/golangci/golangci-hooks/internal/shared/providers/provider"
	"github.com/golangci/golangci-hooks/pkg/webhooks"
	"github.com/pkg/errors"
)

const hookContentType = "json"

// Repository is a webhooks.Repository backed by a VCS provider session.
type Repository struct {
	p      provider.Provider
	repo   provider.Repo
	secret string
}

var _ webhooks.Repository = &Repository{}

func NewRepository(p provider.Provider, repo provider.Repo, secret string) *Repository {
	return &Repository{
		p:      p,
		repo:   repo,
		secret: secret,
	}
}

func (r Repository) FullName() string {
	return r.repo.FullName
}

func (r Repository) HasAdminAccess() bool {
	return r.repo.IsAdmin
}

func parseHook(h provider.Hook) webhooks.Hook {
	return webhooks.Hook{
		ID:     h.ID,
		Name:   h.Name,
		Config: h.Config,
		Events: webhooks.ParseEventSet(h.Events),
	}
}

func (r Repository) GetHooks(ctx context.Context) ([]webhooks.Hook, error) {
	hooks, err := r.p.ListRepoHooks(ctx, r.repo.Owner(), r.repo.Name())
	if err != nil {
		if provider.IsPermanentError(err) {
			return nil, errors.Wrapf(webhooks.ErrAccessLost, "can't list hooks: %s", err)
		}
		return nil, err
	}

	ret := make([]webhooks.Hook, 0, len(hooks))
	for _, h := range hooks {
		ret = append(ret, parseHook(h))
	}
	return ret, nil
}

func (r Repository) CreateHook(ctx context.Context, endpoint *url.URL, events webhooks.EventSet) (*webhooks.Hook, error) {
	hook, err := r.p.CreateRepoHook(ctx, r.repo.Owner(), r.repo.Name(), &provider.HookConfig{
		Name:        webhooks.WebHookName,
		Events:      events.Strings(),
		URL:         endpoint.String(),
		ContentType: hookContentType,
		Secret:      r.secret,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't save hook to %s", r.p.Name())
	}

	ret := parseHook(*hook)
	return &ret, nil
}

func (r Repository) DeleteHook(ctx context.Context, hook webhooks.Hook) error {
	return r.p.DeleteRepoHook(ctx, r.repo.Owner(), r.repo.Name(), hook.ID)
}
