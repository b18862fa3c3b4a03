package implementations

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/golangci/golangci-hooks/internal/shared/providers/provider"
	"github.com/google/go-github/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Check the struct is implementing the Provider interface.
var _ provider.Provider = &Github{}

const GithubProviderName = "github.com"

const hooksPerPage = 100 // max allowed by GitHub

type Github struct {
	accessToken string
	baseURL     *url.URL
	log         logutil.Log
}

func NewGithub(accessToken string, log logutil.Log) *Github {
	return &Github{
		accessToken: accessToken,
		log:         log,
	}
}

func (p Github) Name() string {
	return GithubProviderName
}

func (p *Github) SetBaseURL(s string) error {
	if !strings.HasSuffix(s, "/") {
		s += "/" // go-github requires trailing slash
	}

	baseURL, err := url.Parse(s)
	if err != nil {
		return errors.Wrap(err, "failed to parse url")
	}

	p.baseURL = baseURL
	return nil
}

func (p Github) client(ctx context.Context) *github.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{
			AccessToken: p.accessToken,
		},
	)
	tc := oauth2.NewClient(ctx, ts)
	c := github.NewClient(tc)
	if p.baseURL != nil {
		c.BaseURL = p.baseURL
	}

	return c
}

func (p Github) unwrapError(err error) error {
	if er, ok := err.(*github.ErrorResponse); ok && er.Response != nil {
		switch er.Response.StatusCode {
		case http.StatusNotFound:
			return provider.ErrNotFound
		case http.StatusUnauthorized:
			return provider.ErrUnauthorized
		case http.StatusForbidden:
			return provider.ErrForbidden
		}
	}

	return err
}

func parseGithubRepository(r *github.Repository) *provider.Repo {
	return &provider.Repo{
		ID:        r.GetID(),
		FullName:  r.GetFullName(),
		IsAdmin:   r.GetPermissions()["admin"],
		IsPrivate: r.GetPrivate(),
	}
}

func (p Github) GetRepoByName(ctx context.Context, owner, repo string) (*provider.Repo, error) {
	r, _, err := p.client(ctx).Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, p.unwrapError(err)
	}

	return parseGithubRepository(r), nil
}

func (p Github) parseHook(h *github.Hook) *provider.Hook {
	cfg := map[string]string{}
	for k, v := range h.Config {
		if s, ok := v.(string); ok { // secrets and flags can be non-strings
			cfg[k] = s
		}
	}

	return &provider.Hook{
		ID:     h.GetID(),
		Name:   h.GetName(),
		Events: h.Events,
		Active: h.GetActive(),
		Config: cfg,
	}
}

// createHookRequest is sent instead of github.Hook: its omitempty on events
// would make GitHub subscribe an empty event list to "push".
type createHookRequest struct {
	Name   string                 `json:"name"`
	Active bool                   `json:"active"`
	Events []string               `json:"events"`
	Config map[string]interface{} `json:"config"`
}

func (p Github) CreateRepoHook(ctx context.Context, owner, repo string,
	hook *provider.HookConfig) (*provider.Hook, error) {

	body := createHookRequest{
		Name:   hook.Name,
		Active: true,
		Events: hook.Events,
		Config: map[string]interface{}{
			"url":          hook.URL,
			"content_type": hook.ContentType,
		},
	}
	if body.Events == nil {
		body.Events = []string{}
	}
	if hook.Secret != "" {
		body.Config["secret"] = hook.Secret
	}

	c := p.client(ctx)
	req, err := c.NewRequest(http.MethodPost, fmt.Sprintf("repos/%s/%s/hooks", owner, repo), body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	var rh github.Hook
	if _, err = c.Do(ctx, req, &rh); err != nil {
		return nil, p.unwrapError(err)
	}

	return p.parseHook(&rh), nil
}

func (p Github) ListRepoHooks(ctx context.Context, owner, repo string) ([]provider.Hook, error) {
	opts := github.ListOptions{
		PerPage: hooksPerPage,
	}

	var ret []provider.Hook
	for {
		hooks, resp, err := p.client(ctx).Repositories.ListHooks(ctx, owner, repo, &opts)
		if err != nil {
			return nil, p.unwrapError(err)
		}

		for _, h := range hooks {
			ret = append(ret, *p.parseHook(h))
		}

		if resp.NextPage == 0 { // it's the last page
			break
		}

		opts.Page = resp.NextPage
	}

	p.log.Debugf("hooks", "Listed %d hooks of %s/%s", len(ret), owner, repo)
	return ret, nil
}

func (p Github) DeleteRepoHook(ctx context.Context, owner, repo string, hookID int) error {
	_, err := p.client(ctx).Repositories.DeleteHook(ctx, owner, repo, hookID)
	if err != nil {
		return p.unwrapError(err)
	}

	return nil
}
