package githubrepo

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/golangci/golangci-hooks/internal/shared/providers/provider"
	"github.com/golangci/golangci-hooks/pkg/webhooks"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anyArg = gomock.Any()
var testCtx = context.Background()

var dummy = webhooks.RepositoryName{Host: "github.com", Owner: "dummy", Name: "dummy"}

type tokenFactory map[string]provider.Provider

func (f tokenFactory) BuildForToken(providerName, accessToken string) (provider.Provider, error) {
	p, ok := f[accessToken]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return p, nil
}

func newTestResolver(t *testing.T, pf tokenFactory, tokens ...string) *Resolver {
	r, err := NewResolver(pf, "github.com", tokens, "s3cr3t", logutil.NewStderrLog("test"))
	require.NoError(t, err)
	return r
}

func TestGetHooksConvertsProviderHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := provider.NewMockProvider(ctrl)
	p.EXPECT().ListRepoHooks(anyArg, "dummy", "dummy").Return([]provider.Hook{{
		ID:     3,
		Name:   "web",
		Events: []string{"push", "create"},
		Config: map[string]string{"url": "http://hook.endpoint/"},
	}}, nil)

	r := NewRepository(p, provider.Repo{FullName: "dummy/dummy", IsAdmin: true}, "")
	hooks, err := r.GetHooks(testCtx)
	require.NoError(t, err)
	require.Len(t, hooks, 1)
	assert.Equal(t, 3, hooks[0].ID)
	assert.True(t, hooks[0].Events.Equal(webhooks.NewEventSet(webhooks.EventPush, webhooks.EventCreate)))
	assert.True(t, webhooks.NewBasicMatcher().WebhookFor(mustParseURL("http://hook.endpoint/"))(hooks[0]))
}

func TestGetHooksReportsLostAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := provider.NewMockProvider(ctrl)
	p.EXPECT().ListRepoHooks(anyArg, "dummy", "dummy").Return(nil, provider.ErrForbidden)

	r := NewRepository(p, provider.Repo{FullName: "dummy/dummy", IsAdmin: true}, "")
	_, err := r.GetHooks(testCtx)
	assert.Equal(t, webhooks.ErrAccessLost, pkgerrors.Cause(err))
}

func mustParseURL(s string) *url.URL {
	u, err := url.Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

func TestCreateHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := provider.NewMockProvider(ctrl)
	p.EXPECT().CreateRepoHook(anyArg, "dummy", "dummy", &provider.HookConfig{
		Name:        "web",
		Events:      []string{"pull_request", "push"},
		URL:         "http://hook.endpoint/",
		ContentType: "json",
		Secret:      "s3cr3t",
	}).Return(&provider.Hook{ID: 9, Name: "web", Events: []string{"push", "pull_request"}}, nil)

	r := NewRepository(p, provider.Repo{FullName: "dummy/dummy", IsAdmin: true}, "s3cr3t")
	hook, err := r.CreateHook(testCtx, mustParseURL("http://hook.endpoint/"),
		webhooks.NewEventSet(webhooks.EventPush, webhooks.EventPullRequest))
	require.NoError(t, err)
	assert.Equal(t, 9, hook.ID)
}

func TestDeleteHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := provider.NewMockProvider(ctrl)
	p.EXPECT().DeleteRepoHook(anyArg, "dummy", "dummy", 4).Return(nil)

	r := NewRepository(p, provider.Repo{FullName: "dummy/dummy"}, "")
	assert.NoError(t, r.DeleteHook(testCtx, webhooks.Hook{ID: 4}))
	assert.False(t, r.HasAdminAccess())
}

func TestResolveWithEveryToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := provider.NewMockProvider(ctrl)
	reader.EXPECT().GetRepoByName(anyArg, "dummy", "dummy").Return(&provider.Repo{ID: 1, FullName: "dummy/dummy"}, nil)
	admin := provider.NewMockProvider(ctrl)
	admin.EXPECT().GetRepoByName(anyArg, "dummy", "dummy").Return(&provider.Repo{ID: 1, FullName: "dummy/dummy", IsAdmin: true}, nil)
	stranger := provider.NewMockProvider(ctrl)
	stranger.EXPECT().GetRepoByName(anyArg, "dummy", "dummy").Return(nil, provider.ErrNotFound)

	r := newTestResolver(t, tokenFactory{"reader": reader, "admin": admin, "stranger": stranger},
		"reader", "stranger", "admin")
	repos, err := r.Resolve(testCtx, dummy)
	require.NoError(t, err)
	require.Len(t, repos, 1, "same repository must be resolved once")
	assert.True(t, repos[0].HasAdminAccess())
}

func TestResolveDistinctRepositories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := provider.NewMockProvider(ctrl)
	first.EXPECT().GetRepoByName(anyArg, "dummy", "dummy").Return(&provider.Repo{ID: 1, FullName: "dummy/dummy"}, nil)
	second := provider.NewMockProvider(ctrl)
	second.EXPECT().GetRepoByName(anyArg, "dummy", "dummy").Return(&provider.Repo{ID: 2, FullName: "dummy/dummy"}, nil)

	r := newTestResolver(t, tokenFactory{"first": first, "second": second}, "first", "second")
	repos, err := r.Resolve(testCtx, dummy)
	require.NoError(t, err)
	assert.Len(t, repos, 2)
}

func TestResolveReturnsPartialResultsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := provider.NewMockProvider(ctrl)
	broken.EXPECT().GetRepoByName(anyArg, "dummy", "dummy").Return(nil, errors.New("502 bad gateway"))
	ok := provider.NewMockProvider(ctrl)
	ok.EXPECT().GetRepoByName(anyArg, "dummy", "dummy").Return(&provider.Repo{ID: 1, FullName: "dummy/dummy"}, nil)

	r := newTestResolver(t, tokenFactory{"broken": broken, "ok": ok}, "broken", "ok")
	repos, err := r.Resolve(testCtx, dummy)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502 bad gateway")
	assert.Len(t, repos, 1)
}

func TestResolveOtherHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newTestResolver(t, tokenFactory{"t": provider.NewMockProvider(ctrl)}, "t")
	repos, err := r.Resolve(testCtx, webhooks.RepositoryName{Host: "gitlab.com", Owner: "dummy", Name: "dummy"})
	assert.NoError(t, err)
	assert.Empty(t, repos)
}

func TestNewResolverFailsOnBadToken(t *testing.T) {
	_, err := NewResolver(tokenFactory{}, "github.com", []string{"nope"}, "", logutil.NewStderrLog("test"))
	assert.Error(t, err)
}
