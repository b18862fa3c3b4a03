package hooks

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gavv/httpexpect"
	"github.com/golangci/golangci-hooks/internal/api/transportutil"
	"github.com/golangci/golangci-hooks/internal/shared/apperrors"
	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/golangci/golangci-hooks/pkg/jobs"
	"github.com/golangci/golangci-hooks/pkg/webhooks"
	"github.com/golangci/golangci-hooks/pkg/webhooks/webhookstest"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJobs = `
jobs:
  - name: lint
    repositories: [golangci/lint, golangci/shared]
    triggers:
      - kind: github_push
      - kind: github_pull_request
  - name: nightly
    repositories: [golangci/shared]
`

const hookURL = "http://hook.endpoint/"

var (
	lintName   = webhooks.RepositoryName{Host: "github.com", Owner: "golangci", Name: "lint"}
	sharedName = webhooks.RepositoryName{Host: "github.com", Owner: "golangci", Name: "shared"}
)

type testEnv struct {
	e        *httpexpect.Expect
	resolver *webhookstest.Resolver
	lint     *webhookstest.Repository
	shared   *webhookstest.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	registry, err := jobs.Parse(strings.NewReader(testJobs))
	require.NoError(t, err)

	u, err := url.Parse(hookURL)
	require.NoError(t, err)

	env := &testEnv{
		resolver: webhookstest.NewResolver(),
		lint:     webhookstest.NewRepository("golangci/lint", true),
		shared: webhookstest.NewRepository("golangci/shared", true,
			webhookstest.WebHook(1, hookURL, webhooks.NewEventSet(webhooks.EventPush))),
	}
	env.resolver.Add(lintName, env.lint).Add(sharedName, env.shared)

	log := logutil.NewStderrLog("test")
	r := mux.NewRouter()
	RegisterHandlers(BasicService{
		Manager: webhooks.NewManager(u, env.resolver, log),
		Jobs:    registry,
	}, &transportutil.HandlerRegContext{
		Router:     r,
		Log:        log,
		ErrTracker: apperrors.NewNopTracker(),
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	env.e = httpexpect.New(t, server.URL)
	return env
}

func TestRegisterJobHooks(t *testing.T) {
	env := newTestEnv(t)

	env.e.POST("/v1/jobs/lint/hooks").
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("events").Array().Elements("pull_request", "push")

	require.Len(t, env.lint.Hooks(), 1)
	assert.True(t, env.lint.Hooks()[0].Events.Equal(
		webhooks.NewEventSet(webhooks.EventPush, webhooks.EventPullRequest)))
	assert.Equal(t, []int{1}, env.shared.DeletedIDs())
	assert.Len(t, env.shared.Hooks(), 1)
}

func TestUnregisterKeepsHooksOfOtherJobs(t *testing.T) {
	env := newTestEnv(t)

	env.e.DELETE("/v1/jobs/lint/hooks").
		Expect().
		Status(http.StatusOK).
		JSON().Object().Empty()

	assert.Empty(t, env.shared.DeletedIDs(), "golangci/shared is still used by nightly")
	assert.Len(t, env.shared.Hooks(), 1)
}

func TestUnregisterLastJob(t *testing.T) {
	env := newTestEnv(t)

	env.e.DELETE("/v1/jobs/nightly/hooks").
		Expect().
		Status(http.StatusOK)

	// lint still uses it
	assert.Len(t, env.shared.Hooks(), 1)

	env.e.DELETE("/v1/jobs/lint/hooks").Expect().Status(http.StatusOK)
	assert.Len(t, env.shared.Hooks(), 1)
}

func TestEvents(t *testing.T) {
	env := newTestEnv(t)

	env.e.GET("/v1/jobs/lint/events").
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("events").Array().Elements("pull_request", "push")

	env.e.GET("/v1/jobs/nightly/events").
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("events").Array().Empty()

	assert.Zero(t, env.lint.CreatedCount())
}

func TestUnknownJob(t *testing.T) {
	env := newTestEnv(t)

	env.e.POST("/v1/jobs/unknown/hooks").
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().ContainsKey("error")
	env.e.DELETE("/v1/jobs/unknown/hooks").Expect().Status(http.StatusNotFound)
	env.e.GET("/v1/jobs/unknown/events").Expect().Status(http.StatusNotFound)
}

func TestRemoteFailure(t *testing.T) {
	env := newTestEnv(t)
	env.lint.CreateHookErr = errors.New("github is down")

	env.e.POST("/v1/jobs/lint/hooks").
		Expect().
		Status(http.StatusInternalServerError).
		JSON().Object().Value("error").String().Equal("internal error")

	assert.Len(t, env.shared.Hooks(), 1, "other repositories are still registered")
}
