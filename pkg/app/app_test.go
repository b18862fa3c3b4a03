package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gavv/httpexpect"
	"github.com/golangci/golangci-hooks/internal/shared/config"
	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/golangci/golangci-hooks/pkg/jobs"
	"github.com/golangci/golangci-hooks/pkg/webhooks"
	"github.com/golangci/golangci-hooks/pkg/webhooks/webhookstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJobs = `
jobs:
  - name: lint
    repositories: [https://github.com/golangci/lint.git]
    triggers:
      - kind: github_pull_request
`

type testApp struct {
	*App
	repo *webhookstest.Repository
}

func newTestApp(t *testing.T) *testApp {
	t.Setenv("HOOK_URL", "http://hook.endpoint/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://golangci.com")

	registry, err := jobs.Parse(strings.NewReader(testJobs))
	require.NoError(t, err)

	repo := webhookstest.NewRepository("golangci/lint", true,
		webhookstest.ServiceHook(7, "http://hook.endpoint/"))
	resolver := webhookstest.NewResolver().
		Add(webhooks.RepositoryName{Host: "github.com", Owner: "golangci", Name: "lint"}, repo)

	log := logutil.NewStderrLog("test")
	a := NewApp(
		SetLog(log),
		SetConfig(config.NewEnvConfig(log)),
		SetJobs(registry),
		SetResolver(resolver),
	)

	return &testApp{App: a, repo: repo}
}

func TestJobActions(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	events, err := a.PlanJob(ctx, "lint")
	require.NoError(t, err)
	assert.Equal(t, []string{"pull_request"}, events.Strings())
	assert.Zero(t, a.repo.CreatedCount())

	events, err = a.RegisterJob(ctx, "lint")
	require.NoError(t, err)
	assert.Equal(t, []string{"pull_request"}, events.Strings())
	assert.Equal(t, 1, a.repo.CreatedCount())

	require.NoError(t, a.UnregisterJob(ctx, "lint"))
	assert.Empty(t, a.repo.Hooks())

	_, err = a.RegisterJob(ctx, "unknown")
	assert.Error(t, err)
}

func TestHTTPHandler(t *testing.T) {
	a := newTestApp(t)

	server := httptest.NewServer(a.GetHTTPHandler())
	defer server.Close()

	e := httpexpect.New(t, server.URL)
	e.POST("/v1/jobs/lint/hooks").
		WithHeader("Origin", "https://golangci.com").
		Expect().
		Status(http.StatusOK).
		Header("Access-Control-Allow-Origin").Equal("https://golangci.com")

	e.GET("/v1/jobs/unknown/events").
		Expect().
		Status(http.StatusNotFound)

	assert.Equal(t, 1, a.repo.CreatedCount())
}
