package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/golangci/golangci-hooks/internal/api/endpointutil"
	"github.com/golangci/golangci-hooks/internal/api/transportutil"
	"github.com/golangci/golangci-hooks/internal/shared/apperrors"
	"github.com/golangci/golangci-hooks/internal/shared/config"
	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/golangci/golangci-hooks/internal/shared/providers"
	"github.com/golangci/golangci-hooks/pkg/api/services/hooks"
	"github.com/golangci/golangci-hooks/pkg/jobs"
	"github.com/golangci/golangci-hooks/pkg/webhooks"
	"github.com/golangci/golangci-hooks/pkg/webhooks/githubrepo"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/urfave/negroni"
)

const defaultJobsFile = "jobs.yaml"

type appServices struct {
	hooks hooks.Service
}

type App struct {
	cfg             config.Config
	log             logutil.Log
	trackedLog      logutil.Log
	errTracker      apperrors.Tracker
	providerFactory providers.Factory
	resolver        webhooks.Resolver
	jobs            *jobs.Registry
	manager         *webhooks.Manager
	services        appServices
}

//nolint:gocyclo
func (a *App) buildDeps() {
	var slog *logutil.StderrLog
	if a.log == nil {
		slog = logutil.NewStderrLog("golangci-hooks")
		slog.SetLevel(logutil.LogLevelInfo)
		a.log = slog
	}

	if a.cfg == nil {
		a.cfg = config.NewEnvConfig(a.log)
	}

	if slog != nil {
		slog.SetLevel(logutil.ParseLevel(a.cfg.GetString("LOG_LEVEL"), logutil.LogLevelInfo))
	}

	if a.errTracker == nil {
		a.errTracker = apperrors.GetTracker(a.cfg, a.log, "hooks")
	}
	if a.trackedLog == nil {
		a.trackedLog = apperrors.WrapLogWithTracker(a.log, nil, a.errTracker)
	}

	if a.providerFactory == nil {
		a.providerFactory = providers.NewBasicFactory(a.cfg, a.trackedLog)
	}

	if a.jobs == nil {
		jobsFile := a.cfg.GetString("JOBS_FILE")
		if jobsFile == "" {
			jobsFile = defaultJobsFile
		}

		registry, err := jobs.Load(jobsFile)
		if err != nil {
			a.log.Fatalf("Can't load jobs: %s", err)
		}
		a.jobs = registry
	}

	if a.resolver == nil {
		resolver, err := a.buildResolver()
		if err != nil {
			a.log.Fatalf("Can't build repository resolver: %s", err)
		}
		a.resolver = resolver
	}
}

func (a App) buildResolver() (webhooks.Resolver, error) {
	tokens := a.cfg.GetStringList("GITHUB_TOKENS")
	if len(tokens) == 0 {
		return nil, errors.New("no GITHUB_TOKENS")
	}

	host := a.cfg.GetString("GITHUB_HOST")
	if host == "" {
		host = webhooks.DefaultHost
	}

	return githubrepo.NewResolver(a.providerFactory, host, tokens,
		a.cfg.GetString("HOOK_SECRET"), a.trackedLog.Child("resolver"))
}

func (a *App) buildManager() {
	if a.manager != nil {
		return
	}

	hookURL := a.cfg.GetString("HOOK_URL")
	if hookURL == "" {
		a.log.Fatalf("No HOOK_URL")
	}

	endpoint, err := url.Parse(hookURL)
	if err != nil {
		a.log.Fatalf("Invalid HOOK_URL %q: %s", hookURL, err)
	}

	a.manager = webhooks.NewManager(endpoint, a.resolver, a.trackedLog.Child("webhooks"))
}

func (a *App) buildServices() {
	a.services.hooks = hooks.BasicService{
		Manager: a.manager,
		Jobs:    a.jobs,
	}
}

func NewApp(modifiers ...Modifier) *App {
	a := App{}
	for _, m := range modifiers {
		m(&a)
	}
	a.buildDeps()
	a.buildManager()
	a.buildServices()

	return &a
}

func (a App) registerHandlers(r *mux.Router) {
	hooks.RegisterHandlers(a.services.hooks, &transportutil.HandlerRegContext{
		Router:     r,
		Log:        a.log,
		ErrTracker: a.errTracker,
	})
}

func (a App) RunForever() {
	http.Handle("/", a.GetHTTPHandler())

	addr := fmt.Sprintf(":%d", a.cfg.GetInt("port", 3000))
	a.log.Infof("Listening on %s...", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		a.log.Errorf("Can't listen HTTP on %s: %s", addr, err)
		os.Exit(1)
	}
}

func (a App) GetHTTPHandler() http.Handler {
	r := mux.NewRouter()
	a.registerHandlers(r)

	c := cors.New(cors.Options{
		AllowedOrigins:   a.cfg.GetStringList("CORS_ALLOWED_ORIGINS"),
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE"},
	})

	n := negroni.Classic()
	n.Use(c)
	n.UseHandler(r)
	return n
}

func (a App) requestContext(ctx context.Context, job string) *endpointutil.Context {
	rc := endpointutil.MakeRequestContext(ctx, a.log, a.errTracker)
	rc.Lctx["job"] = job
	return rc
}

func (a App) RegisterJob(ctx context.Context, job string) (webhooks.EventSet, error) {
	resp, err := a.services.hooks.Register(a.requestContext(ctx, job), &hooks.JobRequest{Job: job})
	if err != nil {
		return nil, err
	}

	return resp.Events, nil
}

func (a App) UnregisterJob(ctx context.Context, job string) error {
	return a.services.hooks.Unregister(a.requestContext(ctx, job), &hooks.JobRequest{Job: job})
}

func (a App) PlanJob(ctx context.Context, job string) (webhooks.EventSet, error) {
	resp, err := a.services.hooks.Events(a.requestContext(ctx, job), &hooks.JobRequest{Job: job})
	if err != nil {
		return nil, err
	}

	return resp.Events, nil
}

func (a App) Jobs() *jobs.Registry {
	return a.jobs
}
