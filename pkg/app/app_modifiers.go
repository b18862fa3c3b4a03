package app

import (
	"github.com/golangci/golangci-hooks/internal/shared/config"
	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/golangci/golangci-hooks/internal/shared/providers"
	"github.com/golangci/golangci-hooks/pkg/jobs"
	"github.com/golangci/golangci-hooks/pkg/webhooks"
)

type Modifier func(a *App)

func SetProviderFactory(pf providers.Factory) Modifier {
	return func(a *App) {
		a.providerFactory = pf
	}
}

func SetConfig(cfg config.Config) Modifier {
	return func(a *App) {
		a.cfg = cfg
	}
}

func SetLog(log logutil.Log) Modifier {
	return func(a *App) {
		a.log = log
	}
}

func SetResolver(r webhooks.Resolver) Modifier {
	return func(a *App) {
		a.resolver = r
	}
}

func SetJobs(r *jobs.Registry) Modifier {
	return func(a *App) {
		a.jobs = r
	}
}
