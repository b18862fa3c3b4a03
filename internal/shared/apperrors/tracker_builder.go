package apperrors

import (
	"github.com/golangci/golangci-hooks/internal/shared/config"
	"github.com/golangci/golangci-hooks/internal/shared/logutil"
)

const defaultEnv = "dev"

// GetTracker picks rollbar, then sentry. A tracker enabled without credentials
// is a misconfiguration: it's reported and hook runs go untracked.
func GetTracker(cfg config.Config, log logutil.Log, project string) Tracker {
	env := cfg.GetString("GO_ENV")
	if env == "" {
		env = defaultEnv
	}

	switch {
	case cfg.GetBool("ROLLBAR_ENABLED", false):
		token := cfg.GetString("ROLLBAR_TOKEN")
		if token == "" {
			log.Warnf("ROLLBAR_ENABLED without ROLLBAR_TOKEN, errors of %s won't be tracked", project)
			break
		}
		log.Infof("Tracking errors of %s (%s) in rollbar", project, env)
		return NewRollbarTracker(token, project, env)
	case cfg.GetBool("SENTRY_ENABLED", false):
		dsn := cfg.GetString("SENTRY_DSN")
		if dsn == "" {
			log.Warnf("SENTRY_ENABLED without SENTRY_DSN, errors of %s won't be tracked", project)
			break
		}

		t, err := NewSentryTracker(dsn, env)
		if err != nil {
			log.Warnf("Can't make sentry error tracker: %s", err)
			break
		}
		log.Infof("Tracking errors of %s (%s) in sentry", project, env)
		return t
	}

	return NewNopTracker()
}
