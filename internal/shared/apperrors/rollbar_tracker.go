package apperrors

import (
	"errors"
	"net/http"

	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/stvp/rollbar"
)

type RollbarTracker struct {
	r       *http.Request
	project string
}

func NewRollbarTracker(token, project, env string) *RollbarTracker {
	rollbar.Environment = env
	rollbar.Token = token

	return &RollbarTracker{
		project: project,
	}
}

func rollbarLevel(level Level) string {
	switch level {
	case LevelError:
		return rollbar.ERR
	case LevelWarn:
		return rollbar.WARN
	}

	panic("invalid level " + level)
}

func (t RollbarTracker) Track(level Level, errorText string, lctx logutil.Context) {
	fields := []*rollbar.Field{
		{Name: "project", Data: t.project},
	}
	if len(lctx) != 0 {
		fields = append(fields, &rollbar.Field{Name: "props", Data: map[string]interface{}(lctx)})
	}

	err := errors.New(errorText)
	if t.r != nil {
		rollbar.RequestError(rollbarLevel(level), t.r, err, fields...)
		return
	}

	rollbar.Error(rollbarLevel(level), err, fields...)
}

func (t RollbarTracker) WithHTTPRequest(r *http.Request) Tracker {
	t.r = r
	return t
}
