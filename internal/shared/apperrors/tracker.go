package apperrors

import (
	"net/http"

	"github.com/golangci/golangci-hooks/internal/shared/logutil"
)

type Level string

const (
	LevelError Level = "ERROR"
	LevelWarn  Level = "WARN"
)

type Tracker interface {
	Track(level Level, errorText string, lctx logutil.Context)
	WithHTTPRequest(r *http.Request) Tracker
}
