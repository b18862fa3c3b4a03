package apperrors

import (
	"net/http"

	"github.com/golangci/golangci-hooks/internal/shared/logutil"
)

// NopTracker drops reports, used when no tracker is configured and in tests.
type NopTracker struct{}

var _ Tracker = NopTracker{}

func NewNopTracker() *NopTracker {
	return &NopTracker{}
}

func (NopTracker) Track(Level, string, logutil.Context) {}

func (t NopTracker) WithHTTPRequest(*http.Request) Tracker {
	return t
}
