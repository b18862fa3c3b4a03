package transportutil

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/golangci/golangci-hooks/internal/api/apierrors"
	"github.com/golangci/golangci-hooks/internal/api/endpointutil"
	"github.com/pkg/errors"
)

type Error struct {
	HTTPCode int
	Message  string
}

func (e Error) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(e.Message)), nil
}

func (e Error) Error() string {
	return e.Message
}

type ErrorResponse struct {
	Error *Error `json:"error,omitempty"`
}

func makeError(code int, e error) *Error {
	return &Error{
		HTTPCode: code,
		Message:  e.Error(),
	}
}

func MakeError(e error) *Error {
	switch errors.Cause(e) {
	case apierrors.ErrNotFound:
		return makeError(http.StatusNotFound, e)
	case apierrors.ErrBadRequest:
		return makeError(http.StatusBadRequest, e)
	}

	// remote failures aren't shown to clients
	return makeError(http.StatusInternalServerError, apierrors.ErrInternal)
}

func EncodeError(ctx context.Context, err error, w http.ResponseWriter) {
	httpErr := MakeError(err)
	if rc := endpointutil.RequestContext(ctx); rc != nil {
		if httpErr.HTTPCode == http.StatusInternalServerError {
			rc.Log.Errorf("Request failed: %s", err)
		} else {
			rc.Log.Warnf("Request failed: %s", err)
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(httpErr.HTTPCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: httpErr,
	})
}

func EncodeResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	return json.NewEncoder(w).Encode(response)
}
