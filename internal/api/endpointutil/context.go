package endpointutil

import (
	"context"
	"time"

	"github.com/golangci/golangci-hooks/internal/shared/apperrors"
	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	uuid "github.com/satori/go.uuid"
)

type contextKey string

const contextKeyRequestContext contextKey = "endpoint/requestContext"

// Context is what every endpoint gets besides its decoded request.
type Context struct {
	Ctx       context.Context
	Log       logutil.Log
	Lctx      logutil.Context
	StartedAt time.Time
}

func RequestContext(ctx context.Context) *Context {
	rc := ctx.Value(contextKeyRequestContext)
	if rc == nil {
		return nil
	}
	return rc.(*Context)
}

func StoreRequestContext(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, contextKeyRequestContext, rc)
}

func MakeRequestContext(ctx context.Context, log logutil.Log, et apperrors.Tracker) *Context {
	lctx := logutil.Context{
		"request_id": uuid.NewV4().String(),
	}
	log = logutil.WrapLogWithContext(log, lctx)
	log = apperrors.WrapLogWithTracker(log, lctx, et)

	return &Context{
		Ctx:       ctx,
		Log:       log,
		Lctx:      lctx,
		StartedAt: time.Now(),
	}
}
