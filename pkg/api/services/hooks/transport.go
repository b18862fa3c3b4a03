package hooks

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/golangci/golangci-hooks/internal/api/apierrors"
	"github.com/golangci/golangci-hooks/internal/api/endpointutil"
	"github.com/golangci/golangci-hooks/internal/api/transportutil"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type emptyResponse struct{}

func decodeJobRequest(_ context.Context, r *http.Request) (interface{}, error) {
	job := mux.Vars(r)["job"]
	if job == "" {
		return nil, errors.Wrap(apierrors.ErrBadRequest, "no job in url")
	}

	return &JobRequest{Job: job}, nil
}

func withRequestContext(f func(rc *endpointutil.Context, req *JobRequest) (interface{}, error)) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(*JobRequest)
		rc := endpointutil.RequestContext(ctx)
		req.FillLogContext(rc)

		return f(rc, req)
	}
}

func makeRegisterEndpoint(svc Service) endpoint.Endpoint {
	return withRequestContext(func(rc *endpointutil.Context, req *JobRequest) (interface{}, error) {
		return svc.Register(rc, req)
	})
}

func makeUnregisterEndpoint(svc Service) endpoint.Endpoint {
	return withRequestContext(func(rc *endpointutil.Context, req *JobRequest) (interface{}, error) {
		if err := svc.Unregister(rc, req); err != nil {
			return nil, err
		}
		return emptyResponse{}, nil
	})
}

func makeEventsEndpoint(svc Service) endpoint.Endpoint {
	return withRequestContext(func(rc *endpointutil.Context, req *JobRequest) (interface{}, error) {
		return svc.Events(rc, req)
	})
}

func RegisterHandlers(svc Service, regCtx *transportutil.HandlerRegContext) {
	options := []httptransport.ServerOption{
		httptransport.ServerBefore(transportutil.MakeStoreRequestContext(regCtx.Log, regCtx.ErrTracker)),
		httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(regCtx.Log)),
		httptransport.ServerErrorEncoder(transportutil.EncodeError),
		httptransport.ServerFinalizer(transportutil.FinalizeRequest),
	}

	regCtx.Router.Methods(http.MethodPost).Path("/v1/jobs/{job}/hooks").Handler(httptransport.NewServer(
		makeRegisterEndpoint(svc),
		decodeJobRequest,
		transportutil.EncodeResponse,
		options...,
	))
	regCtx.Router.Methods(http.MethodDelete).Path("/v1/jobs/{job}/hooks").Handler(httptransport.NewServer(
		makeUnregisterEndpoint(svc),
		decodeJobRequest,
		transportutil.EncodeResponse,
		options...,
	))
	regCtx.Router.Methods(http.MethodGet).Path("/v1/jobs/{job}/events").Handler(httptransport.NewServer(
		makeEventsEndpoint(svc),
		decodeJobRequest,
		transportutil.EncodeResponse,
		options...,
	))
}
