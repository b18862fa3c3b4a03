package hooks

import (
	"github.com/golangci/golangci-hooks/internal/api/apierrors"
	"github.com/golangci/golangci-hooks/internal/api/endpointutil"
	"github.com/golangci/golangci-hooks/pkg/jobs"
	"github.com/golangci/golangci-hooks/pkg/webhooks"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

type JobRequest struct {
	Job string
}

func (r JobRequest) FillLogContext(rc *endpointutil.Context) {
	rc.Lctx["job"] = r.Job
}

type EventsResponse struct {
	Events webhooks.EventSet `json:"events"`
}

type Service interface {
	//url:/v1/jobs/{job}/hooks method:POST
	Register(rc *endpointutil.Context, req *JobRequest) (*EventsResponse, error)

	//url:/v1/jobs/{job}/hooks method:DELETE
	Unregister(rc *endpointutil.Context, req *JobRequest) error

	//url:/v1/jobs/{job}/events method:GET
	Events(rc *endpointutil.Context, req *JobRequest) (*EventsResponse, error)
}

type BasicService struct {
	Manager *webhooks.Manager
	Jobs    *jobs.Registry
}

func (s BasicService) getJob(name string) (*jobs.Job, error) {
	job, err := s.Jobs.Get(name)
	if err != nil {
		if errors.Cause(err) == jobs.ErrJobNotFound {
			return nil, errors.Wrapf(apierrors.ErrNotFound, "no job %q", name)
		}
		return nil, err
	}

	return job, nil
}

func (s BasicService) Register(rc *endpointutil.Context, req *JobRequest) (*EventsResponse, error) {
	job, err := s.getJob(req.Job)
	if err != nil {
		return nil, err
	}

	events := s.Manager.Planner().DesiredEventsFor(job)
	if err = s.Manager.RegisterFor(job)(rc.Ctx); err != nil {
		return nil, errors.Wrap(err, "failed to register hooks")
	}

	rc.Log.Infof("Registered hooks of %d repositories subscribed to %s",
		len(job.RepositoryNames()), events)
	return &EventsResponse{Events: events}, nil
}

func (s BasicService) Unregister(rc *endpointutil.Context, req *JobRequest) error {
	job, err := s.getJob(req.Job)
	if err != nil {
		return err
	}

	active := s.Jobs.ActiveNames(job.Name())

	var result *multierror.Error
	for _, name := range job.RepositoryNames() {
		if err := s.Manager.UnregisterFor(rc.Ctx, name, active); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err = result.ErrorOrNil(); err != nil {
		return errors.Wrap(err, "failed to unregister hooks")
	}

	rc.Log.Infof("Unregistered hooks of %d repositories", len(job.RepositoryNames()))
	return nil
}

func (s BasicService) Events(rc *endpointutil.Context, req *JobRequest) (*EventsResponse, error) {
	job, err := s.getJob(req.Job)
	if err != nil {
		return nil, err
	}

	return &EventsResponse{
		Events: s.Manager.Planner().DesiredEventsFor(job),
	}, nil
}
