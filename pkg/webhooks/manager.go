package webhooks

import (
	"context"
	"net/url"

	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// Action is a deferred reconciliation, e.g. run on job save.
type Action func(ctx context.Context) error

type RepositoryAction func(ctx context.Context, name RepositoryName) error

type HookAction func(ctx context.Context, repo Repository, hook Hook) error

// Manager keeps exactly one web hook pointing at endpoint in every
// administrable repository it is asked to register. It holds no state
// between calls and is safe for concurrent use.
type Manager struct {
	endpoint   *url.URL
	resolver   Resolver
	matcher    Matcher
	planner    *Planner
	deleteHook HookAction
	log        logutil.Log
}

type Option func(m *Manager)

func SetMatcher(matcher Matcher) Option {
	return func(m *Manager) {
		m.matcher = matcher
	}
}

func SetPlanner(p *Planner) Option {
	return func(m *Manager) {
		m.planner = p
	}
}

func SetHookDeleter(del HookAction) Option {
	return func(m *Manager) {
		m.deleteHook = del
	}
}

func NewManager(endpoint *url.URL, resolver Resolver, log logutil.Log, opts ...Option) *Manager {
	m := &Manager{
		endpoint: endpoint,
		resolver: resolver,
		log:      log,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.matcher == nil {
		m.matcher = NewBasicMatcher()
	}
	if m.planner == nil {
		m.planner = DefaultPlanner()
	}
	if m.deleteHook == nil {
		m.deleteHook = m.DeleteWebhook()
	}

	return m
}

func (m Manager) Endpoint() *url.URL {
	return m.endpoint
}

func (m Manager) Planner() *Planner {
	return m.planner
}

func (m Manager) runLog(name RepositoryName) logutil.Log {
	return logutil.WrapLogWithContext(m.log, logutil.Context{
		"run_id": uuid.NewV4().String(),
		"repo":   name.String(),
	})
}

// DeleteWebhook returns the action deleting a hook, its error is reported, never swallowed.
func (m Manager) DeleteWebhook() HookAction {
	return func(ctx context.Context, repo Repository, hook Hook) error {
		m.log.Infof("Deleting hook %d (%s) subscribed to %s from %s",
			hook.ID, hook.Name, hook.Events, repo.FullName())
		if err := repo.DeleteHook(ctx, hook); err != nil {
			return errors.Wrapf(err, "failed to delete hook %d from %s", hook.ID, repo.FullName())
		}

		return nil
	}
}

func (m Manager) adminRepos(ctx context.Context, log logutil.Log, name RepositoryName) ([]Repository, error) {
	resolved, err := m.resolver.Resolve(ctx, name)
	if err != nil {
		err = errors.Wrapf(err, "failed to resolve %s", name)
	}

	hasAdminAccess := m.matcher.WithAdminAccess()

	var ret []Repository
	for _, repo := range resolved {
		if !hasAdminAccess(repo) {
			log.Infof("No admin access to %s, skipping it", repo.FullName())
			continue
		}
		ret = append(ret, repo)
	}

	return ret, err
}

func (m Manager) fetchHooks(ctx context.Context, log logutil.Log, repo Repository) ([]Hook, bool, error) {
	hooks, err := repo.GetHooks(ctx)
	if err != nil {
		if errors.Cause(err) == ErrAccessLost {
			log.Warnf("Lost admin access to %s, skipping it: %s", repo.FullName(), err)
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to fetch hooks of %s", repo.FullName())
	}

	return hooks, true, nil
}

// UnregisterFor removes this endpoint's hooks from every administrable
// repository name resolves to. Web hooks of active names are kept: only
// legacy service hooks are removed for them. Nothing is ever created.
func (m Manager) UnregisterFor(ctx context.Context, name RepositoryName, active []RepositoryName) error {
	log := m.runLog(name)

	var result *multierror.Error
	repos, err := m.adminRepos(ctx, log, name)
	if err != nil {
		result = multierror.Append(result, err)
	}
	if len(repos) == 0 {
		return result.ErrorOrNil()
	}

	matches := m.matcher.ServiceWebhookFor(m.endpoint)
	if !IsActive(name, active) {
		matches = matches.Or(m.matcher.WebhookFor(m.endpoint))
	}

	for _, repo := range repos {
		if err := m.unregisterIn(ctx, log, repo, matches); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

func (m Manager) unregisterIn(ctx context.Context, log logutil.Log, repo Repository, matches HookPredicate) error {
	hooks, ok, err := m.fetchHooks(ctx, log, repo)
	if !ok {
		return err
	}

	var result *multierror.Error
	for _, hook := range hooks {
		if !matches(hook) {
			continue
		}

		if err := m.deleteHook(ctx, repo, hook); err != nil {
			log.Warnf("Can't delete hook: %s", err)
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// CreateHookSubscribedTo returns an action replacing all web hooks of this
// endpoint with a single one subscribed to the union of their events and
// events. The hook is created even if the union is empty.
func (m Manager) CreateHookSubscribedTo(events EventSet) RepositoryAction {
	desired := events.Union()

	return func(ctx context.Context, name RepositoryName) error {
		log := m.runLog(name)

		var result *multierror.Error
		repos, err := m.adminRepos(ctx, log, name)
		if err != nil {
			result = multierror.Append(result, err)
		}
		if len(repos) == 0 {
			return result.ErrorOrNil()
		}

		isOurs := m.matcher.WebhookFor(m.endpoint)
		for _, repo := range repos {
			if err := m.replaceHooksIn(ctx, log, repo, isOurs, desired); err != nil {
				result = multierror.Append(result, err)
			}
		}

		return result.ErrorOrNil()
	}
}

func (m Manager) replaceHooksIn(ctx context.Context, log logutil.Log, repo Repository,
	isOurs HookPredicate, desired EventSet) error {

	hooks, ok, err := m.fetchHooks(ctx, log, repo)
	if !ok {
		return err
	}

	merged := desired.Union()
	var ours []Hook
	for _, hook := range hooks {
		if isOurs(hook) {
			ours = append(ours, hook)
			merged = merged.Union(hook.Events)
		}
	}

	for _, hook := range ours {
		// an undeleted hook plus a new one would be a duplicate
		if err := m.deleteHook(ctx, repo, hook); err != nil {
			return errors.Wrapf(err, "won't create hook in %s", repo.FullName())
		}
	}

	hook, err := repo.CreateHook(ctx, m.endpoint, merged)
	if err != nil {
		return errors.Wrapf(err, "failed to create hook in %s", repo.FullName())
	}

	log.Infof("Created hook %d in %s subscribed to %s, replaced %d old hooks",
		hook.ID, repo.FullName(), merged, len(ours))
	return nil
}

// RegisterFor binds the events the job needs now and returns the deferred
// registration over all of its repositories.
func (m Manager) RegisterFor(job Job) Action {
	create := m.CreateHookSubscribedTo(m.planner.DesiredEventsFor(job))
	names := job.RepositoryNames()

	return func(ctx context.Context) error {
		var result *multierror.Error
		for _, name := range names {
			if err := create(ctx, name); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "job %s", job.Name()))
			}
		}

		return result.ErrorOrNil()
	}
}
