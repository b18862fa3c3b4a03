package webhooks

import (
	"net/url"
)

//go:generate mockgen -package webhooks -source matcher.go -destination matcher_mock.go

type HookPredicate func(hook Hook) bool

func (p HookPredicate) Or(q HookPredicate) HookPredicate {
	return func(hook Hook) bool {
		return p(hook) || q(hook)
	}
}

type RepoPredicate func(repo Repository) bool

// Matcher builds the filters used during reconciliation.
type Matcher interface {
	WithAdminAccess() RepoPredicate
	WebhookFor(endpoint *url.URL) HookPredicate
	ServiceWebhookFor(endpoint *url.URL) HookPredicate
}

type BasicMatcher struct {
	serviceName   string
	serviceURLKey string
}

var _ Matcher = BasicMatcher{}

func NewBasicMatcher() *BasicMatcher {
	return NewServiceMatcher(ServiceHookName, ServiceHookURLKey)
}

// NewServiceMatcher matches legacy service hooks by a custom service name and url config key.
func NewServiceMatcher(serviceName, serviceURLKey string) *BasicMatcher {
	return &BasicMatcher{
		serviceName:   serviceName,
		serviceURLKey: serviceURLKey,
	}
}

func (m BasicMatcher) WithAdminAccess() RepoPredicate {
	return func(repo Repository) bool {
		return repo.HasAdminAccess()
	}
}

func hookFor(name, urlKey string, endpoint *url.URL) HookPredicate {
	expected := endpoint.String()
	return func(hook Hook) bool {
		if hook.Name != name {
			return false
		}

		u := hook.Config[urlKey]
		return u != "" && u == expected
	}
}

func (m BasicMatcher) WebhookFor(endpoint *url.URL) HookPredicate {
	return hookFor(WebHookName, WebHookURLKey, endpoint)
}

func (m BasicMatcher) ServiceWebhookFor(endpoint *url.URL) HookPredicate {
	return hookFor(m.serviceName, m.serviceURLKey, endpoint)
}
