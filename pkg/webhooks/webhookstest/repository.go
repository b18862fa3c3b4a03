// Package webhookstest provides in-memory remote repositories for tests.
package webhookstest

import (
	"context"
	"net/url"
	"sync"

	"github.com/golangci/golangci-hooks/pkg/webhooks"
)

type Repository struct {
	Name    string
	IsAdmin bool

	// errors returned by the next calls, if set
	GetHooksErr   error
	CreateHookErr error
	DeleteHookErr map[int]error

	mu      sync.Mutex
	hooks   []webhooks.Hook
	nextID  int
	deleted []int
	created int
}

var _ webhooks.Repository = &Repository{}

func NewRepository(name string, isAdmin bool, hooks ...webhooks.Hook) *Repository {
	r := &Repository{
		Name:    name,
		IsAdmin: isAdmin,
		nextID:  1000,
	}
	r.hooks = append(r.hooks, hooks...)
	return r
}

func (r *Repository) FullName() string {
	return r.Name
}

func (r *Repository) HasAdminAccess() bool {
	return r.IsAdmin
}

func (r *Repository) GetHooks(ctx context.Context) ([]webhooks.Hook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.GetHooksErr != nil {
		return nil, r.GetHooksErr
	}

	return append([]webhooks.Hook(nil), r.hooks...), nil
}

func (r *Repository) CreateHook(ctx context.Context, endpoint *url.URL, events webhooks.EventSet) (*webhooks.Hook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CreateHookErr != nil {
		return nil, r.CreateHookErr
	}

	r.nextID++
	r.created++
	hook := WebHook(r.nextID, endpoint.String(), events)
	r.hooks = append(r.hooks, hook)
	return &hook, nil
}

func (r *Repository) DeleteHook(ctx context.Context, hook webhooks.Hook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.DeleteHookErr[hook.ID]; err != nil {
		return err
	}

	for i, h := range r.hooks {
		if h.ID == hook.ID {
			r.hooks = append(r.hooks[:i], r.hooks[i+1:]...)
			r.deleted = append(r.deleted, hook.ID)
			return nil
		}
	}

	return nil
}

// Hooks returns the current remote state.
func (r *Repository) Hooks() []webhooks.Hook {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]webhooks.Hook(nil), r.hooks...)
}

func (r *Repository) DeletedIDs() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.deleted...)
}

func (r *Repository) CreatedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created
}

func WebHook(id int, endpoint string, events webhooks.EventSet) webhooks.Hook {
	return webhooks.Hook{
		ID:     id,
		Name:   webhooks.WebHookName,
		Config: map[string]string{webhooks.WebHookURLKey: endpoint, "content_type": "json"},
		Events: events.Union(),
	}
}

func ServiceHook(id int, endpoint string) webhooks.Hook {
	return webhooks.Hook{
		ID:     id,
		Name:   webhooks.ServiceHookName,
		Config: map[string]string{webhooks.ServiceHookURLKey: endpoint},
		Events: webhooks.NewEventSet(webhooks.EventPush),
	}
}
