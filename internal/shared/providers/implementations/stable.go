package implementations

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/golangci/golangci-hooks/internal/shared/providers/provider"
	"github.com/pkg/errors"
)

// Check the struct is implementing the Provider interface.
var _ provider.Provider = &StableProvider{}

// StableProvider retries idempotent calls of the underlying provider.
// Hook creation isn't idempotent and is never retried.
type StableProvider struct {
	underlying   provider.Provider
	totalTimeout time.Duration
	maxRetries   int
}

func NewStableProvider(underlying provider.Provider, totalTimeout time.Duration, maxRetries int) *StableProvider {
	return &StableProvider{
		underlying:   underlying,
		totalTimeout: totalTimeout,
		maxRetries:   maxRetries,
	}
}

func (p StableProvider) Name() string {
	return p.underlying.Name()
}

func (p StableProvider) SetBaseURL(s string) error {
	return p.underlying.SetBaseURL(s)
}

func (p StableProvider) retry(ctx context.Context, f func() error) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = p.totalTimeout

	bmr := backoff.WithContext(backoff.WithMaxRetries(b, uint64(p.maxRetries)), ctx)
	return backoff.Retry(func() error {
		err := f()
		if err != nil && provider.IsPermanentError(err) {
			return backoff.Permanent(err)
		}
		return err
	}, bmr)
}

func (p StableProvider) GetRepoByName(ctx context.Context, owner, repo string) (retRepo *provider.Repo, err error) {
	err = p.retry(ctx, func() error {
		retRepo, err = p.underlying.GetRepoByName(ctx, owner, repo)
		return err
	})
	return
}

func (p StableProvider) ListRepoHooks(ctx context.Context, owner, repo string) (ret []provider.Hook, err error) {
	err = p.retry(ctx, func() error {
		ret, err = p.underlying.ListRepoHooks(ctx, owner, repo)
		return err
	})
	return
}

func (p StableProvider) CreateRepoHook(ctx context.Context, owner, repo string,
	hook *provider.HookConfig) (*provider.Hook, error) {

	return p.underlying.CreateRepoHook(ctx, owner, repo, hook)
}

func (p StableProvider) DeleteRepoHook(ctx context.Context, owner, repo string, hookID int) error {
	return p.retry(ctx, func() error {
		err := p.underlying.DeleteRepoHook(ctx, owner, repo, hookID)
		if errors.Cause(err) == provider.ErrNotFound {
			return nil // deleted by a previous attempt
		}
		return err
	})
}
