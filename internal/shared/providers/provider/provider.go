package provider

import (
	"context"
)

//go:generate mockgen -package provider -source provider.go -destination provider_mock.go

type Provider interface {
	Name() string

	SetBaseURL(url string) error

	GetRepoByName(ctx context.Context, owner, repo string) (*Repo, error)

	ListRepoHooks(ctx context.Context, owner, repo string) ([]Hook, error)
	CreateRepoHook(ctx context.Context, owner, repo string, hook *HookConfig) (*Hook, error)
	DeleteRepoHook(ctx context.Context, owner, repo string, hookID int) error
}
