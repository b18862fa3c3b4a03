package providers

import (
	"fmt"
	"time"

	"github.com/golangci/golangci-hooks/internal/shared/config"
	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/golangci/golangci-hooks/internal/shared/providers/implementations"
	"github.com/golangci/golangci-hooks/internal/shared/providers/provider"
	"github.com/pkg/errors"
)

type Factory interface {
	BuildForToken(providerName, accessToken string) (provider.Provider, error)
}

type BasicFactory struct {
	log          logutil.Log
	baseURL      string
	totalTimeout time.Duration
	maxRetries   int
}

func NewBasicFactory(cfg config.Config, log logutil.Log) *BasicFactory {
	return &BasicFactory{
		log:          log,
		baseURL:      cfg.GetString("GITHUB_API_URL"),
		totalTimeout: cfg.GetDuration("PROVIDER_TIMEOUT", 30*time.Second),
		maxRetries:   cfg.GetInt("PROVIDER_MAX_RETRIES", 3),
	}
}

func (f BasicFactory) buildImpl(providerName, accessToken string) (provider.Provider, error) {
	switch providerName {
	case implementations.GithubProviderName:
		return implementations.NewGithub(accessToken, f.log.Child("github")), nil
	}

	return nil, fmt.Errorf("invalid provider name %q", providerName)
}

func (f BasicFactory) BuildForToken(providerName, accessToken string) (provider.Provider, error) {
	p, err := f.buildImpl(providerName, accessToken)
	if err != nil {
		return nil, err
	}

	if f.baseURL != "" {
		if err = p.SetBaseURL(f.baseURL); err != nil {
			return nil, errors.Wrapf(err, "failed to set base url %q", f.baseURL)
		}
	}

	return implementations.NewStableProvider(p, f.totalTimeout, f.maxRetries), nil
}
