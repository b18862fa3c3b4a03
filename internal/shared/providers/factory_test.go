package providers

import (
	"testing"

	"github.com/golangci/golangci-hooks/internal/shared/config"
	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/golangci/golangci-hooks/internal/shared/providers/implementations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildForToken(t *testing.T) {
	t.Setenv("GITHUB_API_URL", "https://github.example.com/api/v3")
	log := logutil.NewStderrLog("test")
	f := NewBasicFactory(config.NewEnvConfig(log), log)

	p, err := f.BuildForToken(implementations.GithubProviderName, "token")
	require.NoError(t, err)
	assert.Equal(t, implementations.GithubProviderName, p.Name())
	_, ok := p.(*implementations.StableProvider)
	assert.True(t, ok)

	_, err = f.BuildForToken("gitlab", "token")
	assert.Error(t, err)
}
