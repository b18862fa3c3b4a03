package webhooks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const DefaultHost = "github.com"

var ErrInvalidRepositoryName = errors.New("invalid repository name")

// RepositoryName identifies a repository by host, owner and name. Several
// names can refer to the same physical repository.
type RepositoryName struct {
	Host  string
	Owner string
	Name  string
}

var repositoryNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^git@([^:/]+):([^/]+)/([^/]+?)(?:\.git)?/?$`),
	regexp.MustCompile(`^https?://(?:[^/@]+@)?([^/]+)/([^/]+)/([^/]+?)(?:\.git)?/?$`),
	regexp.MustCompile(`^git://([^/]+)/([^/]+)/([^/]+?)(?:\.git)?/?$`),
	regexp.MustCompile(`^ssh://(?:[^/@]+@)?([^/:]+)(?::\d+)?/([^/]+)/([^/]+?)(?:\.git)?/?$`),
}

var shortNamePattern = regexp.MustCompile(`^([\w.-]+)/([\w.-]+)$`)

// ParseRepositoryName accepts SCM urls (https, ssh, git and scp-like) and
// short "owner/name" forms, the latter default to DefaultHost.
func ParseRepositoryName(s string) (RepositoryName, error) {
	s = strings.TrimSpace(s)
	for _, re := range repositoryNamePatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return RepositoryName{Host: m[1], Owner: m[2], Name: m[3]}, nil
		}
	}

	if m := shortNamePattern.FindStringSubmatch(s); m != nil {
		return RepositoryName{Host: DefaultHost, Owner: m[1], Name: m[2]}, nil
	}

	return RepositoryName{}, errors.Wrapf(ErrInvalidRepositoryName, "%q", s)
}

func normalizeHost(host string) string {
	host = strings.ToLower(host)
	return strings.TrimPrefix(host, "www.")
}

// Matches compares names the way GitHub does: case-insensitively.
func (n RepositoryName) Matches(o RepositoryName) bool {
	return n.OnHost(o.Host) &&
		strings.EqualFold(n.Owner, o.Owner) &&
		strings.EqualFold(n.Name, o.Name)
}

func (n RepositoryName) OnHost(host string) bool {
	return normalizeHost(n.Host) == normalizeHost(host)
}

func (n RepositoryName) FullName() string {
	return fmt.Sprintf("%s/%s", n.Owner, n.Name)
}

func (n RepositoryName) String() string {
	return fmt.Sprintf("%s/%s/%s", n.Host, n.Owner, n.Name)
}

// IsActive reports whether name is one of the active names. The web hook of
// an active name is owned by whoever keeps it active, only legacy service
// hooks are cleaned up for it.
func IsActive(name RepositoryName, active []RepositoryName) bool {
	for _, a := range active {
		if name.Matches(a) {
			return true
		}
	}
	return false
}
