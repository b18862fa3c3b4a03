package provider

import "strings"

type Repo struct {
	ID        int
	FullName  string
	IsAdmin   bool
	IsPrivate bool
}

// splitFullName never fails: a full name without "/" is an owner with an empty name.
func (r Repo) splitFullName() (owner, name string) {
	parts := strings.SplitN(r.FullName, "/", 2)
	if len(parts) != 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func (r Repo) Name() string {
	_, name := r.splitFullName()
	return name
}

func (r Repo) Owner() string {
	owner, _ := r.splitFullName()
	return owner
}

type HookConfig struct {
	Name        string
	Events      []string
	URL         string
	ContentType string
	Secret      string
}

type Hook struct {
	ID     int
	Name   string
	Events []string
	Active bool

	// Config holds string entries of the remote config: "url" for web hooks,
	// service specific keys for legacy service hooks.
	Config map[string]string
}
