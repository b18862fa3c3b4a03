package jobs

import (
	"github.com/golangci/golangci-hooks/pkg/webhooks"
	"github.com/pkg/errors"
)

type Trigger struct {
	Kind    webhooks.TriggerKind `yaml:"kind"`
	Enabled *bool                `yaml:"enabled,omitempty"`
}

// IsEnabled reports true unless the trigger was explicitly disabled.
func (t Trigger) IsEnabled() bool {
	return t.Enabled == nil || *t.Enabled
}

type Job struct {
	JobName      string    `yaml:"name"`
	Repositories []string  `yaml:"repositories"`
	Triggers     []Trigger `yaml:"triggers"`

	names []webhooks.RepositoryName
}

var _ webhooks.Job = &Job{}

func (j Job) Name() string {
	return j.JobName
}

func (j Job) EnabledTriggers() []webhooks.TriggerKind {
	var ret []webhooks.TriggerKind
	for _, t := range j.Triggers {
		if t.IsEnabled() {
			ret = append(ret, t.Kind)
		}
	}
	return ret
}

func (j Job) RepositoryNames() []webhooks.RepositoryName {
	return j.names
}

func (j *Job) parseNames() error {
	j.names = make([]webhooks.RepositoryName, 0, len(j.Repositories))
	for _, r := range j.Repositories {
		name, err := webhooks.ParseRepositoryName(r)
		if err != nil {
			return errors.Wrapf(err, "job %s", j.JobName)
		}
		j.names = append(j.names, name)
	}

	return nil
}
