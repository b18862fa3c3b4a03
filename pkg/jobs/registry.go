package jobs

import (
	"io"
	"os"
	"sort"

	"github.com/golangci/golangci-hooks/pkg/webhooks"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrJobNotFound = errors.New("job not found")

type file struct {
	Jobs []*Job `yaml:"jobs"`
}

// Registry is an immutable set of jobs keyed by name.
type Registry struct {
	jobs map[string]*Job
}

func NewRegistry(jobs ...*Job) (*Registry, error) {
	r := &Registry{
		jobs: map[string]*Job{},
	}

	for _, j := range jobs {
		if j.JobName == "" {
			return nil, errors.New("job without name")
		}
		if _, ok := r.jobs[j.JobName]; ok {
			return nil, errors.Errorf("duplicate job %s", j.JobName)
		}
		if err := j.parseNames(); err != nil {
			return nil, err
		}
		r.jobs[j.JobName] = j
	}

	return r, nil
}

func Parse(in io.Reader) (*Registry, error) {
	var f file
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "invalid jobs file")
	}

	return NewRegistry(f.Jobs...)
}

func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open jobs file")
	}
	defer f.Close()

	r, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "can't load %s", path)
	}

	return r, nil
}

func (r Registry) Get(name string) (*Job, error) {
	j, ok := r.jobs[name]
	if !ok {
		return nil, errors.Wrapf(ErrJobNotFound, "no job %q", name)
	}

	return j, nil
}

// All returns jobs sorted by name.
func (r Registry) All() []*Job {
	ret := make([]*Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		ret = append(ret, j)
	}
	sort.Slice(ret, func(i, k int) bool {
		return ret[i].JobName < ret[k].JobName
	})
	return ret
}

// ActiveNames returns repository names still used by jobs other than exceptJob:
// their web hooks must survive exceptJob's unregistration.
func (r Registry) ActiveNames(exceptJob string) []webhooks.RepositoryName {
	var ret []webhooks.RepositoryName
	for _, j := range r.All() {
		if j.JobName == exceptJob {
			continue
		}
		for _, name := range j.RepositoryNames() {
			if !webhooks.IsActive(name, ret) {
				ret = append(ret, name)
			}
		}
	}

	return ret
}
