package webhooks

type TriggerKind string

const (
	TriggerPush        TriggerKind = "github_push"
	TriggerPullRequest TriggerKind = "github_pull_request"
)

// Job is a CI job as seen by hook management.
type Job interface {
	Name() string
	EnabledTriggers() []TriggerKind
	RepositoryNames() []RepositoryName
}

// Planner maps job triggers to the hook events they need.
type Planner struct {
	events map[TriggerKind]EventSet
}

func NewPlanner(events map[TriggerKind]EventSet) *Planner {
	return &Planner{
		events: events,
	}
}

func DefaultPlanner() *Planner {
	return NewPlanner(map[TriggerKind]EventSet{
		TriggerPush:        NewEventSet(EventPush),
		TriggerPullRequest: NewEventSet(EventPullRequest),
	})
}

// DesiredEventsFor never returns nil: a job without relevant triggers
// still gets a hook, just with no events.
func (p Planner) DesiredEventsFor(job Job) EventSet {
	ret := EventSet{}
	for _, kind := range job.EnabledTriggers() {
		ret = ret.Union(p.events[kind])
	}
	return ret
}
