package webhooks

import (
	"encoding/json"
	"sort"
	"strings"
)

// Event is a GitHub hook event kind as named by the API.
type Event string

const (
	EventCreate      Event = "create"
	EventPullRequest Event = "pull_request"
	EventPush        Event = "push"
	EventRelease     Event = "release"
)

// EventSet is a set of events compared by value, order never matters.
type EventSet map[Event]struct{}

func NewEventSet(events ...Event) EventSet {
	s := EventSet{}
	s.Add(events...)
	return s
}

func ParseEventSet(names []string) EventSet {
	s := EventSet{}
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			s.Add(Event(n))
		}
	}
	return s
}

func (s EventSet) Add(events ...Event) {
	for _, e := range events {
		s[e] = struct{}{}
	}
}

func (s EventSet) Has(e Event) bool {
	_, ok := s[e]
	return ok
}

// Union returns a new set, s and others are left untouched.
func (s EventSet) Union(others ...EventSet) EventSet {
	ret := EventSet{}
	for e := range s {
		ret.Add(e)
	}
	for _, o := range others {
		for e := range o {
			ret.Add(e)
		}
	}
	return ret
}

func (s EventSet) Equal(o EventSet) bool {
	if len(s) != len(o) {
		return false
	}

	for e := range s {
		if !o.Has(e) {
			return false
		}
	}
	return true
}

func (s EventSet) Strings() []string {
	ret := make([]string, 0, len(s))
	for e := range s {
		ret = append(ret, string(e))
	}
	sort.Strings(ret)
	return ret
}

func (s EventSet) String() string {
	return "[" + strings.Join(s.Strings(), " ") + "]"
}

func (s EventSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

func (s *EventSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	*s = ParseEventSet(names)
	return nil
}
