// Package checklist holds the completion state and everything derived from it:
// stats, search filtering and report snapshots.
package checklist

import "sort"

// Tracker is the set of item ids marked done. The zero value is not usable;
// call NewTracker.
//
// Ids are not checked against any catalog. An unknown id is stored like any
// other and simply never shows up in derived views.
type Tracker struct {
	done map[string]struct{}
}

func NewTracker(ids ...string) *Tracker {
	t := &Tracker{done: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		t.done[id] = struct{}{}
	}
	return t
}

// Toggle flips membership of id and reports the new state.
func (t *Tracker) Toggle(id string) bool {
	if _, ok := t.done[id]; ok {
		delete(t.done, id)
		return false
	}
	t.done[id] = struct{}{}
	return true
}

func (t *Tracker) IsComplete(id string) bool {
	_, ok := t.done[id]
	return ok
}

// Len is the raw membership count, unknown ids included.
func (t *Tracker) Len() int { return len(t.done) }

// IDs returns a sorted snapshot of the members.
func (t *Tracker) IDs() []string {
	out := make([]string, 0, len(t.done))
	for id := range t.done {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
