package checklist

import (
	"math"

	"github.com/idilsaglam/entraops/internal/model"
)

// Stats is recomputed from a catalog and a tracker; never stored.
type Stats struct {
	Total      int
	Completed  int
	Score      float64 // full precision, 0..100
	Complete   []model.CategorizedItem
	Incomplete []model.CategorizedItem
}

// ComputeStats partitions every catalog item by completion, in catalog order.
// Only catalog items count toward Completed.
func ComputeStats(c model.Catalog, t *Tracker) Stats {
	st := Stats{Total: c.Len()}
	for _, it := range c.Items() {
		if t.IsComplete(it.ID) {
			st.Complete = append(st.Complete, it)
		} else {
			st.Incomplete = append(st.Incomplete, it)
		}
	}
	st.Completed = len(st.Complete)
	if st.Total > 0 {
		st.Score = float64(st.Completed) / float64(st.Total) * 100
	}
	return st
}

// Rounded is the score as displayed.
func (s Stats) Rounded() int { return int(math.Round(s.Score)) }

// Secure compares the rounded score so display and status always agree.
func (s Stats) Secure() bool { return s.Rounded() == 100 }

// Status is the dashboard status label.
func (s Stats) Status() string {
	if s.Secure() {
		return "Secure"
	}
	return "Improving"
}

// Verdict is the short subtext shown next to the score.
func (s Stats) Verdict() string {
	if s.Secure() {
		return "Excellent"
	}
	return "Action Needed"
}
