package checklist

import (
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/entraops/internal/model"
)

const ReportTitle = "Security Assessment Report"

// Report is a point-in-time snapshot of the derived stats.
type Report struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	GeneratedAt time.Time               `json:"generated_at"`
	Score       float64                 `json:"score"`
	Rounded     int                     `json:"rounded_score"`
	Status      string                  `json:"status"`
	Total       int                     `json:"total"`
	Completed   int                     `json:"completed"`
	Complete    []model.CategorizedItem `json:"complete"`
	Incomplete  []model.CategorizedItem `json:"incomplete"`
}

type reportConfig struct {
	now   func() time.Time
	newID func() string
}

// ReportOption tweaks snapshot metadata; mostly for tests.
type ReportOption func(*reportConfig)

func WithClock(now func() time.Time) ReportOption {
	return func(c *reportConfig) { c.now = now }
}

func WithIDFunc(f func() string) ReportOption {
	return func(c *reportConfig) { c.newID = f }
}

// BuildReport snapshots the current stats. Apart from the id and timestamp
// the result depends only on its inputs.
func BuildReport(c model.Catalog, t *Tracker, opts ...ReportOption) Report {
	cfg := reportConfig{now: time.Now, newID: uuid.NewString}
	for _, o := range opts {
		o(&cfg)
	}
	st := ComputeStats(c, t)
	return Report{
		ID:          cfg.newID(),
		Title:       ReportTitle,
		GeneratedAt: cfg.now().UTC(),
		Score:       st.Score,
		Rounded:     st.Rounded(),
		Status:      st.Status(),
		Total:       st.Total,
		Completed:   st.Completed,
		Complete:    st.Complete,
		Incomplete:  st.Incomplete,
	}
}

// AllPassed reports whether nothing is left to do.
func (r Report) AllPassed() bool { return len(r.Incomplete) == 0 }
