package dashboard

import (
	"github.com/dustin/go-humanize"

	"github.com/seamlessgov/govdash/internal/model"
)

// ResponseRate is a placeholder metric. It is not derived from any input;
// real response tracking would replace it.
const ResponseRate = "7.8%"

// Stats are the dashboard's summary numbers, derived entirely from the
// current collection.
type Stats struct {
	TotalAmendments  int
	ActiveAmendments int
	TotalFeedback    int
	ResponseRate     string
}

// FormattedFeedback returns the total feedback count with thousands
// separators, e.g. "3,529".
func (s Stats) FormattedFeedback() string {
	return humanize.Comma(int64(s.TotalFeedback))
}

// Stats derives the summary statistics from the current collection.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{ResponseRate: ResponseRate}
	for _, a := range s.amendments {
		stats.TotalAmendments++
		if a.Status == model.StatusActive {
			stats.ActiveAmendments++
		}
		stats.TotalFeedback += a.TotalFeedback
	}
	return stats
}
