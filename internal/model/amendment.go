package model

// Sentiment holds the feedback tallies for an amendment. The three counters
// are independent and are not required to sum to the amendment's total
// feedback count.
type Sentiment struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Total returns the sum of all three counters.
func (s Sentiment) Total() int {
	return s.Positive + s.Negative + s.Neutral
}

// Add returns the element-wise sum of two sentiment records.
func (s Sentiment) Add(o Sentiment) Sentiment {
	return Sentiment{
		Positive: s.Positive + o.Positive,
		Negative: s.Negative + o.Negative,
		Neutral:  s.Neutral + o.Neutral,
	}
}

// Amendment is a tracked legislative proposal. Amendments live only in
// memory; a restart resets the collection to the seed data.
type Amendment struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	TimelineDays  int       `json:"timeline_days"`
	TotalFeedback int       `json:"total_feedback"`
	Sentiment     Sentiment `json:"sentiment"`
}

// Statuses offered by the amendment form. The set is open-ended; nothing
// rejects other values.
const (
	StatusActive      = "Active"
	StatusDraft       = "Draft"
	StatusUnderReview = "Under Review"
	StatusCompleted   = "Completed"
)

// DefaultTimelineDays is used when the form leaves the timeline unset.
const DefaultTimelineDays = 30
