// Package analytics derives the mock sentiment analytics shown for an
// amendment. The numeric breakdown is computed from the amendment's
// counters; the qualitative text and the response rate are placeholders for
// a future analysis integration and are identical for every amendment.
package analytics

import (
	"math"

	"github.com/seamlessgov/govdash/internal/model"
)

// Breakdown holds the sentiment shares as whole percentages. The three
// values are rounded independently, so they may sum to slightly more or
// less than 100.
type Breakdown struct {
	Positive int
	Negative int
	Neutral  int
}

// Analytics is the derived detail panel data for one amendment.
type Analytics struct {
	AmendmentID    int
	AmendmentName  string
	TotalFeedback  int
	Breakdown      Breakdown
	SentimentScore float64 // positive / (positive + negative), 2 decimals
	ResponseRate   string
	Pros           []string
	Cons           []string
	Summary        string
}

// ResponseRate matches the dashboard-wide placeholder.
const ResponseRate = "7.8%"

// Placeholder qualitative analysis. Every amendment shows the same text
// until a real sentiment pipeline exists.
var (
	pros = []string{
		"Strengthens individual privacy rights and data protection",
		"Provides transparency in data collection practices",
		"Gives citizens control over their personal information",
		"Aligns with international privacy standards",
		"Protects against unauthorized data sharing",
	}

	cons = []string{
		"May increase compliance costs for businesses",
		"Could slow down digital innovation",
		"Implementation complexity for existing systems",
		"Potential impact on targeted services",
		"Enforcement challenges across sectors",
	}

	summary = "Citizens generally support this privacy protection amendment, " +
		"appreciating stronger data rights and consent requirements. However, " +
		"some express concerns about potential business impact and implementation " +
		"complexity. Overall sentiment remains positive with citizens viewing this " +
		"as essential protection for digital rights."
)

// Derive computes the analytics panel data for an amendment. Both divisions
// are guarded: a zero total feedback count yields an all-zero breakdown, and
// a zero positive+negative sum yields a zero score.
func Derive(a model.Amendment) Analytics {
	an := Analytics{
		AmendmentID:   a.ID,
		AmendmentName: a.Name,
		TotalFeedback: a.TotalFeedback,
		ResponseRate:  ResponseRate,
		Pros:          pros,
		Cons:          cons,
		Summary:       summary,
	}

	if a.TotalFeedback > 0 {
		an.Breakdown = Breakdown{
			Positive: percent(a.Sentiment.Positive, a.TotalFeedback),
			Negative: percent(a.Sentiment.Negative, a.TotalFeedback),
			Neutral:  percent(a.Sentiment.Neutral, a.TotalFeedback),
		}
	}

	if denom := a.Sentiment.Positive + a.Sentiment.Negative; denom > 0 {
		score := float64(a.Sentiment.Positive) / float64(denom)
		an.SentimentScore = math.Round(score*100) / 100
	}

	return an
}

func percent(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}
