package dashboard

import "github.com/seamlessgov/govdash/internal/model"

// seedAmendments is the sample data the dashboard starts with. The
// collection is in-memory only, so a restart always returns to this state.
func seedAmendments() []model.Amendment {
	return []model.Amendment{
		{
			ID:            1,
			Name:          "Digital Privacy Protection Act 2025",
			Date:          "2025-01-15",
			Description:   "Comprehensive digital privacy legislation requiring explicit consent for data collection and providing citizens with data deletion rights.",
			Status:        model.StatusActive,
			TimelineDays:  30,
			TotalFeedback: 1247,
			Sentiment:     model.Sentiment{Positive: 812, Negative: 249, Neutral: 186},
		},
		{
			ID:            2,
			Name:          "Healthcare Access Reform Bill",
			Date:          "2025-01-28",
			Description:   "Reform to improve healthcare access in rural areas and reduce wait times for critical medical procedures.",
			Status:        model.StatusActive,
			TimelineDays:  60,
			TotalFeedback: 892,
			Sentiment:     model.Sentiment{Positive: 642, Negative: 161, Neutral: 89},
		},
		{
			ID:            3,
			Name:          "Climate Action Initiative 2025",
			Date:          "2025-02-10",
			Description:   "Comprehensive climate legislation with renewable energy targets and carbon reduction goals.",
			Status:        model.StatusDraft,
			TimelineDays:  45,
			TotalFeedback: 634,
			Sentiment:     model.Sentiment{Positive: 487, Negative: 98, Neutral: 49},
		},
		{
			ID:            4,
			Name:          "Education Technology Enhancement Act",
			Date:          "2025-02-15",
			Description:   "Modernize education infrastructure with technology integration and digital learning platforms.",
			Status:        model.StatusActive,
			TimelineDays:  35,
			TotalFeedback: 756,
			Sentiment:     model.Sentiment{Positive: 523, Negative: 145, Neutral: 88},
		},
	}
}
