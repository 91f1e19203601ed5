package analytics

import (
	"math/rand/v2"
	"time"

	"github.com/seamlessgov/govdash/internal/chart"
	"github.com/seamlessgov/govdash/internal/model"
)

var sentimentLabels = []string{"Positive", "Negative", "Neutral"}

// OverallSeries aggregates sentiment counts across all amendments into a
// pie chart config.
func OverallSeries(amendments []model.Amendment) chart.Config {
	var total model.Sentiment
	for _, a := range amendments {
		total = total.Add(a.Sentiment)
	}
	return chart.Config{
		Type:   chart.TypePie,
		Labels: sentimentLabels,
		Values: []int{total.Positive, total.Negative, total.Neutral},
	}
}

// SentimentSeries builds the doughnut chart config for one amendment.
func SentimentSeries(a model.Amendment) chart.Config {
	return chart.Config{
		Type:   chart.TypeDoughnut,
		Labels: sentimentLabels,
		Values: []int{a.Sentiment.Positive, a.Sentiment.Negative, a.Sentiment.Neutral},
	}
}

// TrendSeries builds the feedback trend line for the last 7 calendar days,
// most recent last. The counts are placeholder values in [50,150) drawn from
// the injected source, not real feedback events.
func TrendSeries(now time.Time, rng *rand.Rand) chart.Config {
	cfg := chart.Config{
		Type:  chart.TypeLine,
		Label: "Daily Feedback",
	}
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		cfg.Labels = append(cfg.Labels, day.Format("Jan 2"))
		cfg.Values = append(cfg.Values, 50+rng.IntN(100))
	}
	return cfg
}
