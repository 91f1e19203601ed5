package analytics

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/seamlessgov/govdash/internal/chart"
	"github.com/seamlessgov/govdash/internal/model"
)

func TestOverallSeriesAggregates(t *testing.T) {
	amendments := []model.Amendment{
		{Sentiment: model.Sentiment{Positive: 100, Negative: 20, Neutral: 10}},
		{Sentiment: model.Sentiment{Positive: 50, Negative: 30, Neutral: 40}},
	}

	cfg := OverallSeries(amendments)
	assert.Equal(t, chart.TypePie, cfg.Type)
	assert.Equal(t, []string{"Positive", "Negative", "Neutral"}, cfg.Labels)
	assert.Equal(t, []int{150, 50, 50}, cfg.Values)
}

func TestSentimentSeries(t *testing.T) {
	a := model.Amendment{Sentiment: model.Sentiment{Positive: 642, Negative: 161, Neutral: 89}}

	cfg := SentimentSeries(a)
	assert.Equal(t, chart.TypeDoughnut, cfg.Type)
	assert.Equal(t, []int{642, 161, 89}, cfg.Values)
}

func TestTrendSeries(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewPCG(1, 2))

	cfg := TrendSeries(now, rng)

	assert.Equal(t, chart.TypeLine, cfg.Type)
	assert.Len(t, cfg.Labels, 7)
	assert.Len(t, cfg.Values, 7)
	assert.Equal(t, "Mar 4", cfg.Labels[0])
	assert.Equal(t, "Mar 10", cfg.Labels[6], "most recent day must come last")

	for i, v := range cfg.Values {
		assert.GreaterOrEqual(t, v, 50, "day %d", i)
		assert.Less(t, v, 150, "day %d", i)
	}
}

func TestTrendSeriesDeterministicWithSeed(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	first := TrendSeries(now, rand.New(rand.NewPCG(7, 7)))
	second := TrendSeries(now, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, first, second)
}
