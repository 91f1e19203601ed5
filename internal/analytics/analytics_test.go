package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seamlessgov/govdash/internal/model"
)

func TestDeriveBreakdown(t *testing.T) {
	a := model.Amendment{
		ID:            1,
		Name:          "Digital Privacy Protection Act 2025",
		TotalFeedback: 1247,
		Sentiment:     model.Sentiment{Positive: 812, Negative: 249, Neutral: 186},
	}

	an := Derive(a)

	assert.Equal(t, 65, an.Breakdown.Positive) // round(812/1247*100)
	assert.Equal(t, 20, an.Breakdown.Negative)
	assert.Equal(t, 15, an.Breakdown.Neutral)
	assert.Equal(t, 0.77, an.SentimentScore) // round(812/1061, 2)
	assert.Equal(t, "7.8%", an.ResponseRate)
}

func TestDeriveZeroFeedback(t *testing.T) {
	an := Derive(model.Amendment{ID: 1, Name: "Empty Act"})

	assert.Equal(t, Breakdown{}, an.Breakdown)
	assert.Zero(t, an.SentimentScore)
}

func TestDeriveZeroScoreDenominator(t *testing.T) {
	a := model.Amendment{
		TotalFeedback: 100,
		Sentiment:     model.Sentiment{Neutral: 100},
	}

	an := Derive(a)
	assert.Zero(t, an.SentimentScore)
	assert.Equal(t, 100, an.Breakdown.Neutral)
}

func TestBreakdownSumsToRoughly100(t *testing.T) {
	// When the counts sum exactly to the total, independent rounding of the
	// three shares can drift by at most 2 from 100.
	cases := []model.Sentiment{
		{Positive: 333, Negative: 333, Neutral: 334},
		{Positive: 1, Negative: 1, Neutral: 1},
		{Positive: 812, Negative: 249, Neutral: 186},
		{Positive: 50, Negative: 25, Neutral: 26},
	}

	for _, s := range cases {
		a := model.Amendment{TotalFeedback: s.Total(), Sentiment: s}
		b := Derive(a).Breakdown
		sum := b.Positive + b.Negative + b.Neutral
		assert.InDelta(t, 100, sum, 2, "sentiment %+v", s)
	}
}

func TestDeriveStaticText(t *testing.T) {
	first := Derive(model.Amendment{ID: 1, Name: "A", TotalFeedback: 10})
	second := Derive(model.Amendment{ID: 2, Name: "B", TotalFeedback: 999})

	// The qualitative text is a placeholder shared by every amendment.
	assert.Equal(t, first.Pros, second.Pros)
	assert.Equal(t, first.Cons, second.Cons)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Len(t, first.Pros, 5)
	assert.Len(t, first.Cons, 5)
}
