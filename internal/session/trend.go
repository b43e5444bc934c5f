package session

import "github.com/abhisek/speechdrill/internal/practice"

// Trend compares the two most recent sessions of a list.
type Trend int

const (
	TrendNeutral Trend = iota
	TrendPositive
	TrendNegative
)

// trendThreshold is the ratio change needed to count as a trend.
const trendThreshold = 0.05

func (t Trend) String() string {
	switch t {
	case TrendPositive:
		return "positive"
	case TrendNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Arrow is a one-character indicator for listings.
func (t Trend) Arrow() string {
	switch t {
	case TrendPositive:
		return "↑"
	case TrendNegative:
		return "↓"
	default:
		return "="
	}
}

// ClassifyTrend compares history[0] with history[1], which must be
// ordered most recent first. A session with no words has ratio 0.
func ClassifyTrend(history []practice.SessionRecord) Trend {
	if len(history) < 2 {
		return TrendNeutral
	}
	latest, previous := history[0].Ratio(), history[1].Ratio()
	switch {
	case latest > previous+trendThreshold:
		return TrendPositive
	case latest < previous-trendThreshold:
		return TrendNegative
	default:
		return TrendNeutral
	}
}
