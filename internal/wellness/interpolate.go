package wellness

// Thresholds are the three breakpoints of a sliding-scale metric.
// For lower-is-better metrics Excellent < Good < Poor; for higher-is-better
// metrics the order is reversed.
type Thresholds struct {
	Excellent float64
	Good      float64
	Poor      float64
}

// TierThresholds are the four breakpoints of a tiered metric.
type TierThresholds struct {
	Optimal float64
	Good    float64
	Average float64
	Poor    float64
}

const (
	tierBest    = 95.0
	tierGood    = 85.0
	tierAverage = 70.0
	tierPoor    = 55.0
	tierBeyond  = 30.0

	metricBest = 100.0
	metricGood = 70.0
	metricPoor = 50.0

	// beyond-poor extrapolation windows
	worseFactor  = 1.5
	betterFactor = 0.5
)

// LinearScore maps value onto [lowScore, highScore] proportionally to its
// position in [low, high], saturating at either end.
//
// The saturating checks run before the division, so low == high never
// divides by zero: the value lands on one side or the other.
func LinearScore(value, low, high, lowScore, highScore float64) float64 {
	if value <= low {
		return lowScore
	}
	if value >= high {
		return highScore
	}
	return (value-low)/(high-low)*(highScore-lowScore) + lowScore
}

// TieredScore scores value through five bands anchored at the four tier
// breakpoints: 95 at or past optimal, then 95→85, 85→70, 70→55, and 55→30
// over the extrapolated zone beyond poor.
func TieredScore(value float64, t TierThresholds, lowerIsBetter bool) float64 {
	if lowerIsBetter {
		switch {
		case value <= t.Optimal:
			return tierBest
		case value <= t.Good:
			return LinearScore(value, t.Optimal, t.Good, tierBest, tierGood)
		case value <= t.Average:
			return LinearScore(value, t.Good, t.Average, tierGood, tierAverage)
		case value <= t.Poor:
			return LinearScore(value, t.Average, t.Poor, tierAverage, tierPoor)
		default:
			return LinearScore(value, t.Poor, t.Poor*worseFactor, tierPoor, tierBeyond)
		}
	}

	switch {
	case value >= t.Optimal:
		return tierBest
	case value >= t.Good:
		return LinearScore(value, t.Good, t.Optimal, tierGood, tierBest)
	case value >= t.Average:
		return LinearScore(value, t.Average, t.Good, tierAverage, tierGood)
	case value >= t.Poor:
		return LinearScore(value, t.Poor, t.Average, tierPoor, tierAverage)
	default:
		return LinearScore(value, t.Poor*betterFactor, t.Poor, tierBeyond, tierPoor)
	}
}

// MetricScore is the three-breakpoint sliding scale: 100 at or past
// excellent, 100→70 to good, 70→50 to poor, then 50→0 over the
// extrapolated zone beyond poor.
func MetricScore(value float64, t Thresholds, lowerIsBetter bool) float64 {
	if lowerIsBetter {
		switch {
		case value <= t.Excellent:
			return metricBest
		case value <= t.Good:
			return LinearScore(value, t.Excellent, t.Good, metricBest, metricGood)
		case value <= t.Poor:
			return LinearScore(value, t.Good, t.Poor, metricGood, metricPoor)
		default:
			return LinearScore(value, t.Poor, t.Poor*worseFactor, metricPoor, 0)
		}
	}

	switch {
	case value >= t.Excellent:
		return metricBest
	case value >= t.Good:
		return LinearScore(value, t.Good, t.Excellent, metricGood, metricBest)
	case value >= t.Poor:
		return LinearScore(value, t.Poor, t.Good, metricPoor, metricGood)
	default:
		return LinearScore(value, t.Poor*betterFactor, t.Poor, 0, metricPoor)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
