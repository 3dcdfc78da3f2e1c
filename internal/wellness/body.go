package wellness

import "math"

const (
	bodyFatGoodLow  = 70.0
	bodyFatGoodHigh = 89.0
	bodyFatLeanWin  = 5.0
	bodyFatOverFact = 1.2
)

// BodyCompositionScore averages the body fat and skeletal muscle mass
// sub-scores that are available. Both need age and sex.
func BodyCompositionScore(m Metrics) float64 {
	var avg mean

	if s, ok := BodyFatScore(m); ok {
		avg.add(s)
	}
	// a muscle score of exactly 0 counts as missing
	if s, ok := MuscleMassScore(m); ok && s > 0 {
		avg.add(s)
	}

	return avg.value()
}

// BodyFatScore reports false when body fat, age or sex is missing.
func BodyFatScore(m Metrics) (float64, bool) {
	age, sex, ok := m.demographics()
	if m.BodyFatPercent == nil || !ok {
		return 0, false
	}
	return scoreBodyFat(*m.BodyFatPercent, bodyFatRange(age, sex)), true
}

// Zones are checked in order, so a value in the gap between the optimal and
// good ranges falls through to the last branch.
func scoreBodyFat(bf float64, r BodyFatRange) float64 {
	switch {
	case bf >= r.OptimalLow && bf <= r.OptimalHigh:
		return metricBest
	case bf >= r.GoodLow && bf <= r.GoodHigh:
		return LinearScore(bf, r.GoodLow, r.GoodHigh, bodyFatGoodLow, bodyFatGoodHigh)
	case bf < r.OptimalLow:
		return LinearScore(bf, math.Max(0, r.OptimalLow-bodyFatLeanWin), r.OptimalLow, metricPoor, metricBest)
	case bf > r.GoodHigh && bf <= r.Poor:
		return LinearScore(bf, r.GoodHigh, r.Poor, metricGood, metricPoor)
	default:
		return LinearScore(bf, r.Poor, r.Poor*bodyFatOverFact, metricPoor, 0)
	}
}

// MuscleMassScore reports false when muscle mass, age or sex is missing.
func MuscleMassScore(m Metrics) (float64, bool) {
	age, sex, ok := m.demographics()
	if m.SkeletalMuscleMassPercent == nil || !ok {
		return 0, false
	}
	return TieredScore(*m.SkeletalMuscleMassPercent, muscleMassTiers(age, sex), false), true
}
