package wellness

// VO2MaxScore needs vo2Max, age and sex; otherwise 0.
func VO2MaxScore(m Metrics) float64 {
	return fitnessScore(m.VO2Max, m, VO2MaxBands)
}

// GripStrengthScore needs gripStrength, age and sex; otherwise 0.
func GripStrengthScore(m Metrics) float64 {
	return fitnessScore(m.GripStrength, m, GripStrengthBands)
}

func fitnessScore(value *float64, m Metrics, bands []FitnessBand) float64 {
	age, sex, ok := m.demographics()
	if value == nil || !ok {
		return 0
	}
	return MetricScore(*value, fitnessThresholds(bands, age, sex), false)
}
