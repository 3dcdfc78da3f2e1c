package wellness

// MetabolicScore averages the sliding-scale scores of every supplied
// metabolic marker. Returns 0 when nothing was supplied.
func MetabolicScore(m Metrics) float64 {
	var avg mean

	if m.A1c != nil {
		avg.add(MetricScore(*m.A1c, A1cThresholds, true))
	}
	if m.LDL != nil {
		avg.add(TieredScore(*m.LDL, LDLTiers, true))
	}
	if m.Triglycerides != nil {
		avg.add(TieredScore(*m.Triglycerides, TriglycerideTiers, true))
	}
	if m.TotalCholesterol != nil {
		avg.add(TieredScore(*m.TotalCholesterol, TotalCholesterolTiers, true))
	}
	if ratio, ok := cholesterolRatio(m.LDL, m.TotalCholesterol); ok {
		avg.add(TieredScore(ratio, LDLToTotalTiers, true))
	}
	if ratio, ok := cholesterolRatio(m.HDL, m.TotalCholesterol); ok {
		avg.add(TieredScore(ratio, HDLToTotalTiers, false))
	}
	if m.LPA != nil {
		avg.add(MetricScore(*m.LPA, LPAThresholds, true))
	}
	if m.ApoB != nil {
		avg.add(MetricScore(*m.ApoB, ApoBThresholds, true))
	}
	if m.Systolic != nil && m.Diastolic != nil {
		sys := MetricScore(*m.Systolic, SystolicThresholds, true)
		dia := MetricScore(*m.Diastolic, DiastolicThresholds, true)
		avg.add((sys + dia) / 2)
	}
	if m.WaistHeightRatio != nil {
		avg.add(MetricScore(*m.WaistHeightRatio, WaistHeightRatioThresholds, true))
	}

	return avg.value()
}

func cholesterolRatio(part, total *float64) (float64, bool) {
	if part == nil || total == nil || *total == 0 {
		return 0, false
	}
	return *part / *total, true
}

// mean is an unweighted running average that reports 0 when empty.
type mean struct {
	sum float64
	n   int
}

func (a *mean) add(v float64) {
	a.sum += v
	a.n++
}

func (a mean) value() float64 {
	if a.n == 0 {
		return 0
	}
	return a.sum / float64(a.n)
}
