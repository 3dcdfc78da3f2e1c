package wellness

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestLinearScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		value, low, high, lo, hi float64
		want                     float64
	}{
		{name: "below low", value: 1, low: 2, high: 4, lo: 10, hi: 20, want: 10},
		{name: "at low", value: 2, low: 2, high: 4, lo: 10, hi: 20, want: 10},
		{name: "midpoint", value: 3, low: 2, high: 4, lo: 10, hi: 20, want: 15},
		{name: "at high", value: 4, low: 2, high: 4, lo: 10, hi: 20, want: 20},
		{name: "above high", value: 9, low: 2, high: 4, lo: 10, hi: 20, want: 20},
		{name: "descending scores", value: 3, low: 2, high: 4, lo: 100, hi: 70, want: 85},
		{name: "degenerate range below", value: 1, low: 2, high: 2, lo: 10, hi: 20, want: 10},
		{name: "degenerate range above", value: 3, low: 2, high: 2, lo: 10, hi: 20, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := LinearScore(tt.value, tt.low, tt.high, tt.lo, tt.hi)
			if !approxEqual(got, tt.want) {
				t.Errorf("LinearScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTieredScore(t *testing.T) {
	t.Parallel()

	lower := TierThresholds{Optimal: 100, Good: 150, Average: 200, Poor: 250}
	higher := TierThresholds{Optimal: 40, Good: 30, Average: 20, Poor: 10}

	tests := []struct {
		name          string
		value         float64
		tiers         TierThresholds
		lowerIsBetter bool
		want          float64
	}{
		{name: "lower optimal", value: 50, tiers: lower, lowerIsBetter: true, want: 95},
		{name: "lower at optimal", value: 100, tiers: lower, lowerIsBetter: true, want: 95},
		{name: "lower optimal to good", value: 125, tiers: lower, lowerIsBetter: true, want: 90},
		{name: "lower at good", value: 150, tiers: lower, lowerIsBetter: true, want: 85},
		{name: "lower good to average", value: 175, tiers: lower, lowerIsBetter: true, want: 77.5},
		{name: "lower at average", value: 200, tiers: lower, lowerIsBetter: true, want: 70},
		{name: "lower at poor", value: 250, tiers: lower, lowerIsBetter: true, want: 55},
		{name: "lower beyond poor", value: 312.5, tiers: lower, lowerIsBetter: true, want: 42.5},
		{name: "lower floor", value: 1000, tiers: lower, lowerIsBetter: true, want: 30},
		{name: "higher optimal", value: 50, tiers: higher, want: 95},
		{name: "higher at good", value: 30, tiers: higher, want: 85},
		{name: "higher good to optimal", value: 35, tiers: higher, want: 90},
		{name: "higher at average", value: 20, tiers: higher, want: 70},
		{name: "higher at poor", value: 10, tiers: higher, want: 55},
		{name: "higher beyond poor", value: 7.5, tiers: higher, want: 42.5},
		{name: "higher floor", value: 0, tiers: higher, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TieredScore(tt.value, tt.tiers, tt.lowerIsBetter)
			if !approxEqual(got, tt.want) {
				t.Errorf("TieredScore(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestMetricScore(t *testing.T) {
	t.Parallel()

	lower := Thresholds{Excellent: 100, Good: 200, Poor: 300}
	higher := Thresholds{Excellent: 40, Good: 30, Poor: 20}

	tests := []struct {
		name          string
		value         float64
		thresholds    Thresholds
		lowerIsBetter bool
		want          float64
	}{
		{name: "lower excellent", value: 80, thresholds: lower, lowerIsBetter: true, want: 100},
		{name: "lower excellent to good", value: 150, thresholds: lower, lowerIsBetter: true, want: 85},
		{name: "lower at good", value: 200, thresholds: lower, lowerIsBetter: true, want: 70},
		{name: "lower good to poor", value: 250, thresholds: lower, lowerIsBetter: true, want: 60},
		{name: "lower at poor", value: 300, thresholds: lower, lowerIsBetter: true, want: 50},
		{name: "lower beyond poor", value: 375, thresholds: lower, lowerIsBetter: true, want: 25},
		{name: "lower floor", value: 450, thresholds: lower, lowerIsBetter: true, want: 0},
		{name: "higher excellent", value: 45, thresholds: higher, want: 100},
		{name: "higher good to excellent", value: 35, thresholds: higher, want: 85},
		{name: "higher at good", value: 30, thresholds: higher, want: 70},
		{name: "higher at poor", value: 20, thresholds: higher, want: 50},
		{name: "higher beyond poor", value: 15, thresholds: higher, want: 25},
		{name: "higher floor", value: 10, thresholds: higher, want: 0},
		{name: "higher negative", value: -5, thresholds: higher, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MetricScore(tt.value, tt.thresholds, tt.lowerIsBetter)
			if !approxEqual(got, tt.want) {
				t.Errorf("MetricScore(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestScorers_Monotonic(t *testing.T) {
	t.Parallel()

	lowerTiers := TierThresholds{Optimal: 70, Good: 99, Average: 129, Poor: 159}
	higherTiers := TierThresholds{Optimal: 42, Good: 40, Average: 36, Poor: 32}
	lowerMetric := Thresholds{Excellent: 5.7, Good: 6.4, Poor: 7.0}
	higherMetric := Thresholds{Excellent: 51, Good: 40, Poor: 35}

	scorers := map[string]struct {
		score         func(float64) float64
		lowerIsBetter bool
		from, to      float64
	}{
		"tiered lower":  {func(v float64) float64 { return TieredScore(v, lowerTiers, true) }, true, 0, 300},
		"tiered higher": {func(v float64) float64 { return TieredScore(v, higherTiers, false) }, false, 0, 60},
		"metric lower":  {func(v float64) float64 { return MetricScore(v, lowerMetric, true) }, true, 0, 15},
		"metric higher": {func(v float64) float64 { return MetricScore(v, higherMetric, false) }, false, 0, 70},
	}

	for name, s := range scorers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			const steps = 2000
			step := (s.to - s.from) / steps
			prev := s.score(s.from)
			for i := 1; i <= steps; i++ {
				v := s.from + float64(i)*step
				got := s.score(v)
				if s.lowerIsBetter && got > prev+epsilon {
					t.Fatalf("score rose from %v to %v at %v", prev, got, v)
				}
				if !s.lowerIsBetter && got < prev-epsilon {
					t.Fatalf("score fell from %v to %v at %v", prev, got, v)
				}
				prev = got
			}
		})
	}
}

func TestScorers_ContinuousAtBreakpoints(t *testing.T) {
	t.Parallel()

	tiers := TierThresholds{Optimal: 100, Good: 149, Average: 199, Poor: 499}
	metric := Thresholds{Excellent: 80, Good: 100, Poor: 120}

	const delta = 1e-7
	for _, b := range []float64{tiers.Optimal, tiers.Good, tiers.Average, tiers.Poor} {
		at := TieredScore(b, tiers, true)
		after := TieredScore(b+delta, tiers, true)
		if math.Abs(at-after) > 1e-3 {
			t.Errorf("TieredScore jumps at %v: %v -> %v", b, at, after)
		}
	}
	for _, b := range []float64{metric.Excellent, metric.Good, metric.Poor} {
		at := MetricScore(b, metric, true)
		after := MetricScore(b+delta, metric, true)
		if math.Abs(at-after) > 1e-3 {
			t.Errorf("MetricScore jumps at %v: %v -> %v", b, at, after)
		}
	}
}
