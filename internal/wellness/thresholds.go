package wellness

import "math"

// AgeBand is an inclusive age range.
type AgeBand struct {
	Min int
	Max int
}

func (b AgeBand) Contains(age int) bool {
	return age >= b.Min && age <= b.Max
}

const openEnded = math.MaxInt

// Metabolic thresholds, lower is better unless noted.
var (
	A1cThresholds              = Thresholds{Excellent: 5.7, Good: 6.4, Poor: 7.0}
	LDLTiers                   = TierThresholds{Optimal: 70, Good: 99, Average: 129, Poor: 159}
	TriglycerideTiers          = TierThresholds{Optimal: 100, Good: 149, Average: 199, Poor: 499}
	TotalCholesterolTiers      = TierThresholds{Optimal: 180, Good: 199, Average: 239, Poor: 279}
	LDLToTotalTiers            = TierThresholds{Optimal: 0.30, Good: 0.39, Average: 0.49, Poor: 0.59}
	HDLToTotalTiers            = TierThresholds{Optimal: 0.25, Good: 0.24, Average: 0.19, Poor: 0.15} // higher is better
	LPAThresholds              = Thresholds{Excellent: 50, Good: 100, Poor: 150}
	ApoBThresholds             = Thresholds{Excellent: 80, Good: 100, Poor: 120}
	SystolicThresholds         = Thresholds{Excellent: 120, Good: 129, Poor: 140}
	DiastolicThresholds        = Thresholds{Excellent: 80, Good: 84, Poor: 90}
	WaistHeightRatioThresholds = Thresholds{Excellent: 0.5, Good: 0.6, Poor: 0.7}
)

// FitnessBand holds higher-is-better thresholds for one age band.
type FitnessBand struct {
	Ages   AgeBand
	Male   Thresholds
	Female Thresholds
}

// VO2MaxBands in ml/kg/min.
var VO2MaxBands = []FitnessBand{
	{Ages: AgeBand{20, 29}, Male: Thresholds{51, 40, 35}, Female: Thresholds{41, 30, 27}},
	{Ages: AgeBand{30, 39}, Male: Thresholds{47, 37, 32}, Female: Thresholds{37, 28, 24}},
	{Ages: AgeBand{40, 49}, Male: Thresholds{42, 32, 28}, Female: Thresholds{33, 25, 21}},
	{Ages: AgeBand{50, 59}, Male: Thresholds{37, 27, 25}, Female: Thresholds{29, 22, 18}},
	{Ages: AgeBand{60, openEnded}, Male: Thresholds{30, 22, 20}, Female: Thresholds{25, 18, 15}},
}

// GripStrengthBands in kg.
var GripStrengthBands = []FitnessBand{
	{Ages: AgeBand{20, 29}, Male: Thresholds{45, 35, 30}, Female: Thresholds{30, 20, 15}},
	{Ages: AgeBand{30, 39}, Male: Thresholds{43, 34, 29}, Female: Thresholds{29, 19, 14}},
	{Ages: AgeBand{40, 49}, Male: Thresholds{41, 32, 27}, Female: Thresholds{28, 18, 13}},
	{Ages: AgeBand{50, 59}, Male: Thresholds{39, 30, 25}, Female: Thresholds{26, 17, 12}},
	{Ages: AgeBand{60, openEnded}, Male: Thresholds{35, 27, 22}, Female: Thresholds{24, 15, 10}},
}

// BodyFatRange is the body fat percentage reference for one sex and age band.
type BodyFatRange struct {
	OptimalLow  float64
	OptimalHigh float64
	GoodLow     float64
	GoodHigh    float64
	Poor        float64
}

// BodyFatBand holds the body fat ranges for one age band.
type BodyFatBand struct {
	Ages   AgeBand
	Male   BodyFatRange
	Female BodyFatRange
}

// BodyFatBands in percent; the last band is open-ended.
var BodyFatBands = []BodyFatBand{
	{Ages: AgeBand{20, 29}, Male: BodyFatRange{8, 10.5, 10.6, 14.8, 20}, Female: BodyFatRange{14, 16.5, 16.6, 19.4, 25}},
	{Ages: AgeBand{30, 39}, Male: BodyFatRange{8, 14.5, 14.6, 18.2, 22}, Female: BodyFatRange{14, 17.4, 17.5, 20.8, 27}},
	{Ages: AgeBand{40, 49}, Male: BodyFatRange{8, 17.4, 17.5, 20.6, 25}, Female: BodyFatRange{14, 19.8, 19.9, 23.8, 30}},
	{Ages: AgeBand{50, 59}, Male: BodyFatRange{8, 19.1, 19.2, 22.1, 27}, Female: BodyFatRange{14, 22.5, 22.6, 27, 32}},
	{Ages: AgeBand{60, 69}, Male: BodyFatRange{8, 19.7, 19.8, 23.4, 28}, Female: BodyFatRange{14, 23.2, 23.3, 27.9, 33}},
	{Ages: AgeBand{70, openEnded}, Male: BodyFatRange{8, 20.2, 20.3, 24.5, 30}, Female: BodyFatRange{14, 24.5, 24.6, 29, 35}},
}

// MuscleMassBand holds higher-is-better skeletal muscle mass tiers.
type MuscleMassBand struct {
	Ages   AgeBand
	Male   TierThresholds
	Female TierThresholds
}

// MuscleMassBands in percent of body weight, starting at age 18.
var MuscleMassBands = []MuscleMassBand{
	{Ages: AgeBand{18, 30}, Male: TierThresholds{42, 40, 36, 32}, Female: TierThresholds{31, 29, 26, 24}},
	{Ages: AgeBand{31, 50}, Male: TierThresholds{40, 38, 34, 30}, Female: TierThresholds{29, 27, 25, 23}},
	{Ages: AgeBand{51, 70}, Male: TierThresholds{38, 36, 32, 29}, Female: TierThresholds{27, 25, 23, 21}},
	{Ages: AgeBand{71, openEnded}, Male: TierThresholds{35, 33, 29, 26}, Female: TierThresholds{25, 23, 21, 19}},
}

// Lookups return the zero value when no band covers age. Callers score
// against the zero thresholds anyway; see TestOutOfBandAge_KnownBug.

func fitnessThresholds(bands []FitnessBand, age int, sex Sex) Thresholds {
	for _, b := range bands {
		if b.Ages.Contains(age) {
			return pick(sex, b.Male, b.Female)
		}
	}
	return Thresholds{}
}

func bodyFatRange(age int, sex Sex) BodyFatRange {
	for _, b := range BodyFatBands {
		if b.Ages.Contains(age) {
			return pick(sex, b.Male, b.Female)
		}
	}
	return BodyFatRange{}
}

func muscleMassTiers(age int, sex Sex) TierThresholds {
	for _, b := range MuscleMassBands {
		if b.Ages.Contains(age) {
			return pick(sex, b.Male, b.Female)
		}
	}
	return TierThresholds{}
}

func pick[T any](sex Sex, male, female T) T {
	if sex == SexMale {
		return male
	}
	return female
}
