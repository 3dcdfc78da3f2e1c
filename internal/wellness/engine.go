package wellness

import "math"

// Scores is the rounded result shown to users.
type Scores struct {
	Metabolic       int `json:"metabolic"`
	VO2Max          int `json:"vo2Max"`
	GripStrength    int `json:"gripStrength"`
	BodyComposition int `json:"bodyComposition"`
	Total           int `json:"total"`
}

// Grade grades the rounded total, so a displayed 90 is always an A+.
func (s Scores) Grade() Grade {
	return GradeFromScore(float64(s.Total))
}

// Breakdown is the unrounded result. Every field is in [0, 100].
type Breakdown struct {
	Metabolic       float64
	VO2Max          float64
	GripStrength    float64
	BodyComposition float64
	Total           float64
}

func (b Breakdown) Scores() Scores {
	return Scores{
		Metabolic:       round(b.Metabolic),
		VO2Max:          round(b.VO2Max),
		GripStrength:    round(b.GripStrength),
		BodyComposition: round(b.BodyComposition),
		Total:           round(b.Total),
	}
}

func (b Breakdown) Grade() Grade {
	return GradeFromScore(b.Total)
}

// Engine scores metrics with a fixed set of weights. The zero value is not
// usable; build one with NewEngine. An Engine is safe for concurrent use.
type Engine struct {
	weights Weights
}

func NewEngine(w Weights) (*Engine, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: w}, nil
}

var defaultEngine = &Engine{weights: DefaultWeights()}

// DefaultEngine uses DefaultWeights.
func DefaultEngine() *Engine {
	return defaultEngine
}

func (e *Engine) Weights() Weights {
	return e.weights
}

func (e *Engine) Calculate(in MetricInput) Scores {
	return e.CalculateMetrics(ParseInput(in)).Scores()
}

func (e *Engine) CalculateMetrics(m Metrics) Breakdown {
	b := Breakdown{
		Metabolic:       clamp(MetabolicScore(m), 0, 100),
		VO2Max:          clamp(VO2MaxScore(m), 0, 100),
		GripStrength:    clamp(GripStrengthScore(m), 0, 100),
		BodyComposition: clamp(BodyCompositionScore(m), 0, 100),
	}

	w := e.weights
	total := b.Metabolic*w.Metabolic +
		b.VO2Max*w.VO2Max +
		b.GripStrength*w.GripStrength +
		b.BodyComposition*w.BodyComposition
	b.Total = clamp(total, 0, 100)

	return b
}

// CalculateScores scores in with DefaultWeights.
func CalculateScores(in MetricInput) Scores {
	return defaultEngine.Calculate(in)
}

func round(v float64) int {
	return int(math.Round(v))
}
