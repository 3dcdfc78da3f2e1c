package wellness

import (
	"math"
	"strconv"
	"strings"
)

type Sex uint8

const (
	SexUnset Sex = iota
	SexMale
	SexFemale
)

func ParseSex(s string) Sex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return SexMale
	case "female":
		return SexFemale
	default:
		return SexUnset
	}
}

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return ""
	}
}

// MetricInput is the raw, form-shaped record of a user's self-reported
// metrics. Every value is text; blank means "not supplied".
type MetricInput struct {
	Age                       string `json:"age"`
	Sex                       string `json:"sex"`
	A1c                       string `json:"a1c"`
	LDL                       string `json:"ldl"`
	HDL                       string `json:"hdl"`
	TotalCholesterol          string `json:"totalCholesterol"`
	Triglycerides             string `json:"triglycerides"`
	LPA                       string `json:"lpa"`
	ApoB                      string `json:"apoB"`
	Systolic                  string `json:"systolic"`
	Diastolic                 string `json:"diastolic"`
	WaistHeightRatio          string `json:"waistHeightRatio"`
	VO2Max                    string `json:"vo2Max"`
	GripStrength              string `json:"gripStrength"`
	BodyFatPercent            string `json:"bodyFat"`
	SkeletalMuscleMassPercent string `json:"smm"`
}

// Metrics is MetricInput after parsing. A nil field was absent or
// unparseable.
type Metrics struct {
	Age *int
	Sex Sex

	A1c              *float64
	LDL              *float64
	HDL              *float64
	TotalCholesterol *float64
	Triglycerides    *float64
	LPA              *float64
	ApoB             *float64
	Systolic         *float64
	Diastolic        *float64
	WaistHeightRatio *float64

	VO2Max       *float64
	GripStrength *float64

	BodyFatPercent            *float64
	SkeletalMuscleMassPercent *float64
}

// ParseInput converts form text to Metrics. It never fails; anything it
// cannot read as a finite number is left nil.
func ParseInput(in MetricInput) Metrics {
	return Metrics{
		Age:                       parseAge(in.Age),
		Sex:                       ParseSex(in.Sex),
		A1c:                       parseNumber(in.A1c),
		LDL:                       parseNumber(in.LDL),
		HDL:                       parseNumber(in.HDL),
		TotalCholesterol:          parseNumber(in.TotalCholesterol),
		Triglycerides:             parseNumber(in.Triglycerides),
		LPA:                       parseNumber(in.LPA),
		ApoB:                      parseNumber(in.ApoB),
		Systolic:                  parseNumber(in.Systolic),
		Diastolic:                 parseNumber(in.Diastolic),
		WaistHeightRatio:          parseNumber(in.WaistHeightRatio),
		VO2Max:                    parseNumber(in.VO2Max),
		GripStrength:              parseNumber(in.GripStrength),
		BodyFatPercent:            parseNumber(in.BodyFatPercent),
		SkeletalMuscleMassPercent: parseNumber(in.SkeletalMuscleMassPercent),
	}
}

func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseAge truncates fractional ages toward zero.
func parseAge(s string) *int {
	v := parseNumber(s)
	if v == nil {
		return nil
	}
	t := math.Trunc(*v)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return nil
	}
	age := int(t)
	return &age
}

// demographics reports whether age and sex are both usable for band lookup.
func (m Metrics) demographics() (int, Sex, bool) {
	if m.Age == nil || m.Sex == SexUnset {
		return 0, SexUnset, false
	}
	return *m.Age, m.Sex, true
}
