package wellness

type Grade struct {
	Grade   string `json:"grade"`
	Meaning string `json:"meaning"`
	Color   string `json:"color"`
}

type gradeBand struct {
	min   float64
	grade Grade
}

var gradeBands = []gradeBand{
	{90, Grade{Grade: "A+", Meaning: "Optimal – Best outcome range", Color: "text-green-600"}},
	{80, Grade{Grade: "A", Meaning: "Excellent – Minimal improvement needed", Color: "text-green-500"}},
	{70, Grade{Grade: "B", Meaning: "Good – Room for improvement", Color: "text-yellow-500"}},
	{60, Grade{Grade: "C", Meaning: "Moderate risk – Action needed", Color: "text-orange-500"}},
	{50, Grade{Grade: "D", Meaning: "High risk – Significant change needed", Color: "text-red-500"}},
}

var gradeF = Grade{Grade: "F", Meaning: "Critical risk – Immediate support recommended", Color: "text-red-600"}

// GradeFromScore maps a total score to its letter grade. NaN grades F
// since it compares false against every band.
func GradeFromScore(score float64) Grade {
	for _, b := range gradeBands {
		if score >= b.min {
			return b.grade
		}
	}
	return gradeF
}

// Grades lists every grade from best to worst.
func Grades() []Grade {
	out := make([]Grade, 0, len(gradeBands)+1)
	for _, b := range gradeBands {
		out = append(out, b.grade)
	}
	return append(out, gradeF)
}
