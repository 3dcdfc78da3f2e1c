package wellness

// Scenario is a named sample input used for demos and regression tests.
type Scenario struct {
	Key   string      `json:"key"`
	Label string      `json:"label"`
	Input MetricInput `json:"input"`
}

var scenarios = []Scenario{
	{
		Key:   "healthyYoungMale",
		Label: "Healthy Young Male (25)",
		Input: MetricInput{
			Age: "25", Sex: "male",
			A1c: "5.0", LDL: "65", HDL: "60", TotalCholesterol: "170", Triglycerides: "80",
			LPA: "20", ApoB: "70", Systolic: "115", Diastolic: "75", WaistHeightRatio: "0.45",
			VO2Max: "52", GripStrength: "46",
			BodyFatPercent: "10", SkeletalMuscleMassPercent: "43",
		},
	},
	{
		Key:   "healthyYoungFemale",
		Label: "Healthy Young Female (27)",
		Input: MetricInput{
			Age: "27", Sex: "female",
			A1c: "5.1", LDL: "68", HDL: "70", TotalCholesterol: "175", Triglycerides: "75",
			LPA: "25", ApoB: "72", Systolic: "110", Diastolic: "70", WaistHeightRatio: "0.44",
			VO2Max: "42", GripStrength: "31",
			BodyFatPercent: "16", SkeletalMuscleMassPercent: "31",
		},
	},
	{
		Key:   "healthyMiddleAgedMale",
		Label: "Healthy Middle-Aged Male (45)",
		Input: MetricInput{
			Age: "45", Sex: "male",
			A1c: "5.4", LDL: "90", HDL: "55", TotalCholesterol: "185", Triglycerides: "110",
			LPA: "40", ApoB: "85", Systolic: "122", Diastolic: "78", WaistHeightRatio: "0.5",
			VO2Max: "40", GripStrength: "40",
			BodyFatPercent: "17", SkeletalMuscleMassPercent: "39",
		},
	},
	{
		Key:   "healthyMiddleAgedFemale",
		Label: "Healthy Middle-Aged Female (48)",
		Input: MetricInput{
			Age: "48", Sex: "female",
			A1c: "5.3", LDL: "85", HDL: "65", TotalCholesterol: "190", Triglycerides: "95",
			LPA: "35", ApoB: "80", Systolic: "118", Diastolic: "76", WaistHeightRatio: "0.48",
			VO2Max: "32", GripStrength: "27",
			BodyFatPercent: "19", SkeletalMuscleMassPercent: "28",
		},
	},
	{
		Key:   "elderlyHealthyMale",
		Label: "Elderly Healthy Male (70)",
		Input: MetricInput{
			Age: "70", Sex: "male",
			A1c: "5.6", LDL: "95", HDL: "50", TotalCholesterol: "180", Triglycerides: "120",
			LPA: "45", ApoB: "88", Systolic: "125", Diastolic: "80", WaistHeightRatio: "0.52",
			VO2Max: "28", GripStrength: "33",
			BodyFatPercent: "20", SkeletalMuscleMassPercent: "34",
		},
	},
	{
		Key:   "elderlyHealthyFemale",
		Label: "Elderly Healthy Female (72)",
		Input: MetricInput{
			Age: "72", Sex: "female",
			A1c: "5.6", LDL: "92", HDL: "62", TotalCholesterol: "195", Triglycerides: "115",
			LPA: "40", ApoB: "86", Systolic: "124", Diastolic: "78", WaistHeightRatio: "0.51",
			VO2Max: "23", GripStrength: "22",
			BodyFatPercent: "24", SkeletalMuscleMassPercent: "24",
		},
	},
	{
		Key:   "athleticMale",
		Label: "Athletic Male (32)",
		Input: MetricInput{
			Age: "32", Sex: "male",
			A1c: "4.9", LDL: "60", HDL: "65", TotalCholesterol: "160", Triglycerides: "60",
			LPA: "15", ApoB: "60", Systolic: "110", Diastolic: "68", WaistHeightRatio: "0.42",
			VO2Max: "58", GripStrength: "52",
			BodyFatPercent: "9", SkeletalMuscleMassPercent: "45",
		},
	},
	{
		Key:   "unhealthyMale",
		Label: "Unhealthy Male (52)",
		Input: MetricInput{
			Age: "52", Sex: "male",
			A1c: "6.8", LDL: "165", HDL: "35", TotalCholesterol: "260", Triglycerides: "280",
			LPA: "140", ApoB: "125", Systolic: "145", Diastolic: "92", WaistHeightRatio: "0.65",
			VO2Max: "24", GripStrength: "26",
			BodyFatPercent: "29", SkeletalMuscleMassPercent: "30",
		},
	},
	{
		Key:   "unhealthyFemale",
		Label: "Unhealthy Female (55)",
		Input: MetricInput{
			Age: "55", Sex: "female",
			A1c: "6.6", LDL: "160", HDL: "40", TotalCholesterol: "265", Triglycerides: "260",
			LPA: "130", ApoB: "122", Systolic: "142", Diastolic: "91", WaistHeightRatio: "0.63",
			VO2Max: "18", GripStrength: "13",
			BodyFatPercent: "36", SkeletalMuscleMassPercent: "22",
		},
	},
	{
		Key:   "sedentaryPerson",
		Label: "Sedentary Person (38)",
		Input: MetricInput{
			Age: "38", Sex: "female",
			A1c: "5.9", LDL: "135", HDL: "45", TotalCholesterol: "225", Triglycerides: "180",
			LPA: "60", ApoB: "105", Systolic: "132", Diastolic: "85", WaistHeightRatio: "0.58",
			VO2Max: "25", GripStrength: "18",
			BodyFatPercent: "28", SkeletalMuscleMassPercent: "25",
		},
	},
}

// Scenarios returns a copy of the built-in sample inputs.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

func ScenarioByKey(key string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Key == key {
			return s, true
		}
	}
	return Scenario{}, false
}
