package mcp

import (
	"context"
	"fmt"
	"strconv"

	go_json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/garrettladley/wellscore/internal/assessment"
	"github.com/garrettladley/wellscore/internal/wellness"
)

// History lists saved assessments, newest first.
type History interface {
	List(ctx context.Context) ([]assessment.Assessment, error)
}

type handlers struct {
	engines *wellness.Holder
	history History
}

type metricField struct {
	key  string
	desc string
	set  func(*wellness.MetricInput, string)
}

var metricFields = []metricField{
	{"age", "Age in years", func(in *wellness.MetricInput, v string) { in.Age = v }},
	{"sex", "'male' or 'female'", func(in *wellness.MetricInput, v string) { in.Sex = v }},
	{"a1c", "HbA1c, %", func(in *wellness.MetricInput, v string) { in.A1c = v }},
	{"ldl", "LDL cholesterol, mg/dL", func(in *wellness.MetricInput, v string) { in.LDL = v }},
	{"hdl", "HDL cholesterol, mg/dL", func(in *wellness.MetricInput, v string) { in.HDL = v }},
	{"totalCholesterol", "Total cholesterol, mg/dL", func(in *wellness.MetricInput, v string) { in.TotalCholesterol = v }},
	{"triglycerides", "Triglycerides, mg/dL", func(in *wellness.MetricInput, v string) { in.Triglycerides = v }},
	{"lpa", "Lipoprotein(a), nmol/L", func(in *wellness.MetricInput, v string) { in.LPA = v }},
	{"apoB", "Apolipoprotein B, mg/dL", func(in *wellness.MetricInput, v string) { in.ApoB = v }},
	{"systolic", "Systolic blood pressure, mmHg", func(in *wellness.MetricInput, v string) { in.Systolic = v }},
	{"diastolic", "Diastolic blood pressure, mmHg", func(in *wellness.MetricInput, v string) { in.Diastolic = v }},
	{"waistHeightRatio", "Waist-to-height ratio", func(in *wellness.MetricInput, v string) { in.WaistHeightRatio = v }},
	{"vo2Max", "VO2 max, mL/kg/min", func(in *wellness.MetricInput, v string) { in.VO2Max = v }},
	{"gripStrength", "Grip strength, kg", func(in *wellness.MetricInput, v string) { in.GripStrength = v }},
	{"bodyFat", "Body fat, %", func(in *wellness.MetricInput, v string) { in.BodyFatPercent = v }},
	{"smm", "Skeletal muscle mass, % of body weight", func(in *wellness.MetricInput, v string) { in.SkeletalMuscleMassPercent = v }},
}

type scoreResult struct {
	Scores wellness.Scores `json:"scores"`
	Grade  wellness.Grade  `json:"grade"`
}

func (h *handlers) calculateScores(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)

	var in wellness.MetricInput
	for _, f := range metricFields {
		f.set(&in, metricArg(args, f.key))
	}

	return jsonResult(h.score(in))
}

func (h *handlers) gradeFromScore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)
	score, ok := numberArg(args, "score")
	if !ok {
		return errResult("score is required and must be a number"), nil
	}
	return jsonResult(wellness.GradeFromScore(score))
}

func (h *handlers) listScenarios(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type entry struct {
		Key    string               `json:"key"`
		Label  string               `json:"label"`
		Input  wellness.MetricInput `json:"input"`
		Scores wellness.Scores      `json:"scores"`
		Grade  string               `json:"grade"`
	}

	scenarios := wellness.Scenarios()
	entries := make([]entry, 0, len(scenarios))
	for _, s := range scenarios {
		r := h.score(s.Input)
		entries = append(entries, entry{
			Key:    s.Key,
			Label:  s.Label,
			Input:  s.Input,
			Scores: r.Scores,
			Grade:  r.Grade.Grade,
		})
	}
	return jsonResult(entries)
}

func (h *handlers) scoreScenario(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := stringArg(getArgs(request), "key", "")
	if key == "" {
		return errResult("key is required"), nil
	}
	s, ok := wellness.ScenarioByKey(key)
	if !ok {
		return errResult(fmt.Sprintf("unknown scenario %q, use list_scenarios to see all", key)), nil
	}
	return jsonResult(h.score(s.Input))
}

func (h *handlers) listAssessments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := h.history.List(ctx)
	if err != nil {
		return errResult(fmt.Sprintf("listing assessments: %v", err)), nil
	}
	// compare as floats so huge limits never reach the int conversion
	if limit, ok := numberArg(getArgs(request), "limit"); ok && limit >= 0 && limit < float64(len(list)) {
		list = list[:int(limit)]
	}
	return jsonResult(list)
}

func (h *handlers) score(in wellness.MetricInput) scoreResult {
	scores := h.engines.Engine().Calculate(in)
	return scoreResult{Scores: scores, Grade: scores.Grade()}
}

func getArgs(request mcp.CallToolRequest) map[string]interface{} {
	if request.Params.Arguments == nil {
		return map[string]interface{}{}
	}
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}

func stringArg(args map[string]interface{}, key, defaultVal string) string {
	val, ok := args[key]
	if !ok || val == nil {
		return defaultVal
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return defaultVal
	}
	return s
}

// metricArg accepts a metric as a string or a JSON number. Models send
// both.
func metricArg(args map[string]interface{}, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func numberArg(args map[string]interface{}, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := go_json.Marshal(v)
	if err != nil {
		return errResult(fmt.Sprintf("json marshal failed: %v", err)), nil
	}
	return newTextResult(string(data)), nil
}

func newTextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

// errResult is a tool-level error, not a JSON-RPC one.
func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: msg,
			},
		},
	}
}
