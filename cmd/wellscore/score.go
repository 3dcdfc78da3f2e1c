package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/garrettladley/wellscore/internal/assessment"
	"github.com/garrettladley/wellscore/internal/tui"
	"github.com/garrettladley/wellscore/internal/tui/report"
	"github.com/garrettladley/wellscore/internal/wellness"
)

type metricFlag struct {
	name  string
	usage string
	field func(*wellness.MetricInput) *string
}

var metricFlags = []metricFlag{
	{"age", "age in years", func(in *wellness.MetricInput) *string { return &in.Age }},
	{"sex", "male or female", func(in *wellness.MetricInput) *string { return &in.Sex }},
	{"a1c", "HbA1c, %", func(in *wellness.MetricInput) *string { return &in.A1c }},
	{"ldl", "LDL cholesterol, mg/dL", func(in *wellness.MetricInput) *string { return &in.LDL }},
	{"hdl", "HDL cholesterol, mg/dL", func(in *wellness.MetricInput) *string { return &in.HDL }},
	{"total-cholesterol", "total cholesterol, mg/dL", func(in *wellness.MetricInput) *string { return &in.TotalCholesterol }},
	{"triglycerides", "triglycerides, mg/dL", func(in *wellness.MetricInput) *string { return &in.Triglycerides }},
	{"lpa", "lipoprotein(a), nmol/L", func(in *wellness.MetricInput) *string { return &in.LPA }},
	{"apob", "apolipoprotein B, mg/dL", func(in *wellness.MetricInput) *string { return &in.ApoB }},
	{"systolic", "systolic blood pressure, mmHg", func(in *wellness.MetricInput) *string { return &in.Systolic }},
	{"diastolic", "diastolic blood pressure, mmHg", func(in *wellness.MetricInput) *string { return &in.Diastolic }},
	{"waist-height-ratio", "waist-to-height ratio", func(in *wellness.MetricInput) *string { return &in.WaistHeightRatio }},
	{"vo2max", "VO2 max, mL/kg/min", func(in *wellness.MetricInput) *string { return &in.VO2Max }},
	{"grip-strength", "grip strength, kg", func(in *wellness.MetricInput) *string { return &in.GripStrength }},
	{"body-fat", "body fat, %", func(in *wellness.MetricInput) *string { return &in.BodyFatPercent }},
	{"smm", "skeletal muscle mass, % of body weight", func(in *wellness.MetricInput) *string { return &in.SkeletalMuscleMassPercent }},
}

func bindMetricFlags(flags *pflag.FlagSet, in *wellness.MetricInput) {
	for _, f := range metricFlags {
		flags.StringVar(f.field(in), f.name, "", f.usage)
	}
}

// overlay copies every metric flag the user set from flagged onto base.
func overlay(flags *pflag.FlagSet, base *wellness.MetricInput, flagged wellness.MetricInput) {
	for _, f := range metricFlags {
		if flags.Changed(f.name) {
			*f.field(base) = *f.field(&flagged)
		}
	}
}

func readInput(path string, stdin io.Reader) (wellness.MetricInput, error) {
	var in wellness.MetricInput

	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return in, fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	if err := go_json.NewDecoder(r).Decode(&in); err != nil {
		return in, fmt.Errorf("failed to decode input: %w", err)
	}
	return in, nil
}

type scoreOutput struct {
	Scores     wellness.Scores        `json:"scores"`
	Grade      wellness.Grade         `json:"grade"`
	Assessment *assessment.Assessment `json:"assessment,omitempty"`
}

func scoreCmd(a *app) *cobra.Command {
	var (
		flagged  wellness.MetricInput
		scenario string
		input    string
		title    string
		asJSON   bool
		save     bool
		dash     bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a set of metrics",
		Long: "Computes the metabolic, VO2 max, grip strength and body composition scores, " +
			"the weighted total and its letter grade. Metrics can come from flags, a JSON file " +
			"(--input, - for stdin) or a built-in scenario; flags override the others.",
		Example: "  wellscore score --age 45 --sex female --a1c 5.3 --ldl 95 --hdl 62 --vo2max 33\n" +
			"  wellscore score --scenario sedentaryPerson --vo2max 30 --save",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var in wellness.MetricInput
			switch {
			case scenario != "":
				s, ok := wellness.ScenarioByKey(scenario)
				if !ok {
					return fmt.Errorf("unknown scenario %q, run `wellscore scenarios` to list them", scenario)
				}
				in = s.Input
			case input != "":
				var err error
				if in, err = readInput(input, cmd.InOrStdin()); err != nil {
					return err
				}
			}
			overlay(cmd.Flags(), &in, flagged)

			var (
				out   scoreOutput
				saved *assessment.Assessment
			)
			switch {
			case save || a.cfg.Server != "":
				b, err := a.open(ctx)
				if err != nil {
					return err
				}
				if save {
					if saved, err = b.Save(ctx, assessment.CreateRequest{Title: title, FormData: in}); err != nil {
						return describe(err)
					}
					out = scoreOutput{Scores: saved.Scores, Grade: saved.Grade, Assessment: saved}
				} else {
					scores, grade, err := b.Score(ctx, in)
					if err != nil {
						return describe(err)
					}
					out = scoreOutput{Scores: scores, Grade: grade}
				}
			default:
				// nothing to persist, so skip opening the history database
				engines, err := a.engine()
				if err != nil {
					return err
				}
				scores, grade, err := scoreLocal(engines, in)
				if err != nil {
					return describe(err)
				}
				out = scoreOutput{Scores: scores, Grade: grade}
			}

			switch {
			case asJSON:
				return writeJSON(cmd.OutOrStdout(), out)
			case dash:
				preview := saved
				if preview == nil {
					preview = unsaved(title, in, out)
				}
				return runDashboard(tui.Deps{Ctx: ctx, Logger: a.logger, Preloaded: []assessment.Assessment{*preview}})
			}

			w := cmd.OutOrStdout()
			if saved != nil {
				title = saved.Title
			}
			_, _ = fmt.Fprint(w, report.Render(report.Report{Title: title, Scores: out.Scores, Grade: out.Grade}))
			if saved != nil {
				_, _ = fmt.Fprintf(w, "\nsaved %s\n", saved.ID)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	bindMetricFlags(flags, &flagged)
	flags.StringVar(&scenario, "scenario", "", "start from a built-in scenario")
	flags.StringVar(&input, "input", "", "read metrics as JSON from a file, - for stdin")
	flags.StringVar(&title, "title", "", "title for --save, defaults to today's date")
	flags.BoolVar(&asJSON, "json", false, "print JSON")
	flags.BoolVar(&save, "save", false, "save to history")
	flags.BoolVar(&dash, "tui", false, "show the result in the dashboard")
	cmd.MarkFlagsMutuallyExclusive("scenario", "input")
	cmd.MarkFlagsMutuallyExclusive("json", "tui")

	return cmd
}

func unsaved(title string, in wellness.MetricInput, out scoreOutput) *assessment.Assessment {
	now := time.Now()
	if title == "" {
		title = assessment.DefaultTitle(now)
	}
	return &assessment.Assessment{
		Title:     title,
		Input:     in,
		Scores:    out.Scores,
		Grade:     out.Grade,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := go_json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runDashboard(deps tui.Deps) error {
	model := tui.New(deps)
	p := tea.NewProgram(&model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
