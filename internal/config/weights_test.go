package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/garrettladley/wellscore/internal/wellness"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "weights.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write weights file: %v", err)
	}
	return path
}

func TestLoadWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    wellness.Weights
		wantErr bool
	}{
		{
			name:    "valid",
			content: "metabolic: 0.4\nvo2max: 0.3\ngrip_strength: 0.1\nbody_composition: 0.2\n",
			want:    wellness.Weights{Metabolic: 0.4, VO2Max: 0.3, GripStrength: 0.1, BodyComposition: 0.2},
		},
		{name: "bad sum", content: "metabolic: 0.9\n", wantErr: true},
		{name: "unknown key", content: "metabolic: 1\nstrength: 0\n", wantErr: true},
		{name: "empty", content: "", wantErr: true},
		{name: "not yaml", content: "metabolic: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadWeights(writeFile(t, tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadWeights() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LoadWeights() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadWeights_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadWeights(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadWeights() expected error for missing file")
	}
}

func TestServer_ResolveWeights(t *testing.T) {
	t.Parallel()

	file := writeFile(t, "metabolic: 1\n")

	tests := []struct {
		name    string
		server  Server
		want    wellness.Weights
		wantErr bool
	}{
		{name: "defaults", server: Server{}, want: wellness.DefaultWeights()},
		{name: "env", server: Server{Weights: wellness.Weights{GripStrength: 1}}, want: wellness.Weights{GripStrength: 1}},
		{name: "invalid env", server: Server{Weights: wellness.Weights{GripStrength: 2}}, wantErr: true},
		{name: "file wins", server: Server{WeightsFile: file, Weights: wellness.Weights{GripStrength: 1}}, want: wellness.Weights{Metabolic: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.server.ResolveWeights()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveWeights() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveWeights() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCLI_ResolveWeights(t *testing.T) {
	t.Parallel()

	custom := writeFile(t, "metabolic: 1\nvo2max: 0\ngrip_strength: 0\nbody_composition: 0\n")
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	tests := []struct {
		name     string
		cli      CLI
		fallback string
		want     wellness.Weights
		wantErr  bool
	}{
		{name: "defaults", fallback: missing, want: wellness.DefaultWeights()},
		{name: "no fallback", want: wellness.DefaultWeights()},
		{name: "fallback file", fallback: custom, want: wellness.Weights{Metabolic: 1}},
		{name: "explicit file", cli: CLI{WeightsFile: custom}, fallback: missing, want: wellness.Weights{Metabolic: 1}},
		{name: "explicit missing", cli: CLI{WeightsFile: missing}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.cli.ResolveWeights(tt.fallback)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveWeights() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveWeights() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
