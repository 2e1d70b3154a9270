package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescart/hw/input"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[log]
modules = ["ines", "input"]

[check]
jobs = 3

[[input.paddles]]
plugged = true
[input.paddles.preset]
buttons = ["K", "J", "Tab", "Space", "W", "S", "A", "D"]

[[input.paddles]]
plugged = false
[input.paddles.preset]
buttons = ["", "", "", "", "", "", "", ""]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := Config{
		Log:   LogConfig{Modules: []string{"ines", "input"}},
		Check: CheckConfig{Jobs: 3},
		Input: input.Config{
			Paddles: [2]input.PaddleConfig{
				{
					Plugged: true,
					Preset: input.PaddlePreset{
						Buttons: [input.PadButtonCount]string{"K", "J", "Tab", "Space", "W", "S", "A", "D"},
					},
				},
				{},
			},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
	if cfg.Jobs() != 3 {
		t.Errorf("Jobs() = %d, want 3", cfg.Jobs())
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[check]\njobs = 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
	if cfg.Jobs() < 1 {
		t.Errorf("Jobs() = %d", cfg.Jobs())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[log\n"},
		{"unknown key", "[log]\nlevel = 3\n"},
		{"unknown module", "[log]\nmodules = [\"gpu\"]\n"},
		{"negative jobs", "[check]\njobs = -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Fatalf("Load() succeeded")
			} else {
				t.Log(err)
			}
		})
	}
}

func TestSaveConfig(t *testing.T) {
	cfg := Default()
	cfg.Log.Modules = []string{"all"}
	cfg.Check.Jobs = 2

	path := filepath.Join(t.TempDir(), "saved.toml")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("saved config mismatch (-want +got):\n%s", diff)
	}
}
