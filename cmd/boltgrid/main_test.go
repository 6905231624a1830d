package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestGenerateStraightLine(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grid.txt")
	if _, err := run(t, "generate", out, "10", "1", "--seed", "7"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := "10 10 1 1\n1\n0 5\n1\n10 5\n"; string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestGenerateRejectsBadArgs(t *testing.T) {
	dir := t.TempDir()
	cases := [][]string{
		{"generate", filepath.Join(dir, "a.txt"), "x", "1"},
		{"generate", filepath.Join(dir, "b.txt"), "10", "y"},
		{"generate", filepath.Join(dir, "c.txt"), "0", "1"},
		{"generate", filepath.Join(dir, "d.txt"), "10", "1", "--profile", "z"},
		{"generate", filepath.Join(dir, "e.txt"), "10", "1", "--preset", "missing"},
	}
	for _, args := range cases {
		if _, err := run(t, args...); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestPipeline(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "runs")
	grid := filepath.Join(dir, "grid.txt")
	frames := filepath.Join(dir, "frames.txt")

	if _, err := run(t, "generate", grid, "8", "1", "--profile", "b", "--seed", "3"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	out, err := run(t, "simulate", grid, frames, "--steps", "3", "--save", "--data", data)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if !strings.Contains(out, "run id: run_") {
		t.Errorf("expected run id in output:\n%s", out)
	}

	gif := filepath.Join(dir, "bolt.gif")
	out, err = run(t, "render", frames, gif)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "3 frames (gif)") {
		t.Errorf("unexpected render output: %s", out)
	}
	if _, err := os.Stat(gif); err != nil {
		t.Errorf("animation not written: %v", err)
	}

	if out, err = run(t, "preview", frames, "--frame", "0"); err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if !strings.Contains(out, "frame 0") {
		t.Errorf("unexpected preview:\n%s", out)
	}
	if _, err := run(t, "preview", frames, "--frame", "9"); err == nil {
		t.Error("expected out of range frame to fail")
	}

	for _, path := range []string{grid, frames} {
		if _, err := run(t, "plot", path); err != nil {
			t.Errorf("plot %s failed: %v", path, err)
		}
	}

	svgPath := filepath.Join(dir, "frame.svg")
	if _, err := run(t, "export-svg", frames, svgPath, "--scale", "2"); err != nil {
		t.Fatalf("export-svg failed: %v", err)
	}
	if _, err := os.Stat(svgPath); err != nil {
		t.Errorf("svg not written: %v", err)
	}

	out, err = run(t, "export-json", frames, "-")
	if err != nil {
		t.Fatalf("export-json failed: %v", err)
	}
	if !strings.Contains(out, `"series"`) || !strings.Contains(out, `"steps": 3`) {
		t.Errorf("unexpected json export:\n%s", out)
	}

	out, err = run(t, "list", "--data", data)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "run_") || !strings.Contains(out, "8x8") {
		t.Errorf("unexpected list output:\n%s", out)
	}

	entries, err := os.ReadDir(data)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored run, got %v (%v)", entries, err)
	}
	out, err = run(t, "show", entries[0].Name(), "--data", data)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, `"input": "`+grid+`"`) || !strings.Contains(out, "bolt_cells") {
		t.Errorf("unexpected show output:\n%s", out)
	}
}

func TestRenderSingleFrame(t *testing.T) {
	dir := t.TempDir()
	frames := filepath.Join(dir, "frames.txt")
	if err := os.WriteFile(frames, []byte("1 2 1\n1 0\n\n"), 0644); err != nil {
		t.Fatal(err)
	}

	gif := filepath.Join(dir, "out.gif")
	out, err := run(t, "render", frames, gif)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "nothing written") {
		t.Errorf("expected notice, got %q", out)
	}
	if _, err := os.Stat(gif); !os.IsNotExist(err) {
		t.Error("no output file should be created")
	}
}

func TestChartRemovesFileOnError(t *testing.T) {
	dir := t.TempDir()
	frames := filepath.Join(dir, "frames.txt")
	if err := os.WriteFile(frames, []byte("1 2 1\n1 0\n\n"), 0644); err != nil {
		t.Fatal(err)
	}

	png := filepath.Join(dir, "chart.png")
	if _, err := run(t, "chart", frames, png); err == nil {
		t.Fatal("expected error for a single frame")
	}
	if _, err := os.Stat(png); !os.IsNotExist(err) {
		t.Error("partial chart should be removed")
	}
}

func TestListEmpty(t *testing.T) {
	out, err := run(t, "list", "--data", filepath.Join(t.TempDir(), "none"))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "no runs found") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPresets(t *testing.T) {
	out, err := run(t, "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, name := range []string{"classic", "variant-long", "1/2"} {
		if !strings.Contains(out, name) {
			t.Errorf("presets output missing %q:\n%s", name, out)
		}
	}
}

func TestGeneratePresetKeepsPositionalMode(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		preset string
		mode   string
		want   string
	}{
		{"variant", "1", "8x8 profile b mode 1, 1 sources, 28 targets"},
		{"classic", "1", "8x8 profile a mode 1, 1 sources, 1 targets"},
		{"variant-long", "3", "profile b mode 3"},
	}
	for _, tc := range cases {
		out, err := run(t, "generate", filepath.Join(dir, tc.preset+".txt"), "8", tc.mode, "--preset", tc.preset)
		if err != nil {
			t.Fatalf("generate --preset %s failed: %v", tc.preset, err)
		}
		if !strings.Contains(out, tc.want) {
			t.Errorf("preset %s mode %s: expected %q in %q", tc.preset, tc.mode, tc.want, out)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "variant.txt"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(data), "\n")
	if lines[0] != "8 8 1 1" || lines[1] != "1" || lines[2] != "4 4" || lines[3] != "28" {
		t.Errorf("expected a closed loop around the centre, got %q", lines[:4])
	}
}
