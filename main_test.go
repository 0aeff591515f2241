package main

import (
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context, error) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dataprep"),
		kong.Vars{"version": "test"},
		kong.Exit(func(int) {}),
	)
	if err != nil {
		t.Fatalf("Failed to build parser: %v", err)
	}
	ctx, err := parser.Parse(args)
	return cli, ctx, err
}

func TestCLI_ExtractDefaults(t *testing.T) {
	dir := t.TempDir()

	cli, ctx, err := parseCLI(t, "extract", dir, "/tmp/out", "-n", "30")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ctx.Command() != "extract <input-folder> <output-folder>" {
		t.Errorf("Command() = %q", ctx.Command())
	}
	if cli.Extract.Interval != 30 {
		t.Errorf("Interval = %d, want 30", cli.Extract.Interval)
	}
	if cli.Extract.KeepFraction != 0.8 {
		t.Errorf("KeepFraction = %g, want 0.8", cli.Extract.KeepFraction)
	}
	if cli.Extract.RandomSelect {
		t.Error("RandomSelect should default to false")
	}
}

func TestCLI_ExtractRequiresInterval(t *testing.T) {
	dir := t.TempDir()

	_, _, err := parseCLI(t, "extract", dir, "/tmp/out")
	if err == nil {
		t.Error("extract without --interval should fail to parse")
	}
}

func TestCLI_ShuffleDefaults(t *testing.T) {
	dir := t.TempDir()

	cli, _, err := parseCLI(t, "shuffle", dir, "/tmp/out")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cli.Shuffle.BatchSize != 500 {
		t.Errorf("BatchSize = %d, want 500", cli.Shuffle.BatchSize)
	}
}

func TestCLI_CutRequiresExistingInput(t *testing.T) {
	dir := t.TempDir()

	_, _, err := parseCLI(t, "cut", dir+"/missing.mp4", "/tmp/out.mp4")
	if err == nil {
		t.Error("cut with a missing input file should fail to parse")
	}
}

func TestCLI_DedupeDefaults(t *testing.T) {
	dir := t.TempDir()

	cli, _, err := parseCLI(t, "dedupe", dir)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cli.Dedupe.Threshold != 10 {
		t.Errorf("Threshold = %d, want 10", cli.Dedupe.Threshold)
	}
	if cli.Dedupe.Delete || cli.Dedupe.NoTUI {
		t.Error("dedupe flags should default to false")
	}
}

func TestCLI_ReportDefaultOutput(t *testing.T) {
	dir := t.TempDir()

	cli, _, err := parseCLI(t, "report", dir)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if filepath.Base(cli.Report.Output) != "file_labels.xlsx" {
		t.Errorf("Output = %q, want file_labels.xlsx", cli.Report.Output)
	}
}

func TestCLI_UnknownCommand(t *testing.T) {
	_, _, err := parseCLI(t, "frobnicate")
	if err == nil {
		t.Error("unknown command should fail to parse")
	}
}
