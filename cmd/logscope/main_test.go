package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/gabssanto/logscope/internal/scan"
)

const fixtureRoot = "../../internal/scan/testdata/codebase"

// runApp runs the CLI with args and returns stdout
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := newApp(&buf)
	// Keep exit codes as returned errors instead of exiting the test binary
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := app.Run(context.Background(), append([]string{"logscope", "--log-level", "disabled"}, args...))
	return buf.String(), err
}

func TestAuditText(t *testing.T) {
	out, err := runApp(t, "audit", fixtureRoot)
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}

	expected := []string{
		"🔍 docs: Unknown language or no source files",
		"✅ java: Logger usage detected",
		"⚠️  nodejs: No logger usage found",
		"✅ python: Logger usage detected",
		"✅ react: Logger usage detected",
		"🚫 react: Detected bad logging practice (e.g. console.log)",
		"Audited 5 services",
	}
	for _, line := range expected {
		if !strings.Contains(out, line) {
			t.Errorf("Output missing %q\n%s", line, out)
		}
	}

	// Printed in directory name order
	if strings.Index(out, "docs:") > strings.Index(out, "react:") {
		t.Errorf("Expected docs before react:\n%s", out)
	}
}

func TestRootCommandAuditsPositionalRoot(t *testing.T) {
	out, err := runApp(t, fixtureRoot)
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}

	for _, svc := range []string{"docs", "java", "nodejs", "python", "react"} {
		if !strings.Contains(out, " "+svc+": ") {
			t.Errorf("Output missing service %q\n%s", svc, out)
		}
	}
	if !strings.Contains(out, "Audited 5 services") {
		t.Errorf("Expected 5 services audited:\n%s", out)
	}
}

func TestRootCommandAcceptsAuditFlags(t *testing.T) {
	out, err := runApp(t, "--format", "json", "--ignore", "docs", fixtureRoot)
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 4 records and a summary, got %d lines:\n%s", len(lines), out)
	}
}

func TestAuditJSON(t *testing.T) {
	out, err := runApp(t, "audit", "--format", "json", "--ignore", "docs", fixtureRoot)
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 4 records and a summary, got %d lines:\n%s", len(lines), out)
	}

	var first scan.ClassificationRecord
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Failed to decode record: %v", err)
	}
	if first.Service != "java" || !first.HasLogger || first.HasBad {
		t.Errorf("Unexpected first record: %+v", first)
	}
	if !filepath.IsAbs(first.Path) {
		t.Errorf("Expected absolute path, got %s", first.Path)
	}
}

func TestAuditCheckExitCode(t *testing.T) {
	_, err := runApp(t, "audit", "--check", fixtureRoot)

	var exitErr cli.ExitCoder
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != exitCheckFailed {
		t.Errorf("Expected exit code %d, got %d", exitCheckFailed, exitErr.ExitCode())
	}
}

func TestAuditCheckPassesForCompliantServices(t *testing.T) {
	_, err := runApp(t, "audit", "--check", "--ignore", "nodejs", "--ignore", "react", fixtureRoot)
	if err != nil {
		t.Errorf("Expected compliant services to pass the check, got %v", err)
	}
}

func TestAuditMissingRoot(t *testing.T) {
	_, err := runApp(t, "audit", filepath.Join(t.TempDir(), "missing"))

	var dirErr *scan.DirectoryAccessError
	if !errors.As(err, &dirErr) {
		t.Errorf("Expected *scan.DirectoryAccessError, got %T: %v", err, err)
	}
}

func TestAuditRootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := runApp(t, "audit", file); err == nil {
		t.Error("audit should fail when root is a file")
	}
}

func TestAuditInvalidFormat(t *testing.T) {
	if _, err := runApp(t, "audit", "--format", "xml", fixtureRoot); err == nil {
		t.Error("audit should fail for an unknown format")
	}
}

func TestAuditConfigFile(t *testing.T) {
	root, err := filepath.Abs(fixtureRoot)
	if err != nil {
		t.Fatalf("Failed to resolve fixture: %v", err)
	}
	cfgPath := filepath.Join(t.TempDir(), "logscope.yaml")
	content := "root: " + root + "\nformat: yaml\nignore: [docs, nodejs, python, react]\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := runApp(t, "--config", cfgPath, "audit")
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	if !strings.Contains(out, "service: java") || strings.Contains(out, "service: react") {
		t.Errorf("Unexpected YAML output:\n%s", out)
	}
}

func TestMissingConfigFileFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "typo.yaml")

	out, err := runApp(t, "--config", missing, "audit", fixtureRoot)
	if err == nil {
		t.Fatal("audit should fail when --config points to a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("Expected no report output, got:\n%s", out)
	}
}

func TestRulesCommand(t *testing.T) {
	out, err := runApp(t, "rules")
	if err != nil {
		t.Fatalf("rules failed: %v", err)
	}

	for _, want := range []string{"JavaScript", "Python", "Java", ".py", `System\.out\.println`} {
		if !strings.Contains(out, want) {
			t.Errorf("rules output missing %q\n%s", want, out)
		}
	}
}

func TestDetectCommand(t *testing.T) {
	out, err := runApp(t, "detect", filepath.Join(fixtureRoot, "java"))
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !strings.Contains(out, "Java (java)") {
		t.Errorf("Unexpected detect output: %q", out)
	}

	out, err = runApp(t, "detect", filepath.Join(fixtureRoot, "docs"))
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !strings.Contains(out, "unknown language") {
		t.Errorf("Unexpected detect output: %q", out)
	}
}

func TestCompletionsCommand(t *testing.T) {
	out, err := runApp(t, "completions", "zsh")
	if err != nil {
		t.Fatalf("completions failed: %v", err)
	}
	if !strings.HasPrefix(out, "#compdef logscope") {
		t.Errorf("Unexpected completions output: %q", out[:min(len(out), 40)])
	}

	if _, err := runApp(t, "completions", "tcsh"); err == nil {
		t.Error("completions should fail for unsupported shell")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out) != "logscope version dev" {
		t.Errorf("Unexpected version output: %q", out)
	}
}

func TestResolvePath(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}

	got, err := resolvePath(".")
	if err != nil || got != cwd {
		t.Errorf("resolvePath(.) = %q, %v; want %q", got, err, cwd)
	}

	home, err := os.UserHomeDir()
	if err == nil {
		got, err := resolvePath("~/code")
		if err != nil || got != filepath.Join(home, "code") {
			t.Errorf("resolvePath(~/code) = %q, %v", got, err)
		}
	}

	got, err = resolvePath("relative/dir")
	if err != nil || got != filepath.Join(cwd, "relative/dir") {
		t.Errorf("resolvePath(relative/dir) = %q, %v", got, err)
	}
}
