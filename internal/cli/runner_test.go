package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/entraops/internal/checklist"
	"github.com/idilsaglam/entraops/internal/tui"
	"github.com/idilsaglam/entraops/internal/ui"
)

type result struct {
	code           int
	stdout, stderr string
}

func execute(t *testing.T, dash func(tui.Options) (tui.Model, error), args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	a := &app{stdout: &out, stderr: &errb, runDash: dash}
	if dash == nil {
		a.runDash = func(tui.Options) (tui.Model, error) {
			t.Fatal("dashboard should not start")
			return tui.Model{}, nil
		}
	}
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	code := a.run(append([]string{"--config", cfg}, args...))
	return result{code: code, stdout: ui.StripANSI(out.String()), stderr: ui.StripANSI(errb.String())}
}

func TestScore(t *testing.T) {
	r := execute(t, nil, "score", "--done", "pim,log-analytics")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "40% (2/5) Improving\n", r.stdout)

	r = execute(t, nil, "score", "--done", "break-glass,global-admins,pim,log-analytics,service-principals")
	assert.Equal(t, "100% (5/5) Secure\n", r.stdout)
}

func TestScore_UnknownIDIsNotedNotCounted(t *testing.T) {
	r := execute(t, nil, "score", "--done", "pim", "--done", "made-up")
	require.Equal(t, 0, r.code)
	assert.Equal(t, "20% (1/5) Improving\n", r.stdout)
	assert.Contains(t, r.stderr, `"made-up" is not a known check`)
}

func TestList(t *testing.T) {
	r := execute(t, nil, "ls", "--done", "pim")
	require.Equal(t, 0, r.code, r.stderr)
	for _, want := range []string{"Checks", "Total 5", "Emergency Access", "[break-glass]", "Use PIM for all administrative roles", "20%"} {
		assert.Contains(t, r.stdout, want)
	}

	r = execute(t, nil, "ls", "-q", "pim")
	assert.Contains(t, r.stdout, "Privileged Access")
	assert.Contains(t, r.stdout, "[pim]")
	assert.NotContains(t, r.stdout, "[break-glass]")
	assert.NotContains(t, r.stdout, "[global-admins]")

	r = execute(t, nil, "ls", "-q", "nothing-like-this")
	assert.Contains(t, r.stdout, `no checks match "nothing-like-this"`)
}

func TestList_Group(t *testing.T) {
	r := execute(t, nil, "ls", "--group", "--done", "log-analytics")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "Action Required")
	assert.Contains(t, r.stdout, "Passed")
	assert.Less(t, bytes.Index([]byte(r.stdout), []byte("Passed")), bytes.Index([]byte(r.stdout), []byte("[log-analytics]")))
}

func TestReport_Stdout(t *testing.T) {
	r := execute(t, nil, "report", "--done", "pim")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "# Security Assessment Report")
	assert.Contains(t, r.stdout, "**20%** Overall Security Score")
	assert.Contains(t, r.stdout, "- ✔ Use PIM for all administrative roles")
}

func TestReport_FileFormats(t *testing.T) {
	dir := t.TempDir()
	js := filepath.Join(dir, "r.json")
	r := execute(t, nil, "report", "--done", "pim,break-glass", "--out", js)
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "report written to "+js)

	b, err := os.ReadFile(js)
	require.NoError(t, err)
	var got checklist.Report
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, 40, got.Rounded)
	assert.Len(t, got.Complete, 2)

	r = execute(t, nil, "report", "--out", filepath.Join(dir, "r.pdf"))
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "unsupported report format")
}

func TestReport_OutFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	out := filepath.Join(dir, "from-config.md")
	require.NoError(t, os.WriteFile(cfgPath, []byte("report:\n  out: "+out+"\n"), 0o644))

	var stdout, stderr bytes.Buffer
	a := &app{stdout: &stdout, stderr: &stderr, runDash: tui.Run}
	require.Equal(t, 0, a.run([]string{"--config", cfgPath, "report"}), stderr.String())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "## Action Required")
}

func TestUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"subcommand": {"frobnicate"},
		"flag":       {"score", "--nope"},
		"theme":      {"--theme", "neon", "score"},
		"extra arg":  {"score", "extra"},
	}
	for name, args := range cases {
		r := execute(t, nil, args...)
		assert.Equal(t, 2, r.code, name)
		assert.NotEmpty(t, r.stderr, name)
	}
}

func TestBadConfigIsError(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme: neon\n"), 0o644))

	var stdout, stderr bytes.Buffer
	a := &app{stdout: &stdout, stderr: &stderr, runDash: tui.Run}
	assert.Equal(t, 1, a.run([]string{"--config", cfgPath, "score"}))
	assert.Contains(t, stderr.String(), "theme must be dark or light")
}

func TestDash_PrintsHeldReportAfterExit(t *testing.T) {
	var seen tui.Options
	dash := func(opt tui.Options) (tui.Model, error) {
		seen = opt
		opt.Tracker.Toggle("global-admins")
		r := checklist.BuildReport(opt.Catalog, opt.Tracker)
		require.NoError(t, opt.Printer.Print(context.Background(), r))
		return tui.New(opt), nil
	}

	r := execute(t, dash, "--theme", "light", "dash", "--done", "pim")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "light", seen.Theme)
	assert.True(t, seen.Tracker.IsComplete("pim"))
	assert.Contains(t, r.stdout, "# Security Assessment Report")
	assert.Contains(t, r.stdout, "score 40% (2/5)")
}

func TestDash_IsDefault(t *testing.T) {
	started := false
	dash := func(opt tui.Options) (tui.Model, error) {
		started = true
		return tui.New(opt), nil
	}
	r := execute(t, dash)
	require.Equal(t, 0, r.code, r.stderr)
	assert.True(t, started)
	assert.Contains(t, r.stdout, "score 0% (0/5)")
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "entraops.log")
	r := execute(t, nil, "--log-file", logPath, "report", "--done", "nope")
	require.Equal(t, 0, r.code, r.stderr)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"unknown check id"`)
	assert.Contains(t, string(b), `"msg":"report printed"`)
}
