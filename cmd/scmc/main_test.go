package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scmc/internal/config"
)

func init() {
	color.NoColor = true
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{90 * time.Second, "1.50min"},
		{1500 * time.Millisecond, "1.50s"},
		{2500 * time.Microsecond, "2.5ms"},
		{1500 * time.Nanosecond, "1.5μs"},
		{42 * time.Nanosecond, "42ns"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.in))
	}
}

func writeTrace(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCheckFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeTrace(t, dir, "a.ir", "(letrec ()\n (begin (nop)))\n"),
		writeTrace(t, dir, "b.ir", "(begin (nop)))\n"),
		filepath.Join(dir, "missing.ir"),
		writeTrace(t, dir, "d.ir", "(locals (x)\n  (set! x 1))\n"),
	}

	results, err := checkFiles(context.Background(), paths, 2)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, paths[i], r.path)
	}
	assert.False(t, results[0].failed())
	require.NotNil(t, results[1].diag)
	assert.Equal(t, "E0100", results[1].diag.Code)
	assert.Error(t, results[2].readErr)
	assert.False(t, results[3].failed())

	var out bytes.Buffer
	assert.Equal(t, 2, reportResults(&out, results))
	assert.Contains(t, out.String(), "error[E0100]")
	assert.Contains(t, out.String(), "missing.ir")
}

func TestCheckFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checkFiles(ctx, []string{"x.ir"}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportLabels(t *testing.T) {
	var out bytes.Buffer
	collided := reportLabels(&out, []string{"a-b", "ok?", "a_b"}, false)

	assert.True(t, collided)
	text := out.String()
	assert.Contains(t, text, "a-b -> a_b\n")
	assert.Contains(t, text, "ok? -> okq\n")
	assert.Contains(t, text, "warning[E0900]")
	assert.Contains(t, text, "'a-b', 'a_b'")

	out.Reset()
	assert.False(t, reportLabels(&out, []string{"f", "g!"}, true))
	assert.Equal(t, "f -> f\ng! -> gl\n", out.String())

	out.Reset()
	assert.True(t, reportLabels(&out, []string{"z?", "zq"}, true))
	assert.Contains(t, out.String(), "error[E0900]")
	assert.NotContains(t, out.String(), "warning")
}

func TestResolveJobs(t *testing.T) {
	newCmd := func(args ...string) *cobra.Command {
		cmd := &cobra.Command{Use: "check"}
		cmd.Flags().Int("jobs", 0, "")
		require.NoError(t, cmd.Flags().Parse(args))
		return cmd
	}
	c := config.Default()
	c.Check.Jobs = 4

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"config", nil, 4},
		{"flag", []string{"--jobs", "2"}, 2},
		{"flag zero", []string{"--jobs", "0"}, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := resolveJobs(newCmd(tt.args...), c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, jobs)
		})
	}

	_, err := resolveJobs(newCmd("--jobs", "-1"), c)
	assert.Error(t, err)
}

func TestRunFmt(t *testing.T) {
	dir := t.TempDir()
	good := writeTrace(t, dir, "good.ir", "(begin\n   (nop))\n")
	bad := writeTrace(t, dir, "bad.ir", "(begin (nop)))\n")

	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	require.NoError(t, runFmt(cmd, []string{good}))
	assert.Contains(t, out.String(), "(begin (nop))")

	err := runFmt(cmd, []string{bad})
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut.String(), "error[E0100]")
	assert.Contains(t, errOut.String(), "bad.ir")

	err = runFmt(cmd, []string{filepath.Join(dir, "missing.ir")})
	require.Error(t, err)
	assert.NotErrorIs(t, err, errReported)
	assert.True(t, isReadError(err))
}
