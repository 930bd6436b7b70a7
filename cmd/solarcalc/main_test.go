package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/raterudder/solarledger/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeDefaults(t *testing.T) string {
	t.Helper()
	out, err := run(t, "", "defaults")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	out, err := run(t, "", "defaults")
	require.NoError(t, err)

	var p types.InstallationProfile
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))
	assert.Equal(t, types.UtilitySCE, p.Utility)
	assert.Equal(t, types.ProgramLoan, p.Financing.Type())
	assert.NoError(t, p.Validate())
}

func TestEvaluate(t *testing.T) {
	path := writeDefaults(t)

	t.Run("text", func(t *testing.T) {
		out, err := run(t, "", "evaluate", "--profile", path, "--now", "2025-01")
		require.NoError(t, err)
		assert.Contains(t, out, "Grade B (good)")
		assert.Contains(t, out, "Months since install")
		assert.Contains(t, out, "Cumulative")
		assert.NotContains(t, out, "warning")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "", "evaluate", "-p", path, "--now", "2025-01", "--json")
		require.NoError(t, err)

		var r types.Report
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.False(t, r.Fallback)
		assert.Equal(t, types.GradeB, r.Score.Grade)
		assert.Len(t, r.Summary.Yearly, 6)
	})

	t.Run("json profile", func(t *testing.T) {
		b, err := json.Marshal(types.DefaultProfile(types.YearMonth{Year: 2025, Month: 1}))
		require.NoError(t, err)
		jsonPath := filepath.Join(t.TempDir(), "profile.json")
		require.NoError(t, os.WriteFile(jsonPath, b, 0o644))

		out, err := run(t, "", "evaluate", "-p", jsonPath)
		require.NoError(t, err)
		assert.Contains(t, out, "Evaluated")
		assert.Contains(t, out, "2025-01")
	})

	t.Run("stdin", func(t *testing.T) {
		src, err := os.ReadFile(path)
		require.NoError(t, err)
		out, err := run(t, string(src), "evaluate", "-p", "-", "--now", "2025-01")
		require.NoError(t, err)
		assert.Contains(t, out, "Grade B")
	})

	t.Run("degenerate profile prints a warning", func(t *testing.T) {
		p := types.DefaultProfile(types.YearMonth{Year: 2025, Month: 1})
		p.UsageAtInstallKWH = 0
		b, err := yaml.Marshal(p)
		require.NoError(t, err)

		out, err := run(t, string(b), "evaluate", "-p", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "warning")
		assert.Contains(t, out, "Calculating...")
	})

	t.Run("errors", func(t *testing.T) {
		_, err := run(t, "", "evaluate")
		assert.Error(t, err)

		_, err = run(t, "", "evaluate", "-p", filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "failed to read profile")

		_, err = run(t, "", "evaluate", "-p", path, "--now", "January")
		assert.ErrorContains(t, err, "invalid year-month")

		_, err = run(t, "utility: LADWP\n", "evaluate", "-p", "-")
		assert.Error(t, err)
	})
}

func TestPrepareProfile(t *testing.T) {
	clock := time.Date(2025, 3, 1, 5, 0, 0, 0, time.UTC)

	t.Run("stamps now from clock in pacific time", func(t *testing.T) {
		p := types.DefaultProfile(types.YearMonth{})
		p, err := prepareProfile(p, "", clock)
		require.NoError(t, err)
		// 5am UTC on March 1st is still February in California
		assert.Equal(t, types.YearMonth{Year: 2025, Month: 2}, p.Now)
	})

	t.Run("flag overrides profile", func(t *testing.T) {
		p := types.DefaultProfile(types.YearMonth{Year: 2024, Month: 6})
		p, err := prepareProfile(p, "2025-01", clock)
		require.NoError(t, err)
		assert.Equal(t, types.YearMonth{Year: 2025, Month: 1}, p.Now)
	})

	t.Run("migrates old versions", func(t *testing.T) {
		p := types.DefaultProfile(types.YearMonth{Year: 2025, Month: 1})
		p.Version = 2
		p.Financing = types.Financing{Program: types.PPATerms{InitialRate: 0.12, PaidOff: true}}
		p, err := prepareProfile(p, "", clock)
		require.NoError(t, err)
		assert.Equal(t, 2025, p.Financing.Program.(types.PPATerms).PaidOffYear)
		assert.Equal(t, types.CurrentProfileVersion, p.Version)
	})

	t.Run("unversioned profile passes through", func(t *testing.T) {
		p := types.DefaultProfile(types.YearMonth{Year: 2025, Month: 1})
		p.Version = 0
		p.NEM.ExportRate = 0
		p.Battery.EfficiencyPercent = 0
		p, err := prepareProfile(p, "", clock)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Version)
		assert.Equal(t, 0.0, p.NEM.ExportRate)
		assert.Equal(t, 0.0, p.Battery.EfficiencyPercent)
	})
}

func TestRates(t *testing.T) {
	out, err := run(t, "", "rates", "--utility", "PGE", "--from", "2020", "--to", "2022")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "2020"))

	out, err = run(t, "", "rates", "-u", "SDGE", "--from", "2050", "--to", "2050", "--care")
	require.NoError(t, err)
	assert.Contains(t, out, "estimated")

	_, err = run(t, "", "rates", "-u", "LADWP")
	assert.Error(t, err)
}
