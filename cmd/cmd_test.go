package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setFlags(t *testing.T, revenue, profit, input string) {
	t.Helper()
	oldRev, oldProf, oldIn := flagRevenue, flagProfit, flagInput
	flagRevenue, flagProfit, flagInput = revenue, profit, input
	t.Cleanup(func() { flagRevenue, flagProfit, flagInput = oldRev, oldProf, oldIn })
}

func TestExitCode(t *testing.T) {
	invalid := fmt.Errorf("forecasting Revenue: %w", forecast.InvalidInputError{Metric: model.Revenue, Reason: "x"})
	cfgErr := fmt.Errorf("loading: %w", config.ConfigError{Path: "c.toml", Err: errors.New("bad")})

	assert.Equal(t, exitInvalidInput, exitCode(invalid))
	assert.Equal(t, exitConfig, exitCode(cfgErr))
	assert.Equal(t, exitFailure, exitCode(errors.New("boom")))
}

func TestParseList(t *testing.T) {
	s, err := parseList(model.Profit, "1, 2,3 ,4,5,6")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, s.Values)

	_, err = parseList(model.Profit, "1,2,3")
	assert.ErrorIs(t, err, forecast.ErrInvalidInput)

	_, err = parseList(model.Profit, "1,2,$3,4,5,6")
	var inv forecast.InvalidInputError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "Mar", inv.Month)
}

func TestResolveInput_FallsBackToSamples(t *testing.T) {
	setFlags(t, "10,20,30,40,50,60", "", "")
	cfg := config.DefaultConfig()

	rev, prof, err := resolveInput(zerolog.Nop(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40, 50, 60}, rev)
	assert.Equal(t, cfg.Defaults.Profit, prof)
}

func TestResolveInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("Month,Revenue,Profit\nJan,1,1\nFeb,2,1\nMar,3,1\nApr,4,1\nMay,5,1\nJun,6,1\n"), 0o600))

	setFlags(t, "", "", path)
	rev, prof, err := resolveInput(zerolog.Nop(), config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, rev)
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1}, prof)

	setFlags(t, "1,2,3,4,5,6", "", path)
	_, _, err = resolveInput(zerolog.Nop(), config.DefaultConfig())
	assert.Error(t, err)
}

func TestBuildReport_UsesFlagsAndSamples(t *testing.T) {
	setFlags(t, "", "10,20,30,40,50,60", "")
	cfg := config.DefaultConfig()

	r, err := buildReport(zerolog.Nop(), cfg)
	require.NoError(t, err)
	assert.Equal(t, model.Revenue, r.Revenue.Forecast.Metric)
	assert.Equal(t, 132000.0, r.Revenue.Forecast.Values[0])
	assert.Equal(t, 70.0, r.Profit.Forecast.Values[0])

	setFlags(t, "1,2,3", "", "")
	_, err = buildReport(zerolog.Nop(), cfg)
	assert.ErrorIs(t, err, forecast.ErrInvalidInput)
}

func TestWriteReport_JSON(t *testing.T) {
	r, err := pipeline.RunValues(
		[]float64{100, 200, 300, 400, 500, 600},
		[]float64{50, 40, 30, 20, 10, 0},
		config.DefaultConfig().Guidance.Rules(),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, r, "json"))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Revenue.Forecast, model.Horizon)
	assert.Equal(t, jsonPoint{Month: "Jul", Value: 700}, got.Revenue.Forecast[0])
	assert.Equal(t, 100.0, got.Revenue.Growth)
	assert.Len(t, got.Revenue.Shares, model.Horizon)
	assert.True(t, got.Profit.Degenerate)
	assert.Empty(t, got.Profit.Shares)
	assert.NotEmpty(t, got.Warnings)
}

func TestWriteReport_Table(t *testing.T) {
	r, err := pipeline.RunValues(config.DefaultConfig().Defaults.Revenue, config.DefaultConfig().Defaults.Profit,
		config.DefaultConfig().Guidance.Rules())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, r, "table"))
	assert.Contains(t, buf.String(), "Predicted Data (Next 6 Months)")

	assert.Error(t, writeReport(&buf, r, "yaml"))
}

func TestSetupWizard(t *testing.T) {
	in := strings.NewReader("3\n5000\n\n4\n")
	var out bytes.Buffer

	cfg, err := setupWizard(in, &out, config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", cfg.Appearance.Theme)
	assert.Equal(t, 5000.0, cfg.Guidance.MinValue)
	assert.Equal(t, 200000.0, cfg.Guidance.MaxValue)
	assert.Equal(t, 4.0, cfg.Guidance.MaxJumpRatio)
	assert.Contains(t, out.String(), "Welcome to salescast")
}

func TestSetupWizard_RejectsBadAnswers(t *testing.T) {
	_, err := setupWizard(strings.NewReader("9\n"), &bytes.Buffer{}, config.DefaultConfig())
	assert.Error(t, err)

	_, err = setupWizard(strings.NewReader("\n300000\n"), &bytes.Buffer{}, config.DefaultConfig())
	assert.Error(t, err, "min above max should fail validation")
}
