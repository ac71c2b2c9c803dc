package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/theirongolddev/salescast/internal/model"
)

func sampleReport() model.Report {
	return model.Report{
		Revenue: model.MetricReport{Forecast: model.ForecastResult{Metric: model.Revenue, Growth: 2000}, Total: 822000},
		Profit:  model.MetricReport{Forecast: model.ForecastResult{Metric: model.Profit, Growth: 1000}, Total: 291000},
		Warnings: []model.Warning{
			{Metric: model.Profit, Month: "Feb", Kind: model.WarnScaleJump, Message: "Feb Profit jumps 100x from Jan"},
		},
	}
}

func TestForecastEvent_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Verbose: true, JSON: true})
	ForecastEvent(log, sampleReport())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d log lines, want 3:\n%s", len(lines), buf.String())
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if first["metric"] != "Revenue" {
		t.Errorf("metric = %v, want Revenue", first["metric"])
	}
	if first["growth"] != 2000.0 {
		t.Errorf("growth = %v, want 2000", first["growth"])
	}
	if first["level"] != "debug" {
		t.Errorf("level = %v, want debug", first["level"])
	}

	var warn map[string]any
	if err := json.Unmarshal([]byte(lines[2]), &warn); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if warn["kind"] != "scale_jump" || warn["level"] != "warn" {
		t.Errorf("warning line = %v", warn)
	}
}

func TestNew_DefaultLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{JSON: true})
	ForecastEvent(log, sampleReport())

	out := buf.String()
	if strings.Contains(out, "forecast computed") {
		t.Errorf("debug line logged at info level: %s", out)
	}
	if !strings.Contains(out, "jumps 100x") {
		t.Errorf("warning missing: %s", out)
	}
}

func TestNew_QuietHidesWarnings(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Quiet: true})
	ForecastEvent(log, sampleReport())
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote: %s", buf.String())
	}
}

func TestNew_ConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{})
	log.Info().Str("path", "out.xlsx").Msg("exported")
	if !strings.Contains(buf.String(), "exported") || !strings.Contains(buf.String(), "path=out.xlsx") {
		t.Errorf("console output = %q", buf.String())
	}
}
