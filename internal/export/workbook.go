// Package export writes forecast reports to Excel workbooks.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	SheetHistorical = "Historical"
	SheetPredicted  = "Predicted"
	SheetCombined   = "Combined"
)

// amountFormat is the built-in "#,##0" number format.
const amountFormat = 3

// Workbook builds a workbook for r. The caller owns the returned file and
// must close it.
func Workbook(r model.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := build(f, r); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// WriteFile builds the workbook for r and saves it at path.
func WriteFile(path string, r model.Report) error {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return fmt.Errorf("export path %q must end in .xlsx", path)
	}
	f, err := Workbook(r)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func build(f *excelize.File, r model.Report) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetHistorical); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	for _, name := range []string{SheetPredicted, SheetCombined} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: amountFormat})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	hist := make([][]any, 0, model.Horizon)
	for i, m := range model.HistoryMonths {
		hist = append(hist, []any{m, r.Revenue.History.Values[i], r.Profit.History.Values[i]})
	}
	if err := writeTable(f, SheetHistorical, hist, style); err != nil {
		return err
	}

	pred := make([][]any, 0, model.Horizon)
	for i, m := range model.FutureMonths {
		pred = append(pred, []any{m, r.Revenue.Forecast.Values[i], r.Profit.Forecast.Values[i]})
	}
	if err := writeTable(f, SheetPredicted, pred, style); err != nil {
		return err
	}

	combined := make([][]any, 0, len(r.Revenue.Combined.Values))
	for i, label := range r.Revenue.Combined.Labels {
		combined = append(combined, []any{label, r.Revenue.Combined.Values[i], r.Profit.Combined.Values[i]})
	}
	if err := writeTable(f, SheetCombined, combined, style); err != nil {
		return err
	}

	if err := addTrendChart(f, len(combined)); err != nil {
		return err
	}
	if err := addShareChart(f, r.Revenue, "B", "E2", excelize.Pie); err != nil {
		return err
	}
	return addShareChart(f, r.Profit, "C", "E18", excelize.Doughnut)
}

// writeTable writes a Month/Revenue/Profit header and rows starting at A1.
func writeTable(f *excelize.File, sheet string, rows [][]any, style int) error {
	header := []any{"Month", string(model.Revenue), string(model.Profit)}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, ref, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
		}
	}
	last := fmt.Sprintf("C%d", len(rows)+1)
	if err := f.SetCellStyle(sheet, "B2", last, style); err != nil {
		return fmt.Errorf("styling %s: %w", sheet, err)
	}
	return f.SetColWidth(sheet, "A", "C", 14)
}

func addTrendChart(f *excelize.File, n int) error {
	last := n + 1
	series := make([]excelize.ChartSeries, 0, 2)
	for _, col := range []string{"B", "C"} {
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", SheetCombined, col),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetCombined, last),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", SheetCombined, col, col, last),
		})
	}
	if err := f.AddChart(SheetCombined, "E2", &excelize.Chart{
		Type:   excelize.Line,
		Series: series,
		Legend: excelize.ChartLegend{Position: "bottom"},
	}); err != nil {
		return fmt.Errorf("adding trend chart: %w", err)
	}
	return nil
}

// addShareChart adds a proportional chart of one projected column, or a
// note in its place when the forecast sums to zero.
func addShareChart(f *excelize.File, r model.MetricReport, col, anchor string, kind excelize.ChartType) error {
	if err := forecast.CheckProportional(r); err != nil {
		if !errors.Is(err, forecast.ErrDegenerateDistribution) {
			return err
		}
		note := fmt.Sprintf("Predicted %s is zero or negative; share chart skipped.", strings.ToLower(string(r.Forecast.Metric)))
		return f.SetCellValue(SheetPredicted, anchor, note)
	}

	last := model.Horizon + 1
	if err := f.AddChart(SheetPredicted, anchor, &excelize.Chart{
		Type: kind,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$%s$1", SheetPredicted, col),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetPredicted, last),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", SheetPredicted, col, col, last),
		}},
		Legend: excelize.ChartLegend{Position: "right"},
	}); err != nil {
		return fmt.Errorf("adding %s share chart: %w", r.Forecast.Metric, err)
	}
	return nil
}
