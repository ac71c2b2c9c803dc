package source

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
)

// ParseRows parses a header row followed by one row per month.
// Revenue and Profit columns are required; a Month column is optional but,
// when present, must list Jan..Jun in order. Blank rows are skipped.
func ParseRows(rows [][]string) (Input, error) {
	rows = dropBlank(rows)
	if len(rows) == 0 {
		return Input{}, forecast.InvalidInputError{Reason: "file is empty"}
	}

	header := rows[0]
	monthCol := findColumn(header, "month")
	revCol := findColumn(header, "revenue")
	profCol := findColumn(header, "profit")
	if revCol < 0 {
		return Input{}, forecast.InvalidInputError{Metric: model.Revenue, Reason: "missing Revenue column"}
	}
	if profCol < 0 {
		return Input{}, forecast.InvalidInputError{Metric: model.Profit, Reason: "missing Profit column"}
	}

	data := rows[1:]
	if monthCol >= 0 {
		for i, row := range data {
			if i >= model.Horizon {
				break
			}
			got := cell(row, monthCol)
			if !monthMatches(got, model.HistoryMonths[i]) {
				return Input{}, forecast.InvalidInputError{
					Month:  model.HistoryMonths[i],
					Value:  got,
					Reason: fmt.Sprintf("row %d should be %s", i+2, model.HistoryMonths[i]),
				}
			}
		}
	}

	revRaw := make([]string, len(data))
	profRaw := make([]string, len(data))
	for i, row := range data {
		revRaw[i] = cell(row, revCol)
		profRaw[i] = cell(row, profCol)
	}

	revenue, err := forecast.ParseSeries(model.Revenue, revRaw)
	if err != nil {
		return Input{}, err
	}
	profit, err := forecast.ParseSeries(model.Profit, profRaw)
	if err != nil {
		return Input{}, err
	}

	return Input{Revenue: revenue, Profit: profit}, nil
}

func findColumn(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

var fullMonthNames = map[string]string{
	"Jan": "January",
	"Feb": "February",
	"Mar": "March",
	"Apr": "April",
	"May": "May",
	"Jun": "June",
}

// monthMatches accepts the short label or the full month name, ignoring case.
func monthMatches(got, want string) bool {
	if strings.EqualFold(got, want) {
		return true
	}
	full, ok := fullMonthNames[want]
	return ok && strings.EqualFold(got, full)
}

func dropBlank(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		blank := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out
}
