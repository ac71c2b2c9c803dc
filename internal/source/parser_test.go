package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/salescast/internal/forecast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeInput creates a temp file with the given lines and returns its path.
func writeInput(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func sampleCSV(t *testing.T) string {
	return writeInput(t, "input.csv",
		"Month,Revenue,Profit",
		"Jan,120000,40000",
		"Feb,115000,38000",
		"Mar,118000,39000",
		"Apr,122000,41000",
		"May,125000,42000",
		"Jun,130000,45000",
	)
}

func TestReadFile_CSV(t *testing.T) {
	in, err := ReadFile(sampleCSV(t))
	require.NoError(t, err)

	assert.Equal(t, []float64{120000, 115000, 118000, 122000, 125000, 130000}, in.Revenue.Values)
	assert.Equal(t, []float64{40000, 38000, 39000, 41000, 42000, 45000}, in.Profit.Values)
	assert.NotEmpty(t, in.Path)
}

func TestReadFile_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Profit", "Revenue"},
		{40000, 120000},
		{38000, 115000},
		{39000, 118000},
		{41000, 122000},
		{42000, 125000},
		{45000, 130000},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	in, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 130000.0, in.Revenue.Values[5])
	assert.Equal(t, 40000.0, in.Profit.Values[0])
}

func TestParseRows_OptionalMonthAndBlankRows(t *testing.T) {
	in, err := ParseRows([][]string{
		{"revenue", " PROFIT "},
		{"1", "2"},
		{"", ""},
		{"3", "4"},
		{"5", "6"},
		{"7", "8"},
		{"9", "10"},
		{"11", "12"},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5, 7, 9, 11}, in.Revenue.Values)
	assert.Equal(t, []float64{2, 4, 6, 8, 10, 12}, in.Profit.Values)
}

func TestParseRows_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{"empty", nil, "file is empty"},
		{"no revenue", [][]string{{"Month", "Profit"}}, "missing Revenue column"},
		{"no profit", [][]string{{"Month", "Revenue"}}, "missing Profit column"},
		{"short", [][]string{{"Revenue", "Profit"}, {"1", "2"}}, "need exactly 6 monthly values, got 1"},
		{"month order", [][]string{
			{"Month", "Revenue", "Profit"},
			{"Feb", "1", "2"},
		}, "row 2 should be Jan"},
		{"non numeric", [][]string{
			{"Revenue", "Profit"},
			{"1", "2"}, {"1", "2"}, {"1", "2"}, {"1", "2"}, {"1", "2"}, {"1", "n/a"},
		}, "use numeric values only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRows(tt.rows)
			require.ErrorIs(t, err, forecast.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	path := writeInput(t, "input.json", "{}")
	_, err := ReadFile(path)
	assert.ErrorContains(t, err, "unsupported input format")
}

func TestMonthMatches(t *testing.T) {
	assert.True(t, monthMatches("January", "Jan"))
	assert.True(t, monthMatches("jan", "Jan"))
	assert.False(t, monthMatches("Ja", "Jan"))
	assert.False(t, monthMatches("Feb", "Jan"))
	assert.True(t, monthMatches("MARCH", "Mar"))
	assert.False(t, monthMatches("Janitor", "Jan"))
	assert.False(t, monthMatches("Marble", "Mar"))
	assert.False(t, monthMatches("", "May"))
}
