package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DetectFormat picks a reader from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported input format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
}

// ReadFile reads and parses an input file.
func ReadFile(path string) (Input, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Input{}, err
	}

	var rows [][]string
	switch format {
	case FormatCSV:
		rows, err = readCSV(path)
	case FormatXLSX:
		rows, err = readXLSX(path)
	}
	if err != nil {
		return Input{}, err
	}

	in, err := ParseRows(rows)
	if err != nil {
		return Input{}, fmt.Errorf("%s: %w", path, err)
	}
	in.Path = path
	return in, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path) //nolint:gosec // input path is chosen by the local user
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV %s: %w", path, err)
	}
	return rows, nil
}

// readXLSX reads the first sheet of a workbook.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading sheet rows: %w", err)
	}
	return rows, nil
}
