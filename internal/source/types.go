// Package source reads six-month revenue and profit input from files.
package source

import "github.com/theirongolddev/salescast/internal/model"

// Input holds the two series read from a file.
type Input struct {
	Path    string
	Revenue model.MonthlySeries
	Profit  model.MonthlySeries
}

// Format is a supported input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)
