package tui

import (
	"errors"
	"strconv"

	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"

	"github.com/charmbracelet/huh"
)

const formWidth = 60

// formValues backs the input form. Held by pointer so huh fields stay bound
// across App copies.
type formValues struct {
	Revenue [model.Horizon]string
	Profit  [model.Horizon]string
	Run     bool
}

func valuesFrom(d config.DefaultsConfig) *formValues {
	v := &formValues{Run: true}
	for i := range model.Horizon {
		if i < len(d.Revenue) {
			v.Revenue[i] = strconv.FormatFloat(d.Revenue[i], 'f', -1, 64)
		}
		if i < len(d.Profit) {
			v.Profit[i] = strconv.FormatFloat(d.Profit[i], 'f', -1, 64)
		}
	}
	return v
}

// validateAmount accepts plain non-negative numbers only.
func validateAmount(s string) error {
	v, err := forecast.ParseValue(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.New("must be 0 or more")
	}
	return nil
}

func metricGroup(metric model.Metric, vals *[model.Horizon]string) *huh.Group {
	fields := make([]huh.Field, 0, model.Horizon+1)
	fields = append(fields, huh.NewNote().
		Title(string(metric)+" (Jan-Jun)").
		Description("Enter numeric values only, no currency symbols or separators."))
	for i, m := range model.HistoryMonths {
		fields = append(fields, huh.NewInput().
			Title(m).
			Prompt("> ").
			Value(&vals[i]).
			Validate(validateAmount))
	}
	return huh.NewGroup(fields...)
}

func newInputForm(v *formValues, width int) *huh.Form {
	v.Run = true
	form := huh.NewForm(
		metricGroup(model.Revenue, &v.Revenue),
		metricGroup(model.Profit, &v.Profit),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Run prediction?").
				Description("Projects Jul-Dec from the Jan-Jun trend.").
				Affirmative("Run prediction").
				Negative("Cancel").
				Value(&v.Run),
		),
	).WithShowHelp(true)
	if width > 0 {
		form = form.WithWidth(min(width, formWidth))
	}
	return form
}

// series parses the form into the two input series.
func (v *formValues) series() (model.MonthlySeries, model.MonthlySeries, error) {
	rev, err := forecast.ParseSeries(model.Revenue, v.Revenue[:])
	if err != nil {
		return model.MonthlySeries{}, model.MonthlySeries{}, err
	}
	prof, err := forecast.ParseSeries(model.Profit, v.Profit[:])
	if err != nil {
		return model.MonthlySeries{}, model.MonthlySeries{}, err
	}
	return rev, prof, nil
}
