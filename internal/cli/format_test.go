package cli

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.2, "0"},
		{999, "999"},
		{132000, "132,000"},
		{1234567.6, "1,234,568"},
		{-1500.4, "-1,500"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{512, "512"},
		{132000, "132.0K"},
		{2_500_000, "2.5M"},
		{-4000, "-4.0K"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatGrowth(t *testing.T) {
	if got := FormatGrowth(2000); got != "+2,000/mo" {
		t.Errorf("FormatGrowth(2000) = %q", got)
	}
	if got := FormatGrowth(-1800); got != "-1,800/mo" {
		t.Errorf("FormatGrowth(-1800) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.1584); got != "15.8%" {
		t.Errorf("FormatPercent = %q, want 15.8%%", got)
	}
}
