package model

// WarningKind classifies an input that was accepted but looks suspicious.
type WarningKind string

const (
	WarnNegative   WarningKind = "negative"
	WarnOutOfRange WarningKind = "out_of_range"
	WarnScaleJump  WarningKind = "scale_jump"
)

// Warning flags a single input value. Warnings never block a forecast.
type Warning struct {
	Metric  Metric      `json:"metric"`
	Month   string      `json:"month"`
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}
