package models

// Kinds of targets a DistanceReport can refer to.
const (
	TargetKindLocation = "location"
	TargetKindFix      = "fix"
)

// DistanceReport holds the distance between the configured origin and one target.
type DistanceReport struct {
	ReportID       string  `json:"report_id"`
	Target         string  `json:"target"`
	Kind           string  `json:"kind"`
	Meters         float64 `json:"meters"`
	WithinAccuracy bool    `json:"within_accuracy"`
}
