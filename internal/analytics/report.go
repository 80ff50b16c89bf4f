package analytics

import "github.com/omnipdr/omnipdr/internal/models"

// Severity grades an analytics warning.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityCaution  Severity = "caution"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// BurnoutKind labels the matched burnout rule.
type BurnoutKind string

const (
	BurnoutNone            BurnoutKind = "none"
	BurnoutAcademic        BurnoutKind = "academic_burnout"
	BurnoutAnxietyAvoidant BurnoutKind = "anxiety_avoidance"
	BurnoutSleepDeficit    BurnoutKind = "sleep_deficit"
	BurnoutMotivationLoss  BurnoutKind = "motivation_loss"
)

// BurnoutReport is the outcome of the burnout rule chain. InsufficientData
// marks the "too few records" case, which is a normal result, not an error.
type BurnoutReport struct {
	Kind             BurnoutKind `json:"kind"`
	Severity         Severity    `json:"severity"`
	Message          string      `json:"message"`
	Detail           string      `json:"detail"`
	Recommendations  []string    `json:"recommendations"`
	InsufficientData bool        `json:"insufficient_data"`
}

// ZoneStatus classifies the student's declared target against the computed
// zone of proximal development.
type ZoneStatus string

const (
	ZoneWithin   ZoneStatus = "within_zone"
	ZoneAbove    ZoneStatus = "above_zone"
	ZoneBelow    ZoneStatus = "below_zone"
	ZoneNoTarget ZoneStatus = "no_target"
)

// ZPDReport is the target-zone estimate derived from recent totals.
type ZPDReport struct {
	CurrentLevel     float64    `json:"current_level"`
	LowerBound       float64    `json:"lower_bound"`
	UpperBound       float64    `json:"upper_bound"`
	SuggestedTarget  float64    `json:"suggested_target"`
	Status           ZoneStatus `json:"status"`
	Message          string     `json:"message"`
	InsufficientData bool       `json:"insufficient_data"`
}

// TrendDirection labels the week-over-week total net movement.
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendFalling TrendDirection = "falling"
	TrendFlat    TrendDirection = "flat"
)

// TrendReport compares the last two exam totals.
type TrendReport struct {
	Direction        TrendDirection `json:"direction"`
	Delta            float64        `json:"delta"`
	InsufficientData bool           `json:"insufficient_data"`
}

// SubjectStrengths lists the strongest and weakest subjects of the most
// recent exam. With six or fewer subjects the lists may overlap; that
// mirrors how counselors read the raw ranking and is left as-is.
type SubjectStrengths struct {
	Strong []string `json:"strong"`
	Weak   []string `json:"weak"`
}

// ErrorDensityRow aggregates the error log for one subject.
type ErrorDensityRow struct {
	Subject        string `json:"subject"`
	Errors         int    `json:"errors"`
	PendingReviews int    `json:"pending_reviews"`
}

// Correlations maps a holistic metric name to its Pearson coefficient against
// total net. Empty below the minimum sample size.
type Correlations map[string]float64

// Report aggregates every analysis for one student.
type Report struct {
	Burnout      BurnoutReport       `json:"burnout"`
	ZPD          ZPDReport           `json:"zpd"`
	Trend        TrendReport         `json:"trend"`
	Strengths    SubjectStrengths    `json:"strengths"`
	DueToday     []models.ErrorEntry `json:"due_today"`
	SleepWarning string              `json:"sleep_warning,omitempty"`
	ErrorDensity []ErrorDensityRow   `json:"error_density"`
	Correlations Correlations        `json:"correlations"`
}
