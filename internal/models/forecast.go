package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CalculationStatusPending    = "pending"
	CalculationStatusInProgress = "in_progress"
	CalculationStatusCompleted  = "completed"
	CalculationStatusFailed     = "failed"

	// ForecastHorizonMonths is the fixed projection horizon
	ForecastHorizonMonths = 12
)

// Risk factor types attached to goal projections
const (
	RiskHighVariability   = "high_variability"
	RiskDecliningTrend    = "declining_trend"
	RiskAmbitiousTimeline = "ambitious_timeline"
	RiskNegativeMonths    = "negative_months"
)

var ErrInvalidCalculationStatus = errors.New("invalid calculation status")

// CategoryPrediction is a single category's projected amount for one month
type CategoryPrediction struct {
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// ConfidenceBands carries the 0-100 confidence score per projected metric
type ConfidenceBands struct {
	Expense float64 `json:"expense"`
	Income  float64 `json:"income"`
	Balance float64 `json:"balance"`
}

// MonthProjection is one month of the budget forecast.
// Invariant: ProjectedBalance = max(0, ProjectedIncome - ProjectedExpense).
type MonthProjection struct {
	Date                time.Time                     `json:"date"`
	Month               string                        `json:"month"`
	ProjectedExpense    float64                       `json:"projected_expense"`
	ProjectedIncome     float64                       `json:"projected_income"`
	ProjectedBalance    float64                       `json:"projected_balance"`
	CategoryPredictions map[string]CategoryPrediction `json:"category_predictions,omitempty"`
	Confidence          ConfidenceBands               `json:"confidence"`
	RiskAssessment      float64                       `json:"risk_assessment"`
}

// RiskFactor is a named, severity-scored condition describing why a goal
// projection may be unreliable
type RiskFactor struct {
	Type        string  `json:"type"`
	Severity    float64 `json:"severity"`
	Description string  `json:"description"`
}

// GoalProjection is the time-to-goal estimate for the user's active goal
type GoalProjection struct {
	GoalID             uuid.UUID    `json:"goal_id"`
	ExpectedMonths     int          `json:"expected_months_to_goal"`
	BestCaseMonths     int          `json:"best_case_months_to_goal"`
	WorstCaseMonths    int          `json:"worst_case_months_to_goal"`
	ProjectedDate      time.Time    `json:"projected_date"`
	MonthlySavings     float64      `json:"monthly_savings"`
	SavingsVariability float64      `json:"savings_variability"`
	Probability        float64      `json:"probability"`
	RiskFactors        []RiskFactor `json:"risk_factors,omitempty"`
}

// CategoryForecastSeries is a per-category view of the stored horizon,
// derived from the month projections when serving category queries
type CategoryForecastSeries struct {
	Category string    `json:"category"`
	Type     string    `json:"type"`
	Months   []string  `json:"months"`
	Amounts  []float64 `json:"amounts"`
}

// DataQuality summarizes how much history backed the forecast
type DataQuality struct {
	TransactionCount int     `json:"transaction_count"`
	MonthsOfData     int     `json:"months_of_data"`
	Completeness     float64 `json:"completeness"`
}

// Forecast is the persisted projection record, one row per user, upserted on
// every engine invocation. Projections are stored as JSON documents, matching
// the document-store shape of the records served to clients.
type Forecast struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BudgetForecasts     MonthProjectionList `gorm:"type:jsonb" json:"budget_forecasts"`
	GoalForecast        *GoalProjectionJSON `gorm:"type:jsonb" json:"goal_forecast,omitempty"`
	CalculationStatus   string              `gorm:"type:varchar(20);not null;default:'pending'" json:"calculation_status"`
	CalculationProgress int                 `gorm:"not null;default:0" json:"calculation_progress"`
	ConfidenceScore     float64             `gorm:"not null;default:0" json:"confidence_score"`
	ForecastMethod      string              `gorm:"type:varchar(60)" json:"forecast_method"`
	DataQuality         DataQualityJSON     `gorm:"type:jsonb" json:"data_quality"`
	LastUpdated         time.Time           `gorm:"not null" json:"last_updated"`
}

// BeforeCreate hook for Forecast
func (f *Forecast) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.LastUpdated.IsZero() {
		f.LastUpdated = time.Now()
	}
	return f.Validate()
}

// BeforeUpdate hook for Forecast
func (f *Forecast) BeforeUpdate(tx *gorm.DB) error {
	return f.Validate()
}

// Validate validates the forecast record fields
func (f *Forecast) Validate() error {
	if f.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidCalculationStatus(f.CalculationStatus) {
		return ErrInvalidCalculationStatus
	}
	if f.CalculationProgress < 0 || f.CalculationProgress > 100 {
		return errors.New("calculation progress out of range")
	}
	if f.ConfidenceScore < 0 || f.ConfidenceScore > 100 {
		return errors.New("confidence score out of range")
	}
	return nil
}

// TableName returns the table name for Forecast
func (f *Forecast) TableName() string {
	return "forecasts"
}

// IsValidCalculationStatus checks if the status is valid
func IsValidCalculationStatus(status string) bool {
	switch status {
	case CalculationStatusPending, CalculationStatusInProgress,
		CalculationStatusCompleted, CalculationStatusFailed:
		return true
	default:
		return false
	}
}

// MonthProjectionList stores the 12-month projection array as a JSON column
type MonthProjectionList []MonthProjection

// Value implements driver.Valuer for database storage
func (l MonthProjectionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (l *MonthProjectionList) Scan(value interface{}) error {
	return scanJSON(value, l, "MonthProjectionList")
}

// GoalProjectionJSON stores a goal projection as a JSON column
type GoalProjectionJSON GoalProjection

// Value implements driver.Valuer for database storage
func (g GoalProjectionJSON) Value() (driver.Value, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (g *GoalProjectionJSON) Scan(value interface{}) error {
	return scanJSON(value, g, "GoalProjectionJSON")
}

// DataQualityJSON stores the data quality summary as a JSON column
type DataQualityJSON DataQuality

// Value implements driver.Valuer for database storage
func (d DataQualityJSON) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (d *DataQualityJSON) Scan(value interface{}) error {
	return scanJSON(value, d, "DataQualityJSON")
}

func scanJSON(value interface{}, dest interface{}, typeName string) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into %s", value, typeName)
	}
}
