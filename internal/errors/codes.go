package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerEntryNotFound    ErrorCode = "LEDGER_001"
	LedgerInvalidEntryType ErrorCode = "LEDGER_002"
	LedgerInvalidAmount    ErrorCode = "LEDGER_003"
	LedgerInvalidCategory  ErrorCode = "LEDGER_004"
	LedgerInvalidUserID    ErrorCode = "LEDGER_005"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound        ErrorCode = "GOAL_001"
	GoalInvalidTarget   ErrorCode = "GOAL_002"
	GoalInvalidProgress ErrorCode = "GOAL_003"
	GoalNoActiveGoal    ErrorCode = "GOAL_004"
)

// Forecast error codes (FORECAST_*)
const (
	ForecastNotFound           ErrorCode = "FORECAST_001"
	ForecastInProgress         ErrorCode = "FORECAST_002"
	ForecastCategoryNotFound   ErrorCode = "FORECAST_003"
	ForecastInvalidCategory    ErrorCode = "FORECAST_004"
	ForecastComputationFailure ErrorCode = "FORECAST_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Ledger errors
	LedgerEntryNotFound:    "Ledger entry not found",
	LedgerInvalidEntryType: "Entry type must be income or expense",
	LedgerInvalidAmount:    "Ledger entry amount must be positive",
	LedgerInvalidCategory:  "Unknown ledger category",
	LedgerInvalidUserID:    "Invalid user ID format",

	// Goal errors
	GoalNotFound:        "Goal not found",
	GoalInvalidTarget:   "Goal target amount must be positive",
	GoalInvalidProgress: "Goal current amount cannot be negative",
	GoalNoActiveGoal:    "No active goal for this user",

	// Forecast errors
	ForecastNotFound:           "No forecast record for this user",
	ForecastInProgress:         "Forecast computation is already running",
	ForecastCategoryNotFound:   "No forecast data for the requested category",
	ForecastInvalidCategory:    "Unknown forecast category",
	ForecastComputationFailure: "Forecast computation failed",

	// System errors
	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service is temporarily unavailable",
	SystemConfigurationError: "Service is misconfigured",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Too many requests, please slow down",
}

// GetErrorMessage returns the default human-readable message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An unknown error occurred"
}

// IsValidErrorCode checks whether the code has a registered message
func IsValidErrorCode(code ErrorCode) bool {
	_, exists := errorMessages[code]
	return exists
}
