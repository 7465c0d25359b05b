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

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound       ErrorCode = "BUDGET_001"
	BudgetInvalidAmount  ErrorCode = "BUDGET_002"
	BudgetInvalidPeriod  ErrorCode = "BUDGET_003"
	BudgetInvalidType    ErrorCode = "BUDGET_004"
	BudgetDuplicate      ErrorCode = "BUDGET_005"
	BudgetCreationFailed ErrorCode = "BUDGET_006"
)

// Planning error codes (PLAN_*)
const (
	PlanSessionNotFound    ErrorCode = "PLAN_001"
	PlanItemNotFound       ErrorCode = "PLAN_002"
	PlanDuplicateItem      ErrorCode = "PLAN_003"
	PlanConflictsDetected  ErrorCode = "PLAN_004"
	PlanNothingToCommit    ErrorCode = "PLAN_005"
	PlanPartialCommit      ErrorCode = "PLAN_006"
	PlanInvalidSavingsRate ErrorCode = "PLAN_007"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInvalidID     ErrorCode = "CATEGORY_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Budget errors
	BudgetNotFound:       "Budget not found",
	BudgetInvalidAmount:  "Budget amount must be positive",
	BudgetInvalidPeriod:  "Invalid budget period or month",
	BudgetInvalidType:    "Invalid budget type",
	BudgetDuplicate:      "A budget for this category and period already exists",
	BudgetCreationFailed: "One or more budgets could not be created",

	// Planning errors
	PlanSessionNotFound:    "Planning session not found or expired",
	PlanItemNotFound:       "Allocation not found in planning session",
	PlanDuplicateItem:      "An allocation for this category and type is already in the plan",
	PlanConflictsDetected:  "Plan conflicts with existing budgets for this period",
	PlanNothingToCommit:    "No included allocations with a positive amount to commit",
	PlanPartialCommit:      "Some budgets could not be created; failed allocations remain in the plan",
	PlanInvalidSavingsRate: "Savings rate must be between 0 and 100",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInvalidID:     "Invalid category ID format",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
