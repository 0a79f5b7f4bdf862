package models

// Standard spending categories used by the ledger and the category
// forecaster
const (
	CategoryGroceries      = "GROCERIES"
	CategoryDining         = "DINING"
	CategoryTransportation = "TRANSPORTATION"
	CategoryEntertainment  = "ENTERTAINMENT"
	CategoryShopping       = "SHOPPING"
	CategoryBillsUtilities = "BILLS_UTILITIES"
	CategoryHealthcare     = "HEALTHCARE"
	CategoryHousing        = "HOUSING"
	CategoryTravel         = "TRAVEL"
	CategorySalary         = "SALARY"
	CategoryInvestment     = "INVESTMENT"
	CategoryOther          = "OTHER"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryDining,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryHousing,
		CategoryTravel,
		CategorySalary,
		CategoryInvestment,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
