package constant

// The four budget categories are fixed; expenses outside this set are
// rejected at write time.
var BudgetCategories = []string{"Food", "Transportation", "Entertainment", "Other"}

const (
	DefaultTotalBudget = 1000

	DefaultFoodBudget           = 300
	DefaultTransportationBudget = 200
	DefaultEntertainmentBudget  = 100
	DefaultOtherBudget          = 100

	DefaultExpenseDescription = "No description"
)
