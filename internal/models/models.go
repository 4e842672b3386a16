package models

// User represents a registered individual with income, goal, and mood attributes.
type User struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	MonthlyIncome float64 `json:"monthly_income"`
	FinancialGoal string  `json:"financial_goal"`
	Mood          string  `json:"mood"`
}

// Transaction represents a single monetary event attributed to a user.
// Amount keeps its sign, so the same table holds income and expenses.
// Date is stored as an opaque string and never parsed.
type Transaction struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}
