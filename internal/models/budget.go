package models

import "github.com/shopspring/decimal"

// Budget represents one row of the budgets table. Period is stored in the
// "YYYY-MM" form the original schema used.
type Budget struct {
	BudgetID    string          `json:"budgetID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`   // FK -> User.userID (Not Null)
	Category    string          `json:"category"`
	LimitAmount decimal.Decimal `json:"limitAmount"` // Positive value
	Period      string          `json:"period"`      // "YYYY-MM"
	IsActive    bool            `json:"isActive"`
	AuditFields
}
