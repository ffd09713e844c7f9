package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is an immutable snapshot bundling summary figures and transaction
// detail for a date range, ready for external rendering. A new Report is
// compiled per export request.
type Report struct {
	UserID            string                     `json:"userID"`
	UserName          string                     `json:"userName"`
	FromDate          time.Time                  `json:"fromDate"`
	ToDate            time.Time                  `json:"toDate"`
	GeneratedAt       time.Time                  `json:"generatedAt"`
	Summary           PeriodSummary              `json:"summary"`
	CategoryBreakdown map[string]decimal.Decimal `json:"categoryBreakdown"` // expense totals per category
	Transactions      []Transaction              `json:"transactions"`      // date descending, stable tie-break
}
