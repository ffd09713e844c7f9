package dto

import (
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CompileReportParams defines query parameters for compiling a report.
// Format selects the rendering: json (default), csv, xlsx or pdf.
type CompileReportParams struct {
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
	Format string `form:"format,default=json" binding:"omitempty,oneof=json csv xlsx pdf"`
}

// ReportResponse defines the JSON rendering of a compiled report.
type ReportResponse struct {
	UserName          string                     `json:"userName"`
	FromDate          string                     `json:"fromDate"`
	ToDate            string                     `json:"toDate"`
	GeneratedAt       time.Time                  `json:"generatedAt"`
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	TotalExpense      decimal.Decimal            `json:"totalExpense"`
	NetBalance        decimal.Decimal            `json:"netBalance"`
	CategoryBreakdown map[string]decimal.Decimal `json:"categoryBreakdown"`
	Transactions      []TransactionResponse      `json:"transactions"`
}

// ToReportResponse converts a domain.Report to its DTO.
func ToReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		UserName:          r.UserName,
		FromDate:          r.FromDate.Format(DateLayout),
		ToDate:            r.ToDate.Format(DateLayout),
		GeneratedAt:       r.GeneratedAt,
		TotalIncome:       r.Summary.TotalIncome,
		TotalExpense:      r.Summary.TotalExpense,
		NetBalance:        r.Summary.NetBalance(),
		CategoryBreakdown: r.CategoryBreakdown,
		Transactions:      ToTransactionResponses(r.Transactions),
	}
}
