package ledger

import (
	"sort"
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
)

// CompileReport assembles an immutable report for a date range: summary
// figures, per-category expense breakdown and the transaction detail sorted
// by date descending. Ties keep the input order so compiling the same
// snapshot twice yields identical output.
func CompileReport(user domain.User, from, to time.Time, transactions []domain.Transaction, now time.Time) domain.Report {
	inRange := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}
		inRange = append(inRange, txn)
	}

	sort.SliceStable(inRange, func(i, j int) bool {
		return inRange[i].Date.After(inRange[j].Date)
	})

	return domain.Report{
		UserID:      user.UserID,
		UserName:    user.Username,
		FromDate:    from,
		ToDate:      to,
		GeneratedAt: now,
		// Reports span arbitrary ranges, so the summary's period field is
		// left zero and the range is carried by FromDate/ToDate.
		Summary:           CompileSummary(inRange, nil),
		CategoryBreakdown: CategoryExpenseBreakdown(inRange, nil),
		Transactions:      inRange,
	}
}
