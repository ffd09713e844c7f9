package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/core/ledger"
	portsrepo "github.com/arionfin/arion-backend/internal/core/ports/repositories"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
)

// reportService compiles date-range reports and renders them through the
// registered format renderers.
type reportService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepository
	userRepo  portsrepo.UserRepository
	renderers map[string]portssvc.ReportRenderer
}

// NewReportService creates a new ReportService with the given renderers,
// keyed by lowercase format name.
func NewReportService(txnRepo portsrepo.TransactionRepository, userRepo portsrepo.UserRepository, renderers map[string]portssvc.ReportRenderer) portssvc.ReportSvcFacade {
	return &reportService{
		txnRepo:   txnRepo,
		userRepo:  userRepo,
		renderers: renderers,
	}
}

// Ensure reportService implements the portssvc.ReportSvcFacade interface
var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// CompileReport builds an immutable report for the user's transactions
// inside [from, to].
func (s *reportService) CompileReport(ctx context.Context, userID string, from, to time.Time) (*domain.Report, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end precedes range start", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for report: %w", err)
	}

	txns, err := s.txnRepo.ListTransactions(ctx, userID, portsrepo.TransactionListFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}

	report := ledger.CompileReport(*user, from, to, txns, time.Now().UTC())
	return &report, nil
}

// RenderReport serializes a compiled report with the renderer registered for
// the format and returns the document bytes with their content type.
func (s *reportService) RenderReport(ctx context.Context, report *domain.Report, format string) ([]byte, string, error) {
	renderer, ok := s.renderers[strings.ToLower(format)]
	if !ok {
		return nil, "", fmt.Errorf("%w: unsupported report format %q", apperrors.ErrValidation, format)
	}

	data, err := renderer.Render(*report)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render %s report: %w", format, err)
	}
	return data, renderer.ContentType(), nil
}
