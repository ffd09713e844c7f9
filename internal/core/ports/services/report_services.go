package services

import (
	"context"
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
)

// ReportSvcFacade defines report compilation and rendering.
type ReportSvcFacade interface {
	// CompileReport builds an immutable report for the user's transactions
	// inside [from, to].
	CompileReport(ctx context.Context, userID string, from, to time.Time) (*domain.Report, error)

	// RenderReport serializes a compiled report with the renderer registered
	// for the format (csv, xlsx, pdf) and returns the document bytes with
	// their content type.
	RenderReport(ctx context.Context, report *domain.Report, format string) (data []byte, contentType string, err error)
}

// ReportRenderer turns a compiled report into a byte stream in one target
// file format. The engine has no knowledge of the format internals.
type ReportRenderer interface {
	Render(report domain.Report) ([]byte, error)
	ContentType() string
}
