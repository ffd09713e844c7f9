package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	portsrepo "github.com/arionfin/arion-backend/internal/core/ports/repositories"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/core/services"
)

// MockUserRepository is a mock implementation of portsrepo.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// stubRenderer counts render calls for the format dispatch tests.
type stubRenderer struct {
	payload     []byte
	contentType string
	calls       int
}

func (r *stubRenderer) Render(report domain.Report) ([]byte, error) {
	r.calls++
	return r.payload, nil
}

func (r *stubRenderer) ContentType() string {
	return r.contentType
}

var _ portssvc.ReportRenderer = (*stubRenderer)(nil)

func TestCompileReport(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	t.Run("compiles sorted snapshot", func(t *testing.T) {
		mockTxnRepo := new(MockTransactionRepository)
		mockUserRepo := new(MockUserRepository)
		svc := services.NewReportService(mockTxnRepo, mockUserRepo, nil)

		mockUserRepo.On("FindUserByID", ctx, "user-1").
			Return(&domain.User{UserID: "user-1", Username: "alice"}, nil).Once()
		mockTxnRepo.On("ListTransactions", ctx, "user-1", portsrepo.TransactionListFilter{From: from, To: to}).
			Return([]domain.Transaction{
				expenseTxn("Rent", "800", "2025-03-01"),
				expenseTxn("Food", "30", "2025-03-10"),
			}, nil).Once()

		report, err := svc.CompileReport(ctx, "user-1", from, to)
		require.NoError(t, err)
		assert.Equal(t, "alice", report.UserName)
		require.Len(t, report.Transactions, 2)
		assert.Equal(t, "Food", report.Transactions[0].Category, "newest transaction first")
		assert.True(t, report.Summary.TotalExpense.Equal(decimal.NewFromInt(830)))
	})

	t.Run("inverted range", func(t *testing.T) {
		svc := services.NewReportService(new(MockTransactionRepository), new(MockUserRepository), nil)
		_, err := svc.CompileReport(ctx, "user-1", to, from)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestRenderReport(t *testing.T) {
	ctx := context.Background()
	csv := &stubRenderer{payload: []byte("csv-bytes"), contentType: "text/csv"}
	svc := services.NewReportService(new(MockTransactionRepository), new(MockUserRepository), map[string]portssvc.ReportRenderer{
		"csv": csv,
	})
	report := &domain.Report{UserID: "user-1"}

	t.Run("dispatches by lowercase format", func(t *testing.T) {
		data, contentType, err := svc.RenderReport(ctx, report, "CSV")
		require.NoError(t, err)
		assert.Equal(t, []byte("csv-bytes"), data)
		assert.Equal(t, "text/csv", contentType)
		assert.Equal(t, 1, csv.calls)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := svc.RenderReport(ctx, report, "docx")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
