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
	"github.com/arionfin/arion-backend/internal/dto"
)

// MockTransactionRepository is a mock implementation of portsrepo.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// MockBudgetService is a mock implementation of portssvc.BudgetSvcFacade.
type MockBudgetService struct {
	mock.Mock
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

func (m *MockBudgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, userID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, userID, budgetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) DeactivateBudget(ctx context.Context, userID, budgetID string) error {
	args := m.Called(ctx, userID, budgetID)
	return args.Error(0)
}

func (m *MockBudgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	args := m.Called(ctx, userID, budgetID)
	return args.Error(0)
}

func (m *MockBudgetService) EvaluateCandidate(ctx context.Context, userID, category string, period domain.Period, candidateAmount decimal.Decimal) (*domain.BudgetEvaluation, error) {
	args := m.Called(ctx, userID, category, period, candidateAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetEvaluation), args.Error(1)
}

func (m *MockBudgetService) ListExceededBudgets(ctx context.Context, userID string, period domain.Period) ([]domain.BudgetEvaluation, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEvaluation), args.Error(1)
}

// MockAlertPublisher is a mock implementation of portssvc.BudgetAlertPublisher.
type MockAlertPublisher struct {
	mock.Mock
}

var _ portssvc.BudgetAlertPublisher = (*MockAlertPublisher)(nil)

func (m *MockAlertPublisher) PublishBudgetExceeded(ctx context.Context, userID string, evaluation domain.BudgetEvaluation) error {
	args := m.Called(ctx, userID, evaluation)
	return args.Error(0)
}

func (m *MockAlertPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func sampleEvaluation() *domain.BudgetEvaluation {
	return &domain.BudgetEvaluation{
		Category:          "Food",
		Period:            domain.Period{Year: 2025, Month: time.March},
		Limit:             decimal.NewFromInt(80),
		CurrentSpent:      decimal.NewFromInt(90),
		CandidateAmount:   decimal.NewFromInt(10),
		ProjectedTotal:    decimal.NewFromInt(100),
		ExcessAmount:      decimal.NewFromInt(20),
		PercentageOfLimit: decimal.NewFromInt(125),
	}
}

func TestCreateTransaction_IncomeSkipsBudgetCheck(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	mockBudgetSvc := new(MockBudgetService)
	svc := services.NewTransactionService(mockTxnRepo, mockBudgetSvc, nil)

	mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, evaluation, err := svc.CreateTransaction(ctx, "user-1", dto.CreateTransactionRequest{
		Category: "Salary",
		Type:     "INCOME",
		Amount:   decimal.NewFromInt(3000),
		Date:     "2025-03-25",
	})
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Nil(t, evaluation)
	assert.Equal(t, "user-1", txn.UserID)
	assert.Equal(t, domain.Income, txn.Type)
	assert.NotEmpty(t, txn.TransactionID)

	mockTxnRepo.AssertExpectations(t)
	mockBudgetSvc.AssertNotCalled(t, "EvaluateCandidate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTransaction_ExpenseWithinBudget(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	mockBudgetSvc := new(MockBudgetService)
	svc := services.NewTransactionService(mockTxnRepo, mockBudgetSvc, nil)

	period := domain.Period{Year: 2025, Month: time.March}
	amount := decimal.NewFromInt(20)
	mockBudgetSvc.On("EvaluateCandidate", ctx, "user-1", "Food", period, amount).Return(nil, nil).Once()
	mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, evaluation, err := svc.CreateTransaction(ctx, "user-1", dto.CreateTransactionRequest{
		Category: "Food",
		Type:     "EXPENSE",
		Amount:   amount,
		Date:     "2025-03-10",
	})
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Nil(t, evaluation)

	mockTxnRepo.AssertExpectations(t)
	mockBudgetSvc.AssertExpectations(t)
}

func TestCreateTransaction_UnconfirmedBreachStoresNothing(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	mockBudgetSvc := new(MockBudgetService)
	svc := services.NewTransactionService(mockTxnRepo, mockBudgetSvc, nil)

	period := domain.Period{Year: 2025, Month: time.March}
	amount := decimal.NewFromInt(10)
	mockBudgetSvc.On("EvaluateCandidate", ctx, "user-1", "Food", period, amount).Return(sampleEvaluation(), nil).Once()

	txn, evaluation, err := svc.CreateTransaction(ctx, "user-1", dto.CreateTransactionRequest{
		Category: "Food",
		Type:     "EXPENSE",
		Amount:   amount,
		Date:     "2025-03-10",
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.ErrorIs(t, err, services.ErrBudgetExceeded)
	assert.Nil(t, txn)
	require.NotNil(t, evaluation, "the caller needs the evaluation to ask the user for confirmation")
	assert.True(t, evaluation.ExcessAmount.Equal(decimal.NewFromInt(20)))

	mockTxnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	mockBudgetSvc.AssertExpectations(t)
}

func TestCreateTransaction_ConfirmedBreachPersistsAndAlerts(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	mockBudgetSvc := new(MockBudgetService)
	mockAlerts := new(MockAlertPublisher)
	svc := services.NewTransactionService(mockTxnRepo, mockBudgetSvc, mockAlerts)

	period := domain.Period{Year: 2025, Month: time.March}
	amount := decimal.NewFromInt(10)
	mockBudgetSvc.On("EvaluateCandidate", ctx, "user-1", "Food", period, amount).Return(sampleEvaluation(), nil).Once()
	mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	mockAlerts.On("PublishBudgetExceeded", ctx, "user-1", *sampleEvaluation()).Return(nil).Once()

	txn, evaluation, err := svc.CreateTransaction(ctx, "user-1", dto.CreateTransactionRequest{
		Category:         "Food",
		Type:             "EXPENSE",
		Amount:           amount,
		Date:             "2025-03-10",
		ConfirmOverLimit: true,
	})
	require.NoError(t, err)
	require.NotNil(t, txn)
	require.NotNil(t, evaluation)

	mockTxnRepo.AssertExpectations(t)
	mockBudgetSvc.AssertExpectations(t)
	mockAlerts.AssertExpectations(t)
}

func TestCreateTransaction_AlertFailureDoesNotFailTheFlow(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	mockBudgetSvc := new(MockBudgetService)
	mockAlerts := new(MockAlertPublisher)
	svc := services.NewTransactionService(mockTxnRepo, mockBudgetSvc, mockAlerts)

	period := domain.Period{Year: 2025, Month: time.March}
	amount := decimal.NewFromInt(10)
	mockBudgetSvc.On("EvaluateCandidate", ctx, "user-1", "Food", period, amount).Return(sampleEvaluation(), nil).Once()
	mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	mockAlerts.On("PublishBudgetExceeded", ctx, "user-1", mock.Anything).Return(assert.AnError).Once()

	_, _, err := svc.CreateTransaction(ctx, "user-1", dto.CreateTransactionRequest{
		Category:         "Food",
		Type:             "EXPENSE",
		Amount:           amount,
		Date:             "2025-03-10",
		ConfirmOverLimit: true,
	})
	require.NoError(t, err)
	mockAlerts.AssertExpectations(t)
}

func TestCreateTransaction_ValidationFailures(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	mockBudgetSvc := new(MockBudgetService)
	svc := services.NewTransactionService(mockTxnRepo, mockBudgetSvc, nil)

	tests := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{
			name: "malformed date",
			req:  dto.CreateTransactionRequest{Category: "Food", Type: "EXPENSE", Amount: decimal.NewFromInt(10), Date: "10/03/2025"},
		},
		{
			name: "zero amount",
			req:  dto.CreateTransactionRequest{Category: "Food", Type: "EXPENSE", Amount: decimal.Zero, Date: "2025-03-10"},
		},
		{
			name: "negative amount",
			req:  dto.CreateTransactionRequest{Category: "Food", Type: "EXPENSE", Amount: decimal.NewFromInt(-10), Date: "2025-03-10"},
		},
		{
			name: "empty category",
			req:  dto.CreateTransactionRequest{Category: "", Type: "EXPENSE", Amount: decimal.NewFromInt(10), Date: "2025-03-10"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			txn, evaluation, err := svc.CreateTransaction(ctx, "user-1", tc.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Nil(t, txn)
			assert.Nil(t, evaluation)
		})
	}

	mockTxnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	mockBudgetSvc.AssertNotCalled(t, "EvaluateCandidate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetTransactionByID_OwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	svc := services.NewTransactionService(mockTxnRepo, new(MockBudgetService), nil)

	stored := &domain.Transaction{
		TransactionID: "txn-1",
		UserID:        "someone-else",
		Category:      "Food",
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(10),
		Date:          time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
	mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(stored, nil).Once()

	txn, err := svc.GetTransactionByID(ctx, "user-1", "txn-1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Nil(t, txn)
	mockTxnRepo.AssertExpectations(t)
}

func TestUpdateTransaction_EditsAreNotReEvaluated(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	mockBudgetSvc := new(MockBudgetService)
	svc := services.NewTransactionService(mockTxnRepo, mockBudgetSvc, nil)

	stored := &domain.Transaction{
		TransactionID: "txn-1",
		UserID:        "user-1",
		Category:      "Food",
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(10),
		Date:          time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
	mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(stored, nil).Once()
	mockTxnRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	newAmount := decimal.NewFromInt(9999)
	updated, err := svc.UpdateTransaction(ctx, "user-1", "txn-1", dto.UpdateTransactionRequest{Amount: &newAmount})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(newAmount))

	mockTxnRepo.AssertExpectations(t)
	mockBudgetSvc.AssertNotCalled(t, "EvaluateCandidate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	svc := services.NewTransactionService(mockTxnRepo, new(MockBudgetService), nil)

	mockTxnRepo.On("FindTransactionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := svc.DeleteTransaction(ctx, "user-1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockTxnRepo.AssertNotCalled(t, "DeleteTransaction", mock.Anything, mock.Anything)
}
