package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/apperrors"
	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/dto"
	"github.com/TalalMnd/sim_sales_tracker/internal/handlers"
	"github.com/TalalMnd/sim_sales_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---

type TransactionHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockSessionService *MockSessionService
	mockLedgerService  *MockLedgerService
	mockMetricsService *MockMetricsService
	mockSyncService    *MockSyncService
	user               domain.User
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockSessionService = new(MockSessionService)
	suite.mockLedgerService = new(MockLedgerService)
	suite.mockMetricsService = new(MockMetricsService)
	suite.mockSyncService = new(MockSyncService)

	suite.user = domain.User{
		ID:       "talal-admin",
		Username: "talal",
		Role:     domain.RoleAdmin,
		Name:     "Talal",
		DB:       domain.NewLedger(),
	}

	container := &portssvc.ServiceContainer{
		Session: suite.mockSessionService,
		Ledger:  suite.mockLedgerService,
		Metrics: suite.mockMetricsService,
		Sync:    suite.mockSyncService,
	}
	handlers.RegisterRoutes(suite.router, &config.Config{}, container)
}

// withSession primes the session guard to resolve the suite user.
func (suite *TransactionHandlerTestSuite) withSession() {
	suite.mockSessionService.On("Current", mock.Anything).Return(&suite.user, nil)
}

func (suite *TransactionHandlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	suite.withSession()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)
	summary := &domain.DaySummary{
		Day: day,
		Transactions: []domain.Transaction{
			{ID: uuid.NewString(), Date: day.Add(10 * time.Hour), Type: domain.SimJawwy, Amount: decimal.NewFromInt(55), Sims: 1},
		},
		Total: decimal.NewFromInt(55),
	}
	suite.mockMetricsService.On("DaySummary", mock.Anything, suite.user.ID, mock.MatchedBy(func(d time.Time) bool {
		return d.Year() == 2025 && d.Month() == time.June && d.Day() == 10
	})).Return(summary, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/transactions?date=2025-06-10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("jawwy", resp.Transactions[0].Type)
	suite.mockMetricsService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadDate() {
	suite.withSession()

	w := suite.serve(http.MethodGet, "/api/v1/transactions?date=10-06-2025", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMetricsService.AssertNotCalled(suite.T(), "DaySummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_NoSession() {
	suite.mockSessionService.On("Current", mock.Anything).Return(nil, apperrors.ErrNoSession)

	w := suite.serve(http.MethodGet, "/api/v1/transactions", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestRecordSale_Success() {
	suite.withSession()
	txn := &domain.Transaction{
		ID:     uuid.NewString(),
		Date:   time.Now(),
		Type:   domain.SimSawa,
		Amount: decimal.NewFromInt(30),
		Sims:   2,
	}
	suite.mockLedgerService.On("RecordSale", mock.Anything, suite.user.ID, mock.MatchedBy(func(req dto.RecordSaleRequest) bool {
		return req.Type == domain.SimSawa && req.Sims == 2
	})).Return(txn, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/transactions", gin.H{
		"type": "sawa",
		"amt":  30,
		"sims": 2,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txn.ID, resp.ID)
	suite.Equal("sawa", resp.Type)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestRecordSale_UnknownTypeRejectedAtBinding() {
	suite.withSession()

	w := suite.serve(http.MethodPost, "/api/v1/transactions", gin.H{
		"type": "landline",
		"amt":  30,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestRecordSale_ValidationErrorFromService() {
	suite.withSession()
	suite.mockLedgerService.On("RecordSale", mock.Anything, suite.user.ID, mock.AnythingOfType("dto.RecordSaleRequest")).
		Return(nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)).Once()

	w := suite.serve(http.MethodPost, "/api/v1/transactions", gin.H{
		"type": "jawwy",
		"amt":  -5,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	suite.withSession()
	suite.mockLedgerService.On("DeleteTransaction", mock.Anything, suite.user.ID, "txn-1").Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/transactions/txn-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_UnknownIDStillNoContent() {
	suite.withSession()
	// The service treats unknown IDs as a successful no-op.
	suite.mockLedgerService.On("DeleteTransaction", mock.Anything, suite.user.ID, "ghost").Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/transactions/ghost", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
