package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
	"github.com/sahajlabs/bahikhata/internal/dto"
	"github.com/sahajlabs/bahikhata/internal/handlers"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RebuildLedger(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockReporting *MockReportingService
	mockLedger    *MockLedgerService
}

func (suite *ReportingHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	suite.mockReporting = new(MockReportingService)
	suite.mockLedger = new(MockLedgerService)

	suite.router = gin.New()
	services := &portssvc.ServiceContainer{
		Reporting: suite.mockReporting,
		Ledger:    suite.mockLedger,
	}
	handlers.RegisterRoutes(suite.router, services)
}

func (suite *ReportingHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestTrialBalance_TotalsAndOrphans() {
	rows := []domain.TrialBalanceRow{
		{AccountID: "acc_customer_a", NetDebit: decimal.NewFromInt(1180)},
		{AccountID: "acc_sales", NetCredit: decimal.NewFromInt(1000)},
		{AccountID: "acc_output_cgst", NetCredit: decimal.NewFromInt(90)},
		{AccountID: "acc_output_sgst", NetCredit: decimal.NewFromInt(90)},
	}
	orphans := []domain.LedgerEntry{{EntryID: "vch_9-2", AccountID: "acc_deleted"}}
	suite.mockReporting.On("TrialBalance", mock.Anything).Return(rows, orphans, nil).Once()

	w := suite.get("/api/v1/reports/trial-balance")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rows, 4)
	suite.True(resp.Totals.NetDebit.Equal(decimal.NewFromInt(1180)))
	suite.True(resp.Totals.NetCredit.Equal(decimal.NewFromInt(1180)))
	suite.Require().Len(resp.Orphans, 1)
	suite.Equal("acc_deleted", resp.Orphans[0].AccountID)
}

func (suite *ReportingHandlerTestSuite) TestProfitAndLoss_OK() {
	report := &domain.PAndLReport{
		Income:    decimal.NewFromInt(1000),
		Expense:   decimal.NewFromInt(500),
		NetProfit: decimal.NewFromInt(500),
	}
	suite.mockReporting.On("ProfitAndLoss", mock.Anything).Return(report, nil).Once()

	w := suite.get("/api/v1/reports/profit-and-loss")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ProfitAndLossResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.NetProfit.Equal(decimal.NewFromInt(500)))
}

func (suite *ReportingHandlerTestSuite) TestGSTSummary_OK() {
	summary := &domain.GSTSummary{
		InputTax:   decimal.NewFromInt(90),
		OutputTax:  decimal.NewFromInt(180),
		NetPayable: decimal.NewFromInt(90),
	}
	suite.mockReporting.On("GSTSummary", mock.Anything).Return(summary, nil).Once()

	w := suite.get("/api/v1/reports/gst-summary")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GSTSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.NetPayable.Equal(decimal.NewFromInt(90)))
}

func (suite *ReportingHandlerTestSuite) TestLedgerBook_NotFound() {
	suite.mockReporting.On("LedgerBook", mock.Anything, "acc_missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.get("/api/v1/reports/ledger-book/acc_missing")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestLedger_OK() {
	entries := []domain.LedgerEntry{{EntryID: "vch_1-1", AccountID: "acc_customer_a"}}
	suite.mockLedger.On("RebuildLedger", mock.Anything).Return(entries, nil).Once()

	w := suite.get("/api/v1/ledger")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("vch_1-1", resp[0].EntryID)
}

func (suite *ReportingHandlerTestSuite) TestHealth_OK() {
	w := suite.get("/health")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Run Suite ---
func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
