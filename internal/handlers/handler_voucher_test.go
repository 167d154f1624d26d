package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
	"github.com/sahajlabs/bahikhata/internal/dto"
	"github.com/sahajlabs/bahikhata/internal/handlers"
)

// --- Mock VoucherService ---
type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) GetVoucherEntries(ctx context.Context, voucherID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, []domain.LedgerEntry, error) {
	args := m.Called(ctx)
	var rows []domain.TrialBalanceRow
	var orphans []domain.LedgerEntry
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.TrialBalanceRow)
	}
	if args.Get(1) != nil {
		orphans = args.Get(1).([]domain.LedgerEntry)
	}
	return rows, orphans, args.Error(2)
}

func (m *MockReportingService) ProfitAndLoss(ctx context.Context) (*domain.PAndLReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PAndLReport), args.Error(1)
}

func (m *MockReportingService) GSTSummary(ctx context.Context) (*domain.GSTSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTSummary), args.Error(1)
}

func (m *MockReportingService) LedgerBook(ctx context.Context, accountID string) (*domain.LedgerBook, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerBook), args.Error(1)
}

func (m *MockReportingService) CheckCompliance(ctx context.Context, req dto.CreateVoucherRequest) (*domain.ComplianceFlags, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComplianceFlags), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type VoucherHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockVoucher   *MockVoucherService
	mockReporting *MockReportingService
}

func (suite *VoucherHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = dto.RegisterCustomValidations(v)
	}
}

func (suite *VoucherHandlerTestSuite) SetupTest() {
	suite.mockVoucher = new(MockVoucherService)
	suite.mockReporting = new(MockReportingService)

	suite.router = gin.New()
	services := &portssvc.ServiceContainer{
		Voucher:   suite.mockVoucher,
		Reporting: suite.mockReporting,
	}
	handlers.RegisterRoutes(suite.router, services)
}

func (suite *VoucherHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validVoucherPayload() dto.CreateVoucherRequest {
	return dto.CreateVoucherRequest{
		Date:           "2024-05-10",
		Type:           domain.Sales,
		VoucherNumber:  "INV-001",
		PartyAccountID: "acc_customer_a",
		LineItems: []dto.CreateVoucherLineRequest{
			{AccountID: "acc_sales", Amount: decimal.NewFromInt(1000)},
		},
	}
}

// --- Test Cases ---

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_Created() {
	created := &domain.Voucher{
		VoucherID:      "vch_1",
		Date:           time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Type:           domain.Sales,
		VoucherNumber:  "INV-001",
		PartyAccountID: "acc_customer_a",
		TotalAmount:    decimal.NewFromInt(1000),
	}
	suite.mockVoucher.On("CreateVoucher", mock.Anything, mock.AnythingOfType("dto.CreateVoucherRequest")).
		Return(created, nil).Once()

	w := suite.postJSON("/api/v1/vouchers", validVoucherPayload())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.VoucherResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("vch_1", resp.VoucherID)
	suite.Equal("2024-05-10", resp.Date)
	suite.mockVoucher.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_DuplicateNumberConflict() {
	suite.mockVoucher.On("CreateVoucher", mock.Anything, mock.AnythingOfType("dto.CreateVoucherRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSON("/api/v1/vouchers", validVoucherPayload())

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_UnknownTypeRejected() {
	payload := validVoucherPayload()
	payload.Type = "INVOICE"

	w := suite.postJSON("/api/v1/vouchers", payload)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockVoucher.AssertNotCalled(suite.T(), "CreateVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_BadDateRejected() {
	payload := validVoucherPayload()
	payload.Date = "10/05/2024"

	w := suite.postJSON("/api/v1/vouchers", payload)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockVoucher.AssertNotCalled(suite.T(), "CreateVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_MissingLinesRejected() {
	payload := validVoucherPayload()
	payload.LineItems = nil

	w := suite.postJSON("/api/v1/vouchers", payload)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockVoucher.AssertNotCalled(suite.T(), "CreateVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherHandlerTestSuite) TestGetVoucher_NotFound() {
	suite.mockVoucher.On("GetVoucherByID", mock.Anything, "vch_missing").
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vouchers/vch_missing", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *VoucherHandlerTestSuite) TestGetVoucherEntries_OK() {
	entries := []domain.LedgerEntry{
		{
			EntryID:   "vch_1-1",
			Date:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			VoucherID: "vch_1",
			AccountID: "acc_customer_a",
			Debit:     decimal.NewFromInt(1180),
		},
	}
	suite.mockVoucher.On("GetVoucherEntries", mock.Anything, "vch_1").Return(entries, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vouchers/vch_1/entries", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VoucherEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("vch_1", resp.VoucherID)
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("vch_1-1", resp.Entries[0].EntryID)
}

func (suite *VoucherHandlerTestSuite) TestCheckCompliance_OK() {
	flags := &domain.ComplianceFlags{EWayBillRequired: true, EInvoiceApplicable: true}
	suite.mockReporting.On("CheckCompliance", mock.Anything, mock.AnythingOfType("dto.CreateVoucherRequest")).
		Return(flags, nil).Once()

	w := suite.postJSON("/api/v1/vouchers/check-compliance", validVoucherPayload())

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ComplianceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.EWayBillRequired)
	suite.True(resp.EInvoiceApplicable)
}

// --- Run Suite ---
func TestVoucherHandler(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}
