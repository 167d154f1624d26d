package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
	"github.com/sahajlabs/bahikhata/internal/core/services"
	"github.com/sahajlabs/bahikhata/internal/dto"
)

// --- Test Suite ---
type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockAccountRepo *MockAccountRepository
	mockItemRepo    *MockItemRepository
	service         portssvc.VoucherSvcFacade
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockItemRepo = new(MockItemRepository)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockAccountRepo, suite.mockItemRepo)
}

func (suite *VoucherServiceTestSuite) expectKnownAccounts(ids ...string) {
	known := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		known[id] = domain.Account{AccountID: id}
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(known, nil).Once()
}

func salesRequest() dto.CreateVoucherRequest {
	return dto.CreateVoucherRequest{
		Date:           "2024-05-10",
		Type:           domain.Sales,
		VoucherNumber:  "INV-001",
		PartyAccountID: "acc_customer_a",
		LineItems: []dto.CreateVoucherLineRequest{
			{
				AccountID: "acc_sales",
				Amount:    decimal.NewFromInt(1000),
				CGST:      decimal.NewFromInt(90),
				SGST:      decimal.NewFromInt(90),
			},
		},
	}
}

// --- Test Cases ---

func (suite *VoucherServiceTestSuite) TestCreateVoucher_Success() {
	ctx := context.Background()
	req := salesRequest()

	suite.mockVoucherRepo.On("FindVoucherByNumber", ctx, "INV-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.expectKnownAccounts("acc_customer_a", "acc_sales")
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.VoucherNumber == "INV-001" &&
			v.Type == domain.Sales &&
			v.TotalAmount.Equal(decimal.NewFromInt(1180)) &&
			len(v.LineItems) == 1 &&
			v.LineItems[0].LineItemID != ""
	})).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.NotEmpty(voucher.VoucherID)
	suite.True(voucher.TotalAmount.Equal(decimal.NewFromInt(1180)))
	suite.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), voucher.Date)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_DuplicateNumber() {
	ctx := context.Background()
	req := salesRequest()
	existing := &domain.Voucher{VoucherID: "vch_existing", VoucherNumber: "INV-001"}

	suite.mockVoucherRepo.On("FindVoucherByNumber", ctx, "INV-001").Return(existing, nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, req)

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_InvalidDate() {
	ctx := context.Background()
	req := salesRequest()
	req.Date = "10-05-2024"

	voucher, err := suite.service.CreateVoucher(ctx, req)

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "FindVoucherByNumber", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_ItemPrefillAndTaxSplit() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		Date:           "2024-05-11",
		Type:           domain.Sales,
		VoucherNumber:  "INV-002",
		PartyAccountID: "acc_customer_a",
		LineItems: []dto.CreateVoucherLineRequest{
			{
				ItemID:    "item_mouse",
				AccountID: "acc_sales",
				Qty:       decimal.NewFromInt(2),
			},
		},
	}
	item := &domain.Item{
		ItemID:  "item_mouse",
		Name:    "Logitech Mouse",
		Price:   decimal.NewFromInt(500),
		GSTRate: decimal.NewFromInt(18),
	}

	suite.mockVoucherRepo.On("FindVoucherByNumber", ctx, "INV-002").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockItemRepo.On("FindItemByID", ctx, "item_mouse").Return(item, nil).Once()
	suite.expectKnownAccounts("acc_customer_a", "acc_sales")
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, req)

	suite.Require().NoError(err)
	line := voucher.LineItems[0]
	suite.True(line.Rate.Equal(decimal.NewFromInt(500)))
	suite.True(line.Amount.Equal(decimal.NewFromInt(1000)))
	suite.True(line.CGST.Equal(decimal.NewFromInt(90)))
	suite.True(line.SGST.Equal(decimal.NewFromInt(90)))
	suite.True(line.IGST.IsZero())
	suite.Equal("Logitech Mouse", line.Description)
	suite.True(voucher.TotalAmount.Equal(decimal.NewFromInt(1180)))
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_ExplicitTaxNotOverwritten() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		Date:           "2024-05-12",
		Type:           domain.Sales,
		VoucherNumber:  "INV-003",
		PartyAccountID: "acc_customer_a",
		LineItems: []dto.CreateVoucherLineRequest{
			{
				AccountID: "acc_sales",
				Amount:    decimal.NewFromInt(1000),
				GSTRate:   decimal.NewFromInt(18),
				IGST:      decimal.NewFromInt(180),
			},
		},
	}

	suite.mockVoucherRepo.On("FindVoucherByNumber", ctx, "INV-003").Return(nil, apperrors.ErrNotFound).Once()
	suite.expectKnownAccounts("acc_customer_a", "acc_sales")
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, req)

	suite.Require().NoError(err)
	line := voucher.LineItems[0]
	suite.True(line.IGST.Equal(decimal.NewFromInt(180)))
	suite.True(line.CGST.IsZero())
	suite.True(line.SGST.IsZero())
	suite.True(voucher.TotalAmount.Equal(decimal.NewFromInt(1180)))
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_UnknownAccountStillSaves() {
	ctx := context.Background()
	req := salesRequest()

	suite.mockVoucherRepo.On("FindVoucherByNumber", ctx, "INV-001").Return(nil, apperrors.ErrNotFound).Once()
	// Only the party resolves; the line account is unknown.
	suite.expectKnownAccounts("acc_customer_a")
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, req)

	suite.Require().NoError(err)
	suite.NotNil(voucher)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestGetVoucherByID_NotFound() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, "vch_missing").Return(nil, apperrors.ErrNotFound).Once()

	voucher, err := suite.service.GetVoucherByID(ctx, "vch_missing")

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *VoucherServiceTestSuite) TestListVouchers_Success() {
	ctx := context.Background()
	expected := []domain.Voucher{{VoucherID: "vch_1"}, {VoucherID: "vch_2"}}

	suite.mockVoucherRepo.On("ListVouchers", ctx).Return(expected, nil).Once()

	vouchers, err := suite.service.ListVouchers(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, vouchers)
}

func (suite *VoucherServiceTestSuite) TestGetVoucherEntries_PostsAgainstCurrentChart() {
	ctx := context.Background()
	voucher := &domain.Voucher{
		VoucherID:      "vch_1",
		Date:           time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Type:           domain.Sales,
		VoucherNumber:  "INV-001",
		PartyAccountID: "acc_customer_a",
		TotalAmount:    decimal.NewFromInt(1180),
		LineItems: []domain.VoucherLineItem{
			{
				LineItemID: "line_1",
				AccountID:  "acc_sales",
				Amount:     decimal.NewFromInt(1000),
				CGST:       decimal.NewFromInt(90),
				SGST:       decimal.NewFromInt(90),
			},
		},
	}
	chart := []domain.Account{
		{AccountID: "acc_customer_a", Group: domain.Asset, SubGroup: domain.SundryDebtor},
		{AccountID: "acc_sales", Group: domain.Income, SubGroup: domain.SalesAccount},
		{AccountID: "acc_output_cgst", Group: domain.Liability, SubGroup: domain.DutiesTaxes, TaxRole: domain.TaxRoleOutputCGST},
		{AccountID: "acc_output_sgst", Group: domain.Liability, SubGroup: domain.DutiesTaxes, TaxRole: domain.TaxRoleOutputSGST},
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, "vch_1").Return(voucher, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(chart, nil).Once()

	entries, err := suite.service.GetVoucherEntries(ctx, "vch_1")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 4)
	suite.Equal("vch_1-1", entries[0].EntryID)
	suite.Equal("acc_customer_a", entries[0].AccountID)
	suite.True(entries[0].Debit.Equal(decimal.NewFromInt(1180)))
	suite.Equal("acc_sales", entries[1].AccountID)
	suite.Equal("acc_output_cgst", entries[2].AccountID)
	suite.Equal("acc_output_sgst", entries[3].AccountID)
}

// --- Run Suite ---
func TestVoucherService(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
