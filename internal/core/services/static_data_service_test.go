package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
	"github.com/sahajlabs/bahikhata/internal/core/services"
)

// --- Test Suite ---
type StaticDataServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockItemRepo    *MockItemRepository
	service         portssvc.StaticDataService
}

func (suite *StaticDataServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockItemRepo = new(MockItemRepository)
	suite.service = services.NewStaticDataService(suite.mockAccountRepo, suite.mockItemRepo)
}

// --- Test Cases ---

func (suite *StaticDataServiceTestSuite) TestInitialize_SeedsEmptyStore() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Times(len(services.DefaultAccounts()))
	suite.mockItemRepo.On("ListItems", ctx).Return([]domain.Item{}, nil).Once()
	suite.mockItemRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.Item")).
		Return(nil).Times(len(services.DefaultItems()))

	err := suite.service.InitializeStaticData(ctx)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *StaticDataServiceTestSuite) TestInitialize_SkipsPopulatedStore() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{{AccountID: "acc_cash"}}, nil).Once()
	suite.mockItemRepo.On("ListItems", ctx).Return([]domain.Item{{ItemID: "item_laptop"}}, nil).Once()

	err := suite.service.InitializeStaticData(ctx)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestStaticDataService(t *testing.T) {
	suite.Run(t, new(StaticDataServiceTestSuite))
}
