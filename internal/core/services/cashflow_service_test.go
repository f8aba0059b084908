package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portssvc "github.com/fincore-dev/asset_ledger_app/internal/core/ports/services"
	"github.com/fincore-dev/asset_ledger_app/internal/core/services"
	"github.com/fincore-dev/asset_ledger_app/internal/dto"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/lock"
)

// --- Test Suite ---
type CashflowServiceTestSuite struct {
	suite.Suite
	mockCashflows  *MockCashflowRepository
	mockBalanceSvc *MockCashBalanceService
	mockDays       *MockBusinessDayService
	service        portssvc.CashflowSvcFacade

	today time.Time
	now   domain.TimePoint
}

func (suite *CashflowServiceTestSuite) SetupTest() {
	suite.mockCashflows = new(MockCashflowRepository)
	suite.mockBalanceSvc = new(MockCashBalanceService)
	suite.mockDays = new(MockBusinessDayService)
	coordinator := services.NewTxCoordinator(fakeTxManager{}, lock.NewIdLockManager())
	suite.service = services.NewCashflowService(suite.mockCashflows, suite.mockBalanceSvc, suite.mockDays, coordinator)

	suite.today = day(2024, time.March, 15)
	suite.now = domain.NewTimePoint(suite.today, time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC))
	suite.mockDays.On("Now", mock.Anything).Return(suite.now, nil)
}

func (suite *CashflowServiceTestSuite) registerRequest(valueDay time.Time) dto.RegisterCashflowRequest {
	return dto.RegisterCashflowRequest{
		AccountID:    "acc-1",
		CurrencyCode: "JPY",
		Amount:       decimal.NewFromInt(500),
		CashflowType: domain.CashIn,
		Remark:       "deposit",
		ValueDay:     valueDay,
	}
}

func (suite *CashflowServiceTestSuite) TestRegisterCashflow_FutureValueDayStaysUnprocessed() {
	valueDay := day(2024, time.March, 20)
	suite.mockCashflows.On("SaveCashflow", mock.Anything, mock.MatchedBy(func(cf domain.Cashflow) bool {
		return cf.AccountID == "acc-1" &&
			cf.StatusType == domain.Unprocessed &&
			cf.EventDay.Equal(suite.today) &&
			cf.ValueDay.Equal(valueDay)
	}), "user-1", suite.now.Timestamp).Return(nil).Once()

	got, err := suite.service.RegisterCashflow(context.Background(), suite.registerRequest(valueDay), "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Unprocessed, got.StatusType)
	suite.mockCashflows.AssertNotCalled(suite.T(), "UpdateCashflowStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockBalanceSvc.AssertNotCalled(suite.T(), "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockCashflows.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestRegisterCashflow_DueTodayRealizesImmediately() {
	suite.mockCashflows.On("SaveCashflow", mock.Anything, mock.AnythingOfType("domain.Cashflow"), "user-1", suite.now.Timestamp).
		Return(nil).Once()
	suite.mockCashflows.On("UpdateCashflowStatus", mock.Anything, mock.AnythingOfType("string"), domain.Processed, "user-1", suite.now.Timestamp).
		Return(nil).Once()
	suite.mockBalanceSvc.On("Add", mock.Anything, "acc-1", "JPY",
		mock.MatchedBy(func(amount decimal.Decimal) bool { return amount.Equal(decimal.NewFromInt(500)) }),
		"user-1").Return(&domain.CashBalance{Amount: decimal.NewFromInt(1500)}, nil).Once()

	got, err := suite.service.RegisterCashflow(context.Background(), suite.registerRequest(suite.today), "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Processed, got.StatusType)
	suite.mockCashflows.AssertExpectations(suite.T())
	suite.mockBalanceSvc.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestRegisterCashflow_PastValueDayRejected() {
	_, err := suite.service.RegisterCashflow(context.Background(), suite.registerRequest(day(2024, time.March, 14)), "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAfterValueDay)
	suite.mockCashflows.AssertNotCalled(suite.T(), "SaveCashflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashflowServiceTestSuite) TestRegisterCashflow_ZeroAmountRejected() {
	req := suite.registerRequest(day(2024, time.March, 20))
	req.Amount = decimal.Zero

	_, err := suite.service.RegisterCashflow(context.Background(), req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CashflowServiceTestSuite) TestRealizeCashflow_OnValueDay() {
	cf := &domain.Cashflow{
		CashflowID: "cf-1", AccountID: "acc-1", CurrencyCode: "JPY",
		Amount: decimal.NewFromInt(-300), ValueDay: suite.today, StatusType: domain.Unprocessed,
	}
	suite.mockCashflows.On("FindCashflowByID", mock.Anything, "cf-1").Return(cf, nil).Twice()
	suite.mockCashflows.On("UpdateCashflowStatus", mock.Anything, "cf-1", domain.Processed, "batch", suite.now.Timestamp).
		Return(nil).Once()
	suite.mockBalanceSvc.On("Add", mock.Anything, "acc-1", "JPY",
		mock.MatchedBy(func(amount decimal.Decimal) bool { return amount.Equal(decimal.NewFromInt(-300)) }),
		"batch").Return(&domain.CashBalance{Amount: decimal.NewFromInt(700)}, nil).Once()

	got, err := suite.service.RealizeCashflow(context.Background(), "cf-1", "batch")

	suite.Require().NoError(err)
	suite.Equal(domain.Processed, got.StatusType)
	suite.mockCashflows.AssertExpectations(suite.T())
	suite.mockBalanceSvc.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestRealizeCashflow_BeforeValueDayRejected() {
	cf := &domain.Cashflow{
		CashflowID: "cf-1", AccountID: "acc-1", CurrencyCode: "JPY",
		Amount: decimal.NewFromInt(-300), ValueDay: day(2024, time.March, 20), StatusType: domain.Unprocessed,
	}
	suite.mockCashflows.On("FindCashflowByID", mock.Anything, "cf-1").Return(cf, nil).Twice()

	_, err := suite.service.RealizeCashflow(context.Background(), "cf-1", "batch")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRealizeDay)
	suite.mockCashflows.AssertNotCalled(suite.T(), "UpdateCashflowStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockBalanceSvc.AssertNotCalled(suite.T(), "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashflowServiceTestSuite) TestErrorCashflow() {
	cf := &domain.Cashflow{CashflowID: "cf-1", AccountID: "acc-1", StatusType: domain.Unprocessed}
	suite.mockCashflows.On("FindCashflowByID", mock.Anything, "cf-1").Return(cf, nil).Twice()
	suite.mockCashflows.On("UpdateCashflowStatus", mock.Anything, "cf-1", domain.StatusError, "batch", suite.now.Timestamp).
		Return(nil).Once()

	err := suite.service.ErrorCashflow(context.Background(), "cf-1", "batch")

	suite.Require().NoError(err)
	suite.mockCashflows.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestErrorCashflow_TerminalStatusRejected() {
	cf := &domain.Cashflow{CashflowID: "cf-1", AccountID: "acc-1", StatusType: domain.Processed}
	suite.mockCashflows.On("FindCashflowByID", mock.Anything, "cf-1").Return(cf, nil).Twice()

	err := suite.service.ErrorCashflow(context.Background(), "cf-1", "batch")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrActionUnprocessing)
}

func TestCashflowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashflowServiceTestSuite))
}
