package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portssvc "github.com/fincore-dev/asset_ledger_app/internal/core/ports/services"
	"github.com/fincore-dev/asset_ledger_app/internal/core/services"
)

const batchActor = "system-batch"

// --- Test Suite ---
type BatchServiceTestSuite struct {
	suite.Suite
	mockCashInOutSvc *MockCashInOutService
	mockCashflowSvc  *MockCashflowService
	mockCashflows    *MockCashflowRepository
	mockDays         *MockBusinessDayService
	service          portssvc.BatchSvcFacade

	today time.Time
}

func (suite *BatchServiceTestSuite) SetupTest() {
	suite.mockCashInOutSvc = new(MockCashInOutService)
	suite.mockCashflowSvc = new(MockCashflowService)
	suite.mockCashflows = new(MockCashflowRepository)
	suite.mockDays = new(MockBusinessDayService)
	suite.service = services.NewBatchService(suite.mockCashInOutSvc, suite.mockCashflowSvc,
		suite.mockCashflows, suite.mockDays, batchActor)
	suite.today = day(2024, time.March, 15)
	suite.mockDays.On("Day", mock.Anything).Return(suite.today, nil)
}

func (suite *BatchServiceTestSuite) TestClosingCashOut_ProcessesAllDueRequests() {
	due := []domain.CashInOut{
		{CashInOutID: "cio-1", AccountID: "acc-1"},
		{CashInOutID: "cio-2", AccountID: "acc-2"},
	}
	suite.mockCashInOutSvc.On("FindUnprocessedCashInOuts", mock.Anything).Return(due, nil).Once()
	suite.mockCashInOutSvc.On("ProcessCashInOut", mock.Anything, "cio-1", batchActor).
		Return(&domain.CashInOut{CashInOutID: "cio-1", StatusType: domain.Processed}, nil).Once()
	suite.mockCashInOutSvc.On("ProcessCashInOut", mock.Anything, "cio-2", batchActor).
		Return(&domain.CashInOut{CashInOutID: "cio-2", StatusType: domain.Processed}, nil).Once()

	err := suite.service.ClosingCashOut(context.Background())

	suite.Require().NoError(err)
	suite.mockCashInOutSvc.AssertExpectations(suite.T())
}

func (suite *BatchServiceTestSuite) TestClosingCashOut_OneFailureDoesNotAbortTheRun() {
	due := []domain.CashInOut{
		{CashInOutID: "cio-1", AccountID: "acc-1"},
		{CashInOutID: "cio-2", AccountID: "acc-2"},
		{CashInOutID: "cio-3", AccountID: "acc-3"},
	}
	suite.mockCashInOutSvc.On("FindUnprocessedCashInOuts", mock.Anything).Return(due, nil).Once()
	suite.mockCashInOutSvc.On("ProcessCashInOut", mock.Anything, "cio-1", batchActor).
		Return(&domain.CashInOut{CashInOutID: "cio-1"}, nil).Once()
	suite.mockCashInOutSvc.On("ProcessCashInOut", mock.Anything, "cio-2", batchActor).
		Return(nil, assert.AnError).Once()
	suite.mockCashInOutSvc.On("ErrorCashInOut", mock.Anything, "cio-2", batchActor).Return(nil).Once()
	suite.mockCashInOutSvc.On("ProcessCashInOut", mock.Anything, "cio-3", batchActor).
		Return(&domain.CashInOut{CashInOutID: "cio-3"}, nil).Once()

	err := suite.service.ClosingCashOut(context.Background())

	suite.Require().NoError(err)
	suite.mockCashInOutSvc.AssertExpectations(suite.T())
}

func (suite *BatchServiceTestSuite) TestClosingCashOut_DoubleFaultIsSwallowed() {
	due := []domain.CashInOut{
		{CashInOutID: "cio-1", AccountID: "acc-1"},
		{CashInOutID: "cio-2", AccountID: "acc-2"},
	}
	suite.mockCashInOutSvc.On("FindUnprocessedCashInOuts", mock.Anything).Return(due, nil).Once()
	suite.mockCashInOutSvc.On("ProcessCashInOut", mock.Anything, "cio-1", batchActor).
		Return(nil, assert.AnError).Once()
	// Even recording the error status fails; the run must still reach cio-2.
	suite.mockCashInOutSvc.On("ErrorCashInOut", mock.Anything, "cio-1", batchActor).
		Return(assert.AnError).Once()
	suite.mockCashInOutSvc.On("ProcessCashInOut", mock.Anything, "cio-2", batchActor).
		Return(&domain.CashInOut{CashInOutID: "cio-2"}, nil).Once()

	err := suite.service.ClosingCashOut(context.Background())

	suite.Require().NoError(err)
	suite.mockCashInOutSvc.AssertExpectations(suite.T())
}

func (suite *BatchServiceTestSuite) TestRealizeCashflow_SettlesAllDueCashflows() {
	due := []domain.Cashflow{
		{CashflowID: "cf-1", AccountID: "acc-1"},
		{CashflowID: "cf-2", AccountID: "acc-2"},
	}
	suite.mockCashflows.On("FindCashflowsToRealize", mock.Anything, suite.today).Return(due, nil).Once()
	suite.mockCashflowSvc.On("RealizeCashflow", mock.Anything, "cf-1", batchActor).
		Return(&domain.Cashflow{CashflowID: "cf-1", StatusType: domain.Processed}, nil).Once()
	suite.mockCashflowSvc.On("RealizeCashflow", mock.Anything, "cf-2", batchActor).
		Return(&domain.Cashflow{CashflowID: "cf-2", StatusType: domain.Processed}, nil).Once()

	err := suite.service.RealizeCashflow(context.Background())

	suite.Require().NoError(err)
	suite.mockCashflowSvc.AssertExpectations(suite.T())
}

func (suite *BatchServiceTestSuite) TestRealizeCashflow_FailedCashflowIsMarkedError() {
	due := []domain.Cashflow{
		{CashflowID: "cf-1", AccountID: "acc-1"},
		{CashflowID: "cf-2", AccountID: "acc-2"},
	}
	suite.mockCashflows.On("FindCashflowsToRealize", mock.Anything, suite.today).Return(due, nil).Once()
	suite.mockCashflowSvc.On("RealizeCashflow", mock.Anything, "cf-1", batchActor).
		Return(nil, assert.AnError).Once()
	suite.mockCashflowSvc.On("ErrorCashflow", mock.Anything, "cf-1", batchActor).Return(nil).Once()
	suite.mockCashflowSvc.On("RealizeCashflow", mock.Anything, "cf-2", batchActor).
		Return(&domain.Cashflow{CashflowID: "cf-2", StatusType: domain.Processed}, nil).Once()

	err := suite.service.RealizeCashflow(context.Background())

	suite.Require().NoError(err)
	suite.mockCashflowSvc.AssertExpectations(suite.T())
}

func (suite *BatchServiceTestSuite) TestRealizeCashflow_FindFailureAbortsRun() {
	suite.mockCashflows.On("FindCashflowsToRealize", mock.Anything, suite.today).
		Return(nil, assert.AnError).Once()

	err := suite.service.RealizeCashflow(context.Background())

	suite.Require().Error(err)
	suite.mockCashflowSvc.AssertNotCalled(suite.T(), "RealizeCashflow", mock.Anything, mock.Anything, mock.Anything)
}

func TestBatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BatchServiceTestSuite))
}
