package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	"github.com/fincore-dev/asset_ledger_app/internal/dto"
)

// fakeTxManager runs the unit of work directly; transactional behavior itself
// is covered by the repository integration tests.
type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, _ portsrepo.TxOptions, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Mock AppSettingRepository ---
type MockAppSettingRepository struct {
	mock.Mock
}

func (m *MockAppSettingRepository) FindAppSetting(ctx context.Context, settingID string) (*domain.AppSetting, error) {
	args := m.Called(ctx, settingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSetting), args.Error(1)
}

func (m *MockAppSettingRepository) SaveAppSetting(ctx context.Context, setting domain.AppSetting, actorID string) error {
	args := m.Called(ctx, setting, actorID)
	return args.Error(0)
}

// --- Mock HolidayRepository ---
type MockHolidayRepository struct {
	mock.Mock
}

func (m *MockHolidayRepository) FindHoliday(ctx context.Context, day time.Time) (*domain.Holiday, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) FindHolidaysInRange(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) SaveHolidays(ctx context.Context, holidays []domain.Holiday, actorID string) error {
	args := m.Called(ctx, holidays, actorID)
	return args.Error(0)
}

// --- Mock CashBalanceRepository ---
type MockCashBalanceRepository struct {
	mock.Mock
}

func (m *MockCashBalanceRepository) FindCashBalanceByDay(ctx context.Context, accountID, currencyCode string, baseDay time.Time) (*domain.CashBalance, error) {
	args := m.Called(ctx, accountID, currencyCode, baseDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBalance), args.Error(1)
}

func (m *MockCashBalanceRepository) FindLatestCashBalanceBefore(ctx context.Context, accountID, currencyCode string, baseDay time.Time) (*domain.CashBalance, error) {
	args := m.Called(ctx, accountID, currencyCode, baseDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBalance), args.Error(1)
}

func (m *MockCashBalanceRepository) SaveCashBalance(ctx context.Context, balance domain.CashBalance, actorID string, now time.Time) error {
	args := m.Called(ctx, balance, actorID, now)
	return args.Error(0)
}

func (m *MockCashBalanceRepository) UpdateCashBalanceAmount(ctx context.Context, balanceID string, amount decimal.Decimal, actorID string, now time.Time) error {
	args := m.Called(ctx, balanceID, amount, actorID, now)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock CashflowRepository ---
type MockCashflowRepository struct {
	mock.Mock
}

func (m *MockCashflowRepository) FindCashflowByID(ctx context.Context, cashflowID string) (*domain.Cashflow, error) {
	args := m.Called(ctx, cashflowID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashflow), args.Error(1)
}

func (m *MockCashflowRepository) FindUnrealizedCashflows(ctx context.Context, accountID, currencyCode string, asOfDay time.Time) ([]domain.Cashflow, error) {
	args := m.Called(ctx, accountID, currencyCode, asOfDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashflow), args.Error(1)
}

func (m *MockCashflowRepository) FindCashflowsToRealize(ctx context.Context, valueDay time.Time) ([]domain.Cashflow, error) {
	args := m.Called(ctx, valueDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashflow), args.Error(1)
}

func (m *MockCashflowRepository) SaveCashflow(ctx context.Context, cashflow domain.Cashflow, actorID string, now time.Time) error {
	args := m.Called(ctx, cashflow, actorID, now)
	return args.Error(0)
}

func (m *MockCashflowRepository) UpdateCashflowStatus(ctx context.Context, cashflowID string, status domain.ActionStatusType, actorID string, now time.Time) error {
	args := m.Called(ctx, cashflowID, status, actorID, now)
	return args.Error(0)
}

// --- Mock CashInOutRepository ---
type MockCashInOutRepository struct {
	mock.Mock
}

func (m *MockCashInOutRepository) FindCashInOutByID(ctx context.Context, cashInOutID string) (*domain.CashInOut, error) {
	args := m.Called(ctx, cashInOutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutRepository) FindUnprocessedCashInOutsByEventDay(ctx context.Context, eventDay time.Time) ([]domain.CashInOut, error) {
	args := m.Called(ctx, eventDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutRepository) FindUnprocessedCashInOutsByAccount(ctx context.Context, accountID, currencyCode string, withdrawal bool) ([]domain.CashInOut, error) {
	args := m.Called(ctx, accountID, currencyCode, withdrawal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutRepository) FindCashInOuts(ctx context.Context, criteria portsrepo.FindCashInOutCriteria) ([]domain.CashInOut, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutRepository) SaveCashInOut(ctx context.Context, cashInOut domain.CashInOut, actorID string, now time.Time) error {
	args := m.Called(ctx, cashInOut, actorID, now)
	return args.Error(0)
}

func (m *MockCashInOutRepository) UpdateCashInOut(ctx context.Context, cashInOutID string, status domain.ActionStatusType, cashflowID string, actorID string, now time.Time) error {
	args := m.Called(ctx, cashInOutID, status, cashflowID, actorID, now)
	return args.Error(0)
}

// --- Mock FiAccountRepository ---
type MockFiAccountRepository struct {
	mock.Mock
}

func (m *MockFiAccountRepository) FindFiAccount(ctx context.Context, accountID, category, currencyCode string) (*domain.FiAccount, error) {
	args := m.Called(ctx, accountID, category, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiAccount), args.Error(1)
}

func (m *MockFiAccountRepository) FindSelfFiAccount(ctx context.Context, category, currencyCode string) (*domain.SelfFiAccount, error) {
	args := m.Called(ctx, category, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SelfFiAccount), args.Error(1)
}

// --- Mock BusinessDayService ---
type MockBusinessDayService struct {
	mock.Mock
}

func (m *MockBusinessDayService) Now(ctx context.Context) (domain.TimePoint, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.TimePoint), args.Error(1)
}

func (m *MockBusinessDayService) Day(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockBusinessDayService) DayN(ctx context.Context, n int) (time.Time, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockBusinessDayService) DayFrom(ctx context.Context, base time.Time, n int) (time.Time, error) {
	args := m.Called(ctx, base, n)
	return args.Get(0).(time.Time), args.Error(1)
}

// --- Mock CashBalanceService ---
type MockCashBalanceService struct {
	mock.Mock
}

func (m *MockCashBalanceService) GetOrNew(ctx context.Context, accountID, currencyCode string, actorID string) (*domain.CashBalance, error) {
	args := m.Called(ctx, accountID, currencyCode, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBalance), args.Error(1)
}

func (m *MockCashBalanceService) Add(ctx context.Context, accountID, currencyCode string, delta decimal.Decimal, actorID string) (*domain.CashBalance, error) {
	args := m.Called(ctx, accountID, currencyCode, delta, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBalance), args.Error(1)
}

// --- Mock AssetService ---
type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) CanWithdraw(ctx context.Context, accountID, currencyCode string, absAmount decimal.Decimal, valueDay time.Time, actorID string) (bool, error) {
	args := m.Called(ctx, accountID, currencyCode, absAmount, valueDay, actorID)
	return args.Bool(0), args.Error(1)
}

// --- Mock CashflowService ---
type MockCashflowService struct {
	mock.Mock
}

func (m *MockCashflowService) GetCashflowByID(ctx context.Context, cashflowID string) (*domain.Cashflow, error) {
	args := m.Called(ctx, cashflowID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashflow), args.Error(1)
}

func (m *MockCashflowService) FindUnrealizedCashflows(ctx context.Context, accountID, currencyCode string, asOfDay time.Time) ([]domain.Cashflow, error) {
	args := m.Called(ctx, accountID, currencyCode, asOfDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashflow), args.Error(1)
}

func (m *MockCashflowService) RegisterCashflow(ctx context.Context, req dto.RegisterCashflowRequest, actorID string) (*domain.Cashflow, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashflow), args.Error(1)
}

func (m *MockCashflowService) RegisterCashflowInTx(ctx context.Context, req dto.RegisterCashflowRequest, actorID string) (*domain.Cashflow, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashflow), args.Error(1)
}

func (m *MockCashflowService) RealizeCashflow(ctx context.Context, cashflowID string, actorID string) (*domain.Cashflow, error) {
	args := m.Called(ctx, cashflowID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashflow), args.Error(1)
}

func (m *MockCashflowService) ErrorCashflow(ctx context.Context, cashflowID string, actorID string) error {
	args := m.Called(ctx, cashflowID, actorID)
	return args.Error(0)
}

// --- Mock CashInOutService ---
type MockCashInOutService struct {
	mock.Mock
}

func (m *MockCashInOutService) GetCashInOutByID(ctx context.Context, cashInOutID string) (*domain.CashInOut, error) {
	args := m.Called(ctx, cashInOutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutService) FindUnprocessedCashInOuts(ctx context.Context) ([]domain.CashInOut, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutService) FindCashInOuts(ctx context.Context, criteria portsrepo.FindCashInOutCriteria) ([]domain.CashInOut, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutService) Withdraw(ctx context.Context, req dto.WithdrawRequest, actorID string) (*domain.CashInOut, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutService) Deposit(ctx context.Context, req dto.DepositRequest, actorID string) (*domain.CashInOut, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutService) ProcessCashInOut(ctx context.Context, cashInOutID string, actorID string) (*domain.CashInOut, error) {
	args := m.Called(ctx, cashInOutID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutService) CancelCashInOut(ctx context.Context, cashInOutID string, actorID string) (*domain.CashInOut, error) {
	args := m.Called(ctx, cashInOutID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashInOut), args.Error(1)
}

func (m *MockCashInOutService) ErrorCashInOut(ctx context.Context, cashInOutID string, actorID string) error {
	args := m.Called(ctx, cashInOutID, actorID)
	return args.Error(0)
}
