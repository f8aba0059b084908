package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CashBalanceRepo CashBalanceRepositoryFacade
	CashflowRepo    CashflowRepositoryFacade
	CashInOutRepo   CashInOutRepositoryFacade
	CurrencyRepo    CurrencyRepositoryFacade
	HolidayRepo     HolidayRepositoryFacade
	FiAccountRepo   FiAccountRepositoryFacade
	AppSettingRepo  AppSettingRepositoryFacade
	TxManager       TransactionManager
}
