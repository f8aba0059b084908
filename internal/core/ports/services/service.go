package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality.
type ServiceContainer struct {
	BusinessDay BusinessDaySvcFacade
	Asset       AssetSvcFacade
	CashBalance CashBalanceSvcFacade
	Cashflow    CashflowSvcFacade
	CashInOut   CashInOutSvcFacade
	Batch       BatchSvcFacade
}
