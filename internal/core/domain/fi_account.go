package domain

// FiAccount is the customer's counterparty financial-institution account for a
// given service category and currency. Its fields are snapshotted onto a
// CashInOut at request time so later master changes do not rewrite history.
type FiAccount struct {
	FiAccountID  string `json:"fiAccountID"`  // Primary Key (e.g., UUID)
	AccountID    string `json:"accountID"`    // owning customer account
	Category     string `json:"category"`     // service category (e.g., "cashOut")
	CurrencyCode string `json:"currencyCode"`
	FiCode       string `json:"fiCode"`       // institution code
	FiAccountNo  string `json:"fiAccountNo"`  // account number at the institution
	AuditFields
}

// SelfFiAccount is our own financial-institution account for a given service
// category and currency, snapshotted onto CashInOut the same way.
type SelfFiAccount struct {
	SelfFiAccountID string `json:"selfFiAccountID"` // Primary Key (e.g., UUID)
	Category        string `json:"category"`
	CurrencyCode    string `json:"currencyCode"`
	FiCode          string `json:"fiCode"`
	FiAccountNo     string `json:"fiAccountNo"`
	AuditFields
}
