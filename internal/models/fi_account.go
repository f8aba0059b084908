package models

// FiAccount is the customer's counterparty FI account per category and currency.
type FiAccount struct {
	FiAccountID  string `db:"fi_account_id"`
	AccountID    string `db:"account_id"`
	Category     string `db:"category"`
	CurrencyCode string `db:"currency_code"`
	FiCode       string `db:"fi_code"`
	FiAccountNo  string `db:"fi_account_no"`
	AuditFields
}

// SelfFiAccount is our own FI account per category and currency.
type SelfFiAccount struct {
	SelfFiAccountID string `db:"self_fi_account_id"`
	Category        string `db:"category"`
	CurrencyCode    string `db:"currency_code"`
	FiCode          string `db:"fi_code"`
	FiAccountNo     string `db:"fi_account_no"`
	AuditFields
}
