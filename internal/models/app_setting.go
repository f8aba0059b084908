package models

// AppSetting is a persisted key/value application setting.
type AppSetting struct {
	SettingID string `db:"setting_id"`
	Category  string `db:"category"`
	Value     string `db:"value"`
	AuditFields
}
