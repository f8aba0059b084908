package domain

// AppSetting is a persisted key/value application setting.
type AppSetting struct {
	SettingID string `json:"settingID"` // Primary Key (dotted key, e.g. "businessDay.current")
	Category  string `json:"category"`
	Value     string `json:"value"`
	AuditFields
}

// SettingBusinessDay holds the current business day as "2006-01-02".
const SettingBusinessDay = "businessDay.current"
