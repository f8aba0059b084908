package repositories

import (
	"context"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// AppSettingReader defines read operations for persisted application settings
type AppSettingReader interface {
	// FindAppSetting retrieves a setting by its key.
	FindAppSetting(ctx context.Context, settingID string) (*domain.AppSetting, error)
}

// AppSettingWriter defines write operations for persisted application settings
type AppSettingWriter interface {
	// SaveAppSetting upserts a setting value.
	SaveAppSetting(ctx context.Context, setting domain.AppSetting, actorID string) error
}

// AppSettingRepositoryFacade combines setting repository interfaces
type AppSettingRepositoryFacade interface {
	AppSettingReader
	AppSettingWriter
}
